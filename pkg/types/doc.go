// Package types defines the primitive value types, store configuration,
// and standard error values shared by the mapping, ontology, and tabular
// loaders and the staging backend.
package types
