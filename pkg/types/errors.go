package types

import "errors"

// Primitive type errors.
var (
	ErrInvalidPropertyType   = errors.New("invalid property type")
	ErrInvalidRepresentation = errors.New("representation must be node or edge")
)

// Mapping document errors. A document failing any of these never loads,
// even partially.
var (
	ErrMissingColumn      = errors.New("rule has no column")
	ErrRuleConflict       = errors.New("rule declares both a node target and a property target")
	ErrRuleEmpty          = errors.New("rule declares no target")
	ErrDanglingProperty   = errors.New("property rule is missing its attachment")
	ErrUnresolvedObject   = errors.New("for_object does not resolve to any declared type or relation")
	ErrDuplicateProperty  = errors.New("duplicate property declaration for object and column")
	ErrRelationOnProperty = errors.New("property rule must not declare a relation")
	ErrRowNotSubject      = errors.New("row rule must declare to_subject")
)

// Ontology schema errors.
var (
	ErrUnknownSupertype  = errors.New("is_a references an undeclared entity")
	ErrInheritanceCycle  = errors.New("is_a chain forms a cycle")
	ErrMissingInputLabel = errors.New("entity has no input_label")
	ErrPropertyOverride  = errors.New("subtype changes the type of an inherited property")
	ErrEntityNotFound    = errors.New("entity not found in schema")
)

// Tabular validation errors.
var (
	ErrHeaderMismatch  = errors.New("header does not match table schema")
	ErrDuplicateColumn = errors.New("duplicate column in header")
	ErrNotNullable     = errors.New("empty value in non-nullable column")
	ErrCellType        = errors.New("value does not parse at the declared column type")
	ErrSchemaUnknown   = errors.New("unknown table schema")
	ErrRowWidth        = errors.New("row width does not match header")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrDatasetNotFound = errors.New("dataset not found")
)
