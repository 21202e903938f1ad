// Package ontology loads and validates graph schema documents.
//
// A schema document declares the node and edge types a graph build may
// emit: each entity carries a representation (node or edge), a
// source-side input label, an optional is_a supertype forming a
// single-inheritance forest, and a set of primitive-typed properties.
// Property sets are additive down the is_a chain: a subtype inherits
// every supertype property and may add its own, but never change an
// inherited property's type.
package ontology

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// Entity is one declared node or edge type.
type Entity struct {
	IsA           string                        `yaml:"is_a,omitempty"`
	RepresentedAs types.Representation          `yaml:"represented_as"`
	InputLabel    string                        `yaml:"input_label"`
	Properties    map[string]types.PropertyType `yaml:"properties,omitempty"`
}

// Schema maps entity names to their declarations. Entity order carries no
// meaning: two schemas with the same entries are equivalent.
type Schema map[string]Entity

// Parse unmarshals and validates a schema document. A schema with any
// structural violation does not load: the returned schema is nil and the
// error joins every finding.
func Parse(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the schema document at path.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema document: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal serializes the schema back to YAML. Parsing the output yields a
// schema equal to s.
func (s Schema) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Names returns the entity names in sorted order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ancestors returns the is_a chain of name from immediate supertype to
// root. Returns ErrEntityNotFound for an undeclared name. The schema must
// already be valid; an unvalidated schema with a cycle would not
// terminate.
func (s Schema) Ancestors(name string) ([]string, error) {
	e, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, types.ErrEntityNotFound)
	}
	var chain []string
	for e.IsA != "" {
		chain = append(chain, e.IsA)
		e = s[e.IsA]
	}
	return chain, nil
}

// Roots returns the names of entities with no supertype, sorted.
func (s Schema) Roots() []string {
	var roots []string
	for name, e := range s {
		if e.IsA == "" {
			roots = append(roots, name)
		}
	}
	sort.Strings(roots)
	return roots
}

// Children returns the names of entities whose is_a is name, sorted.
func (s Schema) Children(name string) []string {
	var children []string
	for child, e := range s {
		if e.IsA == name {
			children = append(children, child)
		}
	}
	sort.Strings(children)
	return children
}

// EffectiveProperties returns the property set of name merged with every
// inherited supertype property. Returns ErrEntityNotFound for an
// undeclared name.
func (s Schema) EffectiveProperties(name string) (map[string]types.PropertyType, error) {
	chain, err := s.Ancestors(name)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]types.PropertyType)
	// Apply root-first so the walk mirrors declaration order down the
	// chain; a valid schema never redeclares at a different type, so the
	// direction only matters for readability.
	for i := len(chain) - 1; i >= 0; i-- {
		for prop, pt := range s[chain[i]].Properties {
			merged[prop] = pt
		}
	}
	for prop, pt := range s[name].Properties {
		merged[prop] = pt
	}
	return merged, nil
}
