// Package mapping loads and validates column-to-graph mapping documents.
//
// A mapping document declares how the columns of one tabular source
// project into typed nodes, edges, and properties. The row rule names the
// subject node type produced per input row; each transformer either links
// the subject to an object node through a relation, or attaches a column
// value as a property on a previously declared type.
package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule kinds, derived from which target field a rule sets.
const (
	KindSubject  = "subject"
	KindObject   = "object"
	KindProperty = "property"
	KindInvalid  = "invalid"
)

// Rule is one column projection. Exactly one of ToSubject, ToObject, or
// ToProperty must be set.
type Rule struct {
	Column      string `yaml:"column"`
	ToSubject   string `yaml:"to_subject,omitempty"`
	ToObject    string `yaml:"to_object,omitempty"`
	ToProperty  string `yaml:"to_property,omitempty"`
	FromSubject string `yaml:"from_subject,omitempty"`
	FinalType   string `yaml:"final_type,omitempty"`
	ViaRelation string `yaml:"via_relation,omitempty"`
	ForObject   string `yaml:"for_object,omitempty"`
}

// RowRule wraps the per-row subject rule in its wire envelope.
type RowRule struct {
	Map Rule `yaml:"map"`
}

// Transformer wraps one transformer rule in its wire envelope.
type Transformer struct {
	Map Rule `yaml:"map"`
}

// Document is a full mapping specification: one subject rule plus an
// ordered list of transformer rules. Transformer order is preserved
// through serialization.
type Document struct {
	Row          RowRule       `yaml:"row"`
	Transformers []Transformer `yaml:"transformers"`
}

// Kind reports which target a rule declares. Returns KindInvalid when the
// rule sets none or more than one of the three target fields.
func (r Rule) Kind() string {
	set := 0
	kind := KindInvalid
	if r.ToSubject != "" {
		set++
		kind = KindSubject
	}
	if r.ToObject != "" {
		set++
		kind = KindObject
	}
	if r.ToProperty != "" {
		set++
		kind = KindProperty
	}
	if set != 1 {
		return KindInvalid
	}
	return kind
}

// NodeType returns the graph-level node type a subject or object rule
// emits: FinalType when set, otherwise the target field value. Returns ""
// for property rules.
func (r Rule) NodeType() string {
	switch r.Kind() {
	case KindSubject:
		if r.FinalType != "" {
			return r.FinalType
		}
		return r.ToSubject
	case KindObject:
		if r.FinalType != "" {
			return r.FinalType
		}
		return r.ToObject
	default:
		return ""
	}
}

// Parse unmarshals and validates a mapping document. A document with any
// structural violation does not load: the returned document is nil and
// the error joins every finding.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse mapping document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the mapping document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal serializes the document back to YAML. Parsing the output yields
// a document equal to d.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Rules returns every rule in the document, the row subject rule first,
// then the transformers in declared order.
func (d *Document) Rules() []Rule {
	rules := make([]Rule, 0, len(d.Transformers)+1)
	rules = append(rules, d.Row.Map)
	for _, t := range d.Transformers {
		rules = append(rules, t.Map)
	}
	return rules
}

// DeclaredTypes returns the set of node types and relation labels the
// document declares. Property rules resolve their for_object against this
// set.
func (d *Document) DeclaredTypes() map[string]bool {
	declared := make(map[string]bool)
	for _, r := range d.Rules() {
		if nt := r.NodeType(); nt != "" {
			declared[nt] = true
		}
		if r.ViaRelation != "" {
			declared[r.ViaRelation] = true
		}
	}
	return declared
}

// Relations returns the relation labels declared by object rules, in
// transformer order, without duplicates.
func (d *Document) Relations() []string {
	seen := make(map[string]bool)
	var relations []string
	for _, t := range d.Transformers {
		rel := t.Map.ViaRelation
		if rel == "" || seen[rel] {
			continue
		}
		seen[rel] = true
		relations = append(relations, rel)
	}
	return relations
}

// Properties returns the property rules of the document in transformer
// order.
func (d *Document) Properties() []Rule {
	var props []Rule
	for _, t := range d.Transformers {
		if t.Map.Kind() == KindProperty {
			props = append(props, t.Map)
		}
	}
	return props
}
