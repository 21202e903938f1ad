// Package tabular validates Omnipath download tables against their
// declared column schemas.
//
// A table schema is a closed, typed column set: every column carries a
// primitive type and a nullability flag, and a file must present exactly
// the declared columns (in any order) to validate. The five Omnipath
// table schemas ship built in; see Builtin.
package tabular

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// ColumnSpec declares one column: its name, primitive type, and whether
// empty cells are allowed.
type ColumnSpec struct {
	Name     string             `json:"name" yaml:"name"`
	Type     types.PropertyType `json:"type" yaml:"type"`
	Nullable bool               `json:"nullable" yaml:"nullable"`
}

// TableSchema is the closed column set of one table. Column order is the
// canonical order records are emitted in.
type TableSchema struct {
	Name    string       `json:"name" yaml:"name"`
	Columns []ColumnSpec `json:"columns" yaml:"columns"`
}

// ColumnNames returns the declared column names in schema order.
func (s TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the spec for the named column and whether it exists.
func (s TableSchema) Column(name string) (ColumnSpec, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// Validate checks that the schema itself is well-formed: a non-empty
// name, at least one column, no duplicate column names, and recognized
// primitive types throughout.
func (s TableSchema) Validate() error {
	var findings []error
	if s.Name == "" {
		findings = append(findings, errors.New("schema has no name"))
	}
	if len(s.Columns) == 0 {
		findings = append(findings, fmt.Errorf("%s: schema has no columns", s.Name))
	}
	seen := make(map[string]bool)
	for _, c := range s.Columns {
		if c.Name == "" {
			findings = append(findings, fmt.Errorf("%s: column with empty name", s.Name))
			continue
		}
		if seen[c.Name] {
			findings = append(findings, fmt.Errorf("%s: column %q: %w", s.Name, c.Name, types.ErrDuplicateColumn))
		}
		seen[c.Name] = true
		if !types.IsValidPropertyType(c.Type) {
			findings = append(findings, fmt.Errorf("%s: column %q type %q: %w", s.Name, c.Name, c.Type, types.ErrInvalidPropertyType))
		}
	}
	return errors.Join(findings...)
}

// matchHeader checks a file header against the schema and returns, for
// each header position, the index of the schema column it carries.
// The column set must match exactly; order is free.
func (s TableSchema) matchHeader(header []string) ([]int, error) {
	index := make(map[string]int, len(s.Columns))
	for i, c := range s.Columns {
		index[c.Name] = i
	}

	var findings []error
	order := make([]int, len(header))
	seen := make(map[string]bool, len(header))
	for pos, name := range header {
		if seen[name] {
			findings = append(findings, fmt.Errorf("%s: column %q: %w", s.Name, name, types.ErrDuplicateColumn))
			order[pos] = -1
			continue
		}
		seen[name] = true
		i, ok := index[name]
		if !ok {
			findings = append(findings, fmt.Errorf("%s: unexpected column %q: %w", s.Name, name, types.ErrHeaderMismatch))
			order[pos] = -1
			continue
		}
		order[pos] = i
	}

	var missing []string
	for _, c := range s.Columns {
		if !seen[c.Name] {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		findings = append(findings, fmt.Errorf("%s: missing columns %v: %w", s.Name, missing, types.ErrHeaderMismatch))
	}

	if err := errors.Join(findings...); err != nil {
		return nil, err
	}
	return order, nil
}
