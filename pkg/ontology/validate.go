package ontology

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// Validate checks the structural invariants of the schema and returns
// every violation joined into one error, or nil when the schema is sound:
// representations are node or edge, input labels are present, property
// types come from the primitive set, is_a references resolve, the is_a
// relation forms a forest, and no subtype changes the type of an
// inherited property.
func (s Schema) Validate() error {
	var findings []error

	for _, name := range s.Names() {
		e := s[name]
		if !types.IsValidRepresentation(e.RepresentedAs) {
			findings = append(findings,
				fmt.Errorf("%s: represented_as %q: %w", name, e.RepresentedAs, types.ErrInvalidRepresentation))
		}
		if e.InputLabel == "" {
			findings = append(findings, fmt.Errorf("%s: %w", name, types.ErrMissingInputLabel))
		}
		for _, prop := range sortedProps(e.Properties) {
			if !types.IsValidPropertyType(e.Properties[prop]) {
				findings = append(findings,
					fmt.Errorf("%s: property %q type %q: %w", name, prop, e.Properties[prop], types.ErrInvalidPropertyType))
			}
		}
		if e.IsA != "" {
			if _, ok := s[e.IsA]; !ok {
				findings = append(findings,
					fmt.Errorf("%s: is_a %q: %w", name, e.IsA, types.ErrUnknownSupertype))
			}
		}
	}

	findings = append(findings, s.checkCycles()...)
	findings = append(findings, s.checkOverrides()...)

	return errors.Join(findings...)
}

// checkCycles rejects is_a chains that loop back on themselves. Each
// cycle is reported once, at the member where the walk closes it, so
// the finding always names an entity that is actually on the cycle and
// never one that merely inherits from it.
func (s Schema) checkCycles() []error {
	var findings []error
	state := make(map[string]int) // 0 unvisited, 1 on stack, 2 done

	var visit func(name string)
	visit = func(name string) {
		state[name] = 1
		if parent := s[name].IsA; parent != "" {
			if _, ok := s[parent]; ok {
				switch state[parent] {
				case 0:
					visit(parent)
				case 1:
					// parent is on the current chain, so the cycle
					// closes at it.
					findings = append(findings,
						fmt.Errorf("%s: %w", parent, types.ErrInheritanceCycle))
				}
			}
		}
		state[name] = 2
	}

	for _, name := range s.Names() {
		if state[name] == 0 {
			visit(name)
		}
	}
	return findings
}

// checkOverrides rejects a subtype redeclaring an inherited property at a
// different type. Identical redeclaration is allowed. Entities on a cycle
// or with unresolved supertypes are skipped; those already carry their
// own findings.
func (s Schema) checkOverrides() []error {
	var findings []error

	for _, name := range s.Names() {
		inherited := make(map[string]types.PropertyType)
		ok := true
		seen := map[string]bool{name: true}
		for parent := s[name].IsA; parent != ""; parent = s[parent].IsA {
			pe, declared := s[parent]
			if !declared || seen[parent] {
				ok = false
				break
			}
			seen[parent] = true
			for prop, pt := range pe.Properties {
				inherited[prop] = pt
			}
		}
		if !ok {
			continue
		}
		for _, prop := range sortedProps(s[name].Properties) {
			pt := s[name].Properties[prop]
			if base, has := inherited[prop]; has && base != pt {
				findings = append(findings,
					fmt.Errorf("%s: property %q redeclared as %q (inherited %q): %w",
						name, prop, pt, base, types.ErrPropertyOverride))
			}
		}
	}
	return findings
}

func sortedProps(props map[string]types.PropertyType) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
