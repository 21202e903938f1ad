package mapping

import (
	"errors"
	"fmt"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// Validate checks the structural invariants of the document and returns
// every violation joined into one error, or nil when the document is
// sound. Reference resolution is two-pass: a property rule may attach to
// a type declared by any rule in the file, before or after it.
func (d *Document) Validate() error {
	var findings []error

	if d.Row.Map.Kind() != KindSubject {
		findings = append(findings, fmt.Errorf("row: %w", types.ErrRowNotSubject))
	}
	findings = append(findings, validateRule(d.Row.Map, "row")...)

	for i, t := range d.Transformers {
		where := fmt.Sprintf("transformer %d", i)
		findings = append(findings, validateRule(t.Map, where)...)
	}

	declared := d.DeclaredTypes()
	seen := make(map[[2]string]bool) // (for_object, column) pairs already declared
	for i, t := range d.Transformers {
		r := t.Map
		if r.Kind() != KindProperty || r.ForObject == "" {
			continue
		}
		where := fmt.Sprintf("transformer %d", i)
		if !declared[r.ForObject] {
			findings = append(findings,
				fmt.Errorf("%s: for_object %q: %w", where, r.ForObject, types.ErrUnresolvedObject))
		}
		key := [2]string{r.ForObject, r.Column}
		if seen[key] {
			findings = append(findings,
				fmt.Errorf("%s: column %q on %q: %w", where, r.Column, r.ForObject, types.ErrDuplicateProperty))
		}
		seen[key] = true
	}

	return errors.Join(findings...)
}

// validateRule checks the per-rule invariants that need no cross-rule
// context.
func validateRule(r Rule, where string) []error {
	var findings []error

	if r.Column == "" {
		findings = append(findings, fmt.Errorf("%s: %w", where, types.ErrMissingColumn))
	}

	set := 0
	if r.ToSubject != "" {
		set++
	}
	if r.ToObject != "" {
		set++
	}
	if r.ToProperty != "" {
		set++
	}
	switch {
	case set == 0:
		findings = append(findings, fmt.Errorf("%s: %w", where, types.ErrRuleEmpty))
	case set > 1:
		findings = append(findings, fmt.Errorf("%s: %w", where, types.ErrRuleConflict))
	}

	if r.Kind() == KindProperty {
		if r.ForObject == "" {
			findings = append(findings, fmt.Errorf("%s: to_property %q: %w", where, r.ToProperty, types.ErrDanglingProperty))
		}
		if r.ViaRelation != "" || r.FromSubject != "" {
			findings = append(findings, fmt.Errorf("%s: to_property %q: %w", where, r.ToProperty, types.ErrRelationOnProperty))
		}
	}

	return findings
}
