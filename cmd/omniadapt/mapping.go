// Mapping commands validate and inspect column-to-graph mapping documents.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/mapping"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Work with column-to-graph mapping documents",
}

var mappingValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a mapping document",
	Long: `Validate parses a mapping document and checks its structural
invariants: every rule targets exactly one of to_subject, to_object, or
to_property; every for_object resolves to a declared type or relation;
and no (for_object, column) property pair is declared twice.

All findings are reported together; a document with any violation does
not load.

Example:
  omniadapt mapping validate mappings/intercell.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runMappingValidate,
}

var mappingShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show the rules a mapping document declares",
	Args:  cobra.ExactArgs(1),
	RunE:  runMappingShow,
}

func init() {
	mappingCmd.AddCommand(mappingValidateCmd)
	mappingCmd.AddCommand(mappingShowCmd)
}

func runMappingValidate(cmd *cobra.Command, args []string) error {
	doc, err := mapping.Load(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		out := map[string]any{
			"file":         args[0],
			"valid":        true,
			"transformers": len(doc.Transformers),
		}
		return printJSON(out)
	}
	fmt.Printf("%s: valid (%d transformers)\n", args[0], len(doc.Transformers))
	return nil
}

func runMappingShow(cmd *cobra.Command, args []string) error {
	doc, err := mapping.Load(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(doc)
	}

	subject := doc.Row.Map
	fmt.Printf("subject: %s (column %q)\n", subject.NodeType(), subject.Column)

	if relations := doc.Relations(); len(relations) > 0 {
		fmt.Println("relations:")
		for _, t := range doc.Transformers {
			r := t.Map
			if r.Kind() != mapping.KindObject || r.ViaRelation == "" {
				continue
			}
			fmt.Printf("  %s -> %s (column %q)\n", r.ViaRelation, r.NodeType(), r.Column)
		}
	}

	if props := doc.Properties(); len(props) > 0 {
		fmt.Println("properties:")
		for _, p := range props {
			fmt.Printf("  %s on %s (column %q)\n", p.ToProperty, p.ForObject, p.Column)
		}
	}
	return nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
