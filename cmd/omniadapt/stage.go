// Stage command validates a TSV download and stages its rows into the
// local SQLite staging database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/internal/sqlite"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/tabular"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

var stageSchemaName string

var stageCmd = &cobra.Command{
	Use:   "stage <file.tsv>",
	Short: "Validate a TSV download and stage its rows into SQLite",
	Long: `Stage validates a tab-separated file against the named built-in
schema and, when the whole file is valid, stages its rows into the
staging database under the data directory. Each invocation records one
staging run in the ledger.

Example:
  omniadapt stage --schema enzyme_ptm enz_sub.tsv`,
	Args: cobra.ExactArgs(1),
	RunE: runStage,
}

func init() {
	stageCmd.Flags().StringVar(&stageSchemaName, "schema", "", "built-in table schema name (required)")
	_ = stageCmd.MarkFlagRequired("schema")
}

func runStage(cmd *cobra.Command, args []string) error {
	schema, err := tabular.Builtin(stageSchemaName)
	if err != nil {
		return fmt.Errorf("schema %q: %w", stageSchemaName, err)
	}

	records, err := tabular.ReadFile(args[0], schema)
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	dataset, err := backend.GetDataset(stageSchemaName)
	if err != nil {
		return fmt.Errorf("get dataset: %w", err)
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = rec.Values
	}
	stagingID, err := dataset.Insert(args[0], rows)
	if err != nil {
		return fmt.Errorf("stage rows: %w", err)
	}

	if flagJSON {
		out := map[string]any{
			"staging_id": stagingID,
			"schema":     stageSchemaName,
			"file":       args[0],
			"rows":       len(rows),
		}
		return printJSON(out)
	}
	fmt.Printf("Staged %d rows of %s as %s\n", len(rows), stageSchemaName, stagingID)
	return nil
}

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach staging store: %w", err)
	}

	return backend, nil
}
