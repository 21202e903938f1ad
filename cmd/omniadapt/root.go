// Root command for the omniadapt CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/internal/paths"
)

// Version is the CLI version reported by the version command.
const Version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "omniadapt",
	Short:   "Validate and stage Omnipath mapping, schema, and table artifacts",
	Version: Version,
	Long: `Omniadapt checks the declarative inputs of an Omnipath knowledge-graph
build before anything downstream consumes them: column-to-graph mapping
documents, ontology schema documents, and the tabular downloads they
describe. Validated table rows can be staged into a local SQLite
database for inspection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.omniadapt-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mappingCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(stageCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > OMNIADAPT_DATA_DIR env >
// default $(CWD)/.omniadapt-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > OMNIADAPT_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
