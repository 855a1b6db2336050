package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ride-analytics/internal/config"
	"ride-analytics/internal/export"
	"ride-analytics/internal/schema"
	"ride-analytics/pkg/logging"
)

var (
	cfg *config.Config
	log *logging.Logger

	flagVerbose    bool
	flagSchemaFile string
	flagOutputDir  string
	flagFormats    []string
)

var rootCmd = &cobra.Command{
	Use:   "rideanalytics",
	Short: "Analytics engine for ride-hailing booking exports",
	Long: `rideanalytics cleans, filters and aggregates ride-hailing booking CSVs.

It serves the results over an HTTP API, renders one-shot reports on the
terminal, or watches a drop directory and re-exports on every new file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if flagVerbose {
			cfg.Verbose = true
		}
		if flagSchemaFile != "" {
			cfg.SchemaFile = flagSchemaFile
		}
		if flagOutputDir != "" {
			cfg.OutputDir = flagOutputDir
		}
		if len(flagFormats) > 0 {
			cfg.ExportFormats = flagFormats
		}
		log = logging.New(cfg.Verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagSchemaFile, "schema", "", "YAML schema override file")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output", "o", "", "export output directory")
	rootCmd.PersistentFlags().StringSliceVar(&flagFormats, "formats", nil, "export formats (csv,json,xlsx,sqlite)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSchema returns the active schema table, honoring a configured override
// file.
func loadSchema() (*schema.Table, error) {
	if cfg.SchemaFile == "" {
		return schema.Default(), nil
	}
	table, err := schema.LoadFile(cfg.SchemaFile)
	if err != nil {
		return nil, err
	}
	log.Info("[cli] Loaded schema override from %s (%d columns)", cfg.SchemaFile, table.Len())
	return table, nil
}

func newExporter() *export.Manager {
	return export.NewManager(cfg.OutputDir, cfg.ExportFormats, cfg.PostgresDSN, log)
}
