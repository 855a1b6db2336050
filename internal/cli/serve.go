package cli

import (
	"github.com/spf13/cobra"

	"ride-analytics/internal/api"
	"ride-analytics/internal/schema"
	"ride-analytics/internal/store"
	"ride-analytics/pkg/router"
)

var flagListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analytics HTTP API",
	Long: `Start the HTTP API. Upload a bookings CSV to POST /api/v1/datasets,
then query the analytics endpoints with optional filter parameters.
Interactive documentation lives at /swagger/index.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadSchema()
		if err != nil {
			return err
		}
		if flagListenAddr != "" {
			cfg.ListenAddr = flagListenAddr
		}

		st := store.NewMemory()
		handler := api.NewHandler(st, schema.NewNormalizer(table, log), newExporter(), log)

		r := router.New()
		api.RegisterRoutes(r, handler)

		log.Info("[cli] Analytics API listening on %s", cfg.ListenAddr)
		return r.Start(cfg.ListenAddr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&flagListenAddr, "addr", "a", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
