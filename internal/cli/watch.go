package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"ride-analytics/internal/analytics"
	"ride-analytics/internal/api"
	"ride-analytics/internal/ingest"
	"ride-analytics/internal/model"
	"ride-analytics/internal/schema"
	"ride-analytics/internal/store"
	"ride-analytics/internal/watch"
	"ride-analytics/pkg/router"
)

var (
	flagWatchDir   string
	flagWatchServe bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and re-export analytics on every CSV drop",
	Long: `Watch a drop directory. Every new or rewritten CSV replaces the
current dataset and the configured export targets are rewritten. With
--serve the HTTP API runs alongside and always reflects the latest drop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadSchema()
		if err != nil {
			return err
		}
		if flagWatchDir != "" {
			cfg.WatchDir = flagWatchDir
		}

		st := store.NewMemory()
		normalizer := schema.NewNormalizer(table, log)
		exporter := newExporter()

		ingestFile := func(path string) {
			headers, rows, err := ingest.ReadFile(path)
			if err != nil {
				log.Error("[watch] %s: %v", path, err)
				return
			}
			records := normalizer.Normalize(headers, rows)
			info := st.Replace(filepath.Base(path), records, len(rows))
			log.Info("[watch] Dataset %s loaded: %d records from %s", info.ID, info.RecordCount, path)

			exporter.Run(analytics.BuildDashboard(records, model.FilterCriteria{}))
		}

		if flagWatchServe {
			handler := api.NewHandler(st, normalizer, exporter, log)
			r := router.New()
			api.RegisterRoutes(r, handler)
			go func() {
				if err := r.Start(cfg.ListenAddr); err != nil {
					log.Error("[watch] server: %v", err)
				}
			}()
		}

		w := watch.New(cfg.WatchDir, log, ingestFile)
		if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVarP(&flagWatchDir, "dir", "d", "", "directory to watch for CSV drops (default ./data)")
	watchCmd.Flags().BoolVar(&flagWatchServe, "serve", false, "also serve the HTTP API")
	rootCmd.AddCommand(watchCmd)
}
