package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ride-analytics/internal/model"
	"ride-analytics/pkg/logging"
)

// Result describes the outcome of one export operation.
type Result struct {
	Type        string    `json:"type"` // "csv", "json", "xlsx", "sqlite", "postgres"
	Path        string    `json:"path"` // file path, directory or table namespace
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

// Manager writes derived analytics (never the uploaded rows) to the
// configured targets. Each target is independent; one failing does not stop
// the others.
type Manager struct {
	OutputDir   string
	Formats     []string
	PostgresDSN string

	log *logging.Logger
}

// NewManager creates a Manager for the given output directory and targets.
func NewManager(outputDir string, formats []string, postgresDSN string, log *logging.Logger) *Manager {
	return &Manager{
		OutputDir:   outputDir,
		Formats:     formats,
		PostgresDSN: postgresDSN,
		log:         log,
	}
}

// Run exports the dashboard to every configured target and reports one
// Result per target. The Postgres writer runs whenever a DSN is configured.
func (m *Manager) Run(dash model.Dashboard) []Result {
	var results []Result

	if len(m.Formats) > 0 {
		if err := os.MkdirAll(m.OutputDir, 0755); err != nil {
			return []Result{m.failure("file", m.OutputDir, fmt.Errorf("create output dir: %w", err))}
		}
	}

	for _, format := range m.Formats {
		var r Result
		switch format {
		case "csv":
			r = m.exportCSV(dash)
		case "json":
			r = m.exportJSON(dash)
		case "xlsx":
			r = m.exportXLSX(dash)
		case "sqlite":
			r = m.exportSQLite(dash)
		default:
			r = m.failure(format, "", fmt.Errorf("unknown export format: %s", format))
		}
		results = append(results, r)
	}

	if m.PostgresDSN != "" {
		results = append(results, m.exportPostgres(dash))
	}

	for _, r := range results {
		if r.Success {
			m.log.Info("[export] %s: %d records → %s", r.Type, r.RecordCount, r.Path)
		} else {
			m.log.Error("[export] %s failed: %s", r.Type, r.Error)
		}
	}
	return results
}

func (m *Manager) success(kind, path string, count int) Result {
	return Result{
		Type:        kind,
		Path:        path,
		RecordCount: count,
		Success:     true,
		ExportedAt:  time.Now().UTC(),
	}
}

func (m *Manager) failure(kind, path string, err error) Result {
	return Result{
		Type:       kind,
		Path:       path,
		Success:    false,
		Error:      err.Error(),
		ExportedAt: time.Now().UTC(),
	}
}

func (m *Manager) outPath(name string) string {
	return filepath.Join(m.OutputDir, name)
}

// recordCount is the number of derived rows a dashboard carries across the
// snapshot and all four groupings.
func recordCount(dash model.Dashboard) int {
	return 1 +
		len(dash.TimeSeries) +
		len(dash.TopRoutes) +
		len(dash.CancellationReasons) +
		len(dash.VehicleTypes) +
		len(dash.PaymentMethods)
}
