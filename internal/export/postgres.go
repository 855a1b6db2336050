package export

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"ride-analytics/internal/model"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS ride_snapshots (
	id          SERIAL PRIMARY KEY,
	criteria    JSONB       NOT NULL,
	metrics     JSONB       NOT NULL,
	timeseries  JSONB       NOT NULL,
	routes      JSONB       NOT NULL,
	reasons     JSONB       NOT NULL,
	categories  JSONB       NOT NULL,
	exported_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_ride_snapshots_exported_at ON ride_snapshots(exported_at);
`

// exportPostgres appends the dashboard to a Postgres history table. Unlike
// the file targets this one keeps every export, so a downstream BI tool can
// diff snapshots over time.
func (m *Manager) exportPostgres(dash model.Dashboard) Result {
	db, err := sql.Open("postgres", m.PostgresDSN)
	if err != nil {
		return m.failure("postgres", "ride_snapshots", fmt.Errorf("open: %w", err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return m.failure("postgres", "ride_snapshots", fmt.Errorf("ping: %w", err))
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		return m.failure("postgres", "ride_snapshots", fmt.Errorf("migrate: %w", err))
	}

	cols, err := snapshotColumns(dash)
	if err != nil {
		return m.failure("postgres", "ride_snapshots", err)
	}

	if _, err := db.Exec(
		`INSERT INTO ride_snapshots (criteria, metrics, timeseries, routes, reasons, categories) VALUES ($1, $2, $3, $4, $5, $6)`,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
	); err != nil {
		return m.failure("postgres", "ride_snapshots", fmt.Errorf("insert snapshot: %w", err))
	}

	return m.success("postgres", "ride_snapshots", recordCount(dash))
}

func snapshotColumns(dash model.Dashboard) ([][]byte, error) {
	categories := map[string][]model.CategoryCount{
		"vehicle_type":   dash.VehicleTypes,
		"payment_method": dash.PaymentMethods,
	}

	parts := []any{dash.Criteria, dash.Metrics, dash.TimeSeries, dash.TopRoutes, dash.CancellationReasons, categories}
	out := make([][]byte, 0, len(parts))
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot column: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}
