package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"ride-analytics/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS metrics (
	name  TEXT PRIMARY KEY,
	value TEXT
);
CREATE TABLE IF NOT EXISTS timeseries (
	date      TEXT PRIMARY KEY,
	bookings  INTEGER,
	completed INTEGER,
	cancelled INTEGER,
	revenue   REAL
);
CREATE TABLE IF NOT EXISTS routes (
	route   TEXT PRIMARY KEY,
	count   INTEGER,
	revenue REAL
);
CREATE TABLE IF NOT EXISTS reasons (
	reason TEXT PRIMARY KEY,
	count  INTEGER
);
CREATE TABLE IF NOT EXISTS categories (
	dimension TEXT,
	name      TEXT,
	count     INTEGER,
	PRIMARY KEY (dimension, name)
);
`

// exportSQLite writes the dashboard into a SQLite results database. Tables
// hold the latest export only; each run clears and repopulates them.
func (m *Manager) exportSQLite(dash model.Dashboard) Result {
	path := m.outPath("analytics.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return m.failure("sqlite", path, fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return m.failure("sqlite", path, fmt.Errorf("create tables: %w", err))
	}

	tx, err := db.Begin()
	if err != nil {
		return m.failure("sqlite", path, fmt.Errorf("begin transaction: %w", err))
	}

	if err := writeSQLiteTables(tx, dash); err != nil {
		tx.Rollback()
		return m.failure("sqlite", path, err)
	}
	if err := tx.Commit(); err != nil {
		return m.failure("sqlite", path, fmt.Errorf("commit: %w", err))
	}

	return m.success("sqlite", path, recordCount(dash))
}

func writeSQLiteTables(tx *sql.Tx, dash model.Dashboard) error {
	for _, table := range []string{"metrics", "timeseries", "routes", "reasons", "categories"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, row := range metricRows(dash.Metrics) {
		if _, err := tx.Exec(`INSERT INTO metrics (name, value) VALUES (?, ?)`, row[0], row[1]); err != nil {
			return fmt.Errorf("insert metric %s: %w", row[0], err)
		}
	}
	for _, p := range dash.TimeSeries {
		if _, err := tx.Exec(`INSERT INTO timeseries (date, bookings, completed, cancelled, revenue) VALUES (?, ?, ?, ?, ?)`,
			p.Date, p.Bookings, p.Completed, p.Cancelled, p.Revenue); err != nil {
			return fmt.Errorf("insert timeseries %s: %w", p.Date, err)
		}
	}
	for _, r := range dash.TopRoutes {
		if _, err := tx.Exec(`INSERT INTO routes (route, count, revenue) VALUES (?, ?, ?)`,
			r.Route, r.Count, r.Revenue); err != nil {
			return fmt.Errorf("insert route %s: %w", r.Route, err)
		}
	}
	for _, r := range dash.CancellationReasons {
		if _, err := tx.Exec(`INSERT INTO reasons (reason, count) VALUES (?, ?)`,
			r.Reason, r.Count); err != nil {
			return fmt.Errorf("insert reason %s: %w", r.Reason, err)
		}
	}
	for _, c := range dash.VehicleTypes {
		if _, err := tx.Exec(`INSERT INTO categories (dimension, name, count) VALUES (?, ?, ?)`,
			"vehicle_type", c.Name, c.Count); err != nil {
			return fmt.Errorf("insert category %s: %w", c.Name, err)
		}
	}
	for _, c := range dash.PaymentMethods {
		if _, err := tx.Exec(`INSERT INTO categories (dimension, name, count) VALUES (?, ?, ?)`,
			"payment_method", c.Name, c.Count); err != nil {
			return fmt.Errorf("insert category %s: %w", c.Name, err)
		}
	}
	return nil
}
