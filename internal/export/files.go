package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"ride-analytics/internal/model"
)

// exportJSON writes the full dashboard as one JSON document.
func (m *Manager) exportJSON(dash model.Dashboard) Result {
	path := m.outPath("dashboard.json")

	f, err := os.Create(path)
	if err != nil {
		return m.failure("json", path, fmt.Errorf("create file: %w", err))
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dash); err != nil {
		return m.failure("json", path, fmt.Errorf("encode dashboard: %w", err))
	}

	return m.success("json", path, recordCount(dash))
}

// exportCSV writes one CSV file per output table into the output directory.
func (m *Manager) exportCSV(dash model.Dashboard) Result {
	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"metrics.csv", []string{"metric", "value"}, metricRows(dash.Metrics)},
		{"timeseries.csv", []string{"date", "bookings", "completed", "cancelled", "revenue"}, timeSeriesRows(dash.TimeSeries)},
		{"routes.csv", []string{"route", "count", "revenue"}, routeRows(dash.TopRoutes)},
		{"reasons.csv", []string{"reason", "count"}, reasonRows(dash.CancellationReasons)},
		{"categories.csv", []string{"dimension", "name", "count"}, categoryRows(dash)},
	}

	total := 0
	for _, table := range files {
		path := m.outPath(table.name)
		if err := writeCSV(path, table.header, table.rows); err != nil {
			return m.failure("csv", path, err)
		}
		total += len(table.rows)
	}

	return m.success("csv", m.OutputDir, total)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

func metricRows(s model.MetricsSnapshot) [][]string {
	return [][]string{
		{"total_bookings", strconv.Itoa(s.TotalBookings)},
		{"completed_rides", strconv.Itoa(s.CompletedRides)},
		{"cancelled_by_customer", strconv.Itoa(s.CancelledByCustomer)},
		{"cancelled_by_driver", strconv.Itoa(s.CancelledByDriver)},
		{"incomplete_rides", strconv.Itoa(s.IncompleteRides)},
		{"no_driver_found", strconv.Itoa(s.NoDriverFound)},
		{"total_revenue", formatFloat(s.TotalRevenue)},
		{"total_distance", formatFloat(s.TotalDistance)},
		{"avg_ride_distance", formatFloat(s.AvgRideDistance)},
		{"avg_driver_rating", formatFloat(s.AvgDriverRating)},
		{"avg_customer_rating", formatFloat(s.AvgCustomerRating)},
		{"completion_rate", s.CompletionRate},
		{"cancellation_rate", s.CancellationRate},
	}
}

func timeSeriesRows(points []model.TimePoint) [][]string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Date,
			strconv.Itoa(p.Bookings),
			strconv.Itoa(p.Completed),
			strconv.Itoa(p.Cancelled),
			formatFloat(p.Revenue),
		})
	}
	return rows
}

func routeRows(routes []model.RouteStat) [][]string {
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []string{r.Route, strconv.Itoa(r.Count), formatFloat(r.Revenue)})
	}
	return rows
}

func reasonRows(reasons []model.ReasonCount) [][]string {
	rows := make([][]string, 0, len(reasons))
	for _, r := range reasons {
		rows = append(rows, []string{r.Reason, strconv.Itoa(r.Count)})
	}
	return rows
}

func categoryRows(dash model.Dashboard) [][]string {
	var rows [][]string
	for _, c := range dash.VehicleTypes {
		rows = append(rows, []string{"vehicle_type", c.Name, strconv.Itoa(c.Count)})
	}
	for _, c := range dash.PaymentMethods {
		rows = append(rows, []string{"payment_method", c.Name, strconv.Itoa(c.Count)})
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
