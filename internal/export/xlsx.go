package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ride-analytics/internal/model"
)

// exportXLSX writes the dashboard as a multi-sheet workbook.
func (m *Manager) exportXLSX(dash model.Dashboard) Result {
	path := m.outPath("report.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return m.failure("xlsx", path, fmt.Errorf("rename sheet: %w", err))
	}
	writeSheet(f, "Summary", [][]any{
		{"Metric", "Value"},
		{"Total Bookings", dash.Metrics.TotalBookings},
		{"Completed Rides", dash.Metrics.CompletedRides},
		{"Cancelled by Customer", dash.Metrics.CancelledByCustomer},
		{"Cancelled by Driver", dash.Metrics.CancelledByDriver},
		{"Incomplete Rides", dash.Metrics.IncompleteRides},
		{"No Driver Found", dash.Metrics.NoDriverFound},
		{"Total Revenue", dash.Metrics.TotalRevenue},
		{"Avg Ride Distance", dash.Metrics.AvgRideDistance},
		{"Avg Driver Rating", dash.Metrics.AvgDriverRating},
		{"Avg Customer Rating", dash.Metrics.AvgCustomerRating},
		{"Completion Rate (%)", dash.Metrics.CompletionRate},
		{"Cancellation Rate (%)", dash.Metrics.CancellationRate},
	})

	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Time Series", timeSeriesSheet(dash.TimeSeries)},
		{"Top Routes", routesSheet(dash.TopRoutes)},
		{"Cancellation Reasons", reasonsSheet(dash.CancellationReasons)},
		{"Categories", categoriesSheet(dash)},
	}
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return m.failure("xlsx", path, fmt.Errorf("create sheet %s: %w", s.name, err))
		}
		writeSheet(f, s.name, s.rows)
	}

	if err := f.SaveAs(path); err != nil {
		return m.failure("xlsx", path, fmt.Errorf("save workbook: %w", err))
	}
	return m.success("xlsx", path, recordCount(dash))
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			continue
		}
		_ = f.SetSheetRow(sheet, cell, &row)
	}
}

func timeSeriesSheet(points []model.TimePoint) [][]any {
	rows := [][]any{{"Date", "Bookings", "Completed", "Cancelled", "Revenue"}}
	for _, p := range points {
		rows = append(rows, []any{p.Date, p.Bookings, p.Completed, p.Cancelled, p.Revenue})
	}
	return rows
}

func routesSheet(routes []model.RouteStat) [][]any {
	rows := [][]any{{"Route", "Bookings", "Revenue"}}
	for _, r := range routes {
		rows = append(rows, []any{r.Route, r.Count, r.Revenue})
	}
	return rows
}

func reasonsSheet(reasons []model.ReasonCount) [][]any {
	rows := [][]any{{"Reason", "Count"}}
	for _, r := range reasons {
		rows = append(rows, []any{r.Reason, r.Count})
	}
	return rows
}

func categoriesSheet(dash model.Dashboard) [][]any {
	rows := [][]any{{"Dimension", "Name", "Count"}}
	for _, c := range dash.VehicleTypes {
		rows = append(rows, []any{"Vehicle Type", c.Name, c.Count})
	}
	for _, c := range dash.PaymentMethods {
		rows = append(rows, []any{"Payment Method", c.Name, c.Count})
	}
	return rows
}
