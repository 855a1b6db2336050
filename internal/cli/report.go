package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ride-analytics/internal/analytics"
	"ride-analytics/internal/ingest"
	"ride-analytics/internal/model"
	"ride-analytics/internal/schema"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

var (
	flagVehicleType   string
	flagPaymentMethod string
	flagStartDate     string
	flagEndDate       string
	flagExport        bool
)

var reportCmd = &cobra.Command{
	Use:   "report <bookings.csv>",
	Short: "Render a one-shot analytics report for a bookings CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadSchema()
		if err != nil {
			return err
		}

		headers, rows, err := ingest.ReadFile(args[0])
		if err != nil {
			return err
		}
		records := schema.NewNormalizer(table, log).Normalize(headers, rows)

		dash := analytics.BuildDashboard(records, model.FilterCriteria{
			VehicleType:   flagVehicleType,
			PaymentMethod: flagPaymentMethod,
			StartDate:     flagStartDate,
			EndDate:       flagEndDate,
		})
		printDashboard(dash)

		if flagExport {
			for _, r := range newExporter().Run(dash) {
				if !r.Success {
					return fmt.Errorf("export %s: %s", r.Type, r.Error)
				}
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&flagVehicleType, "vehicle-type", "", "restrict to one vehicle type")
	reportCmd.Flags().StringVar(&flagPaymentMethod, "payment-method", "", "restrict to one payment method")
	reportCmd.Flags().StringVar(&flagStartDate, "start-date", "", "inclusive start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&flagEndDate, "end-date", "", "inclusive end date (YYYY-MM-DD)")
	reportCmd.Flags().BoolVar(&flagExport, "export", false, "also write the configured export targets")
	rootCmd.AddCommand(reportCmd)
}

func printDashboard(dash model.Dashboard) {
	m := dash.Metrics

	fmt.Printf("\n%s%s=== RIDE BOOKINGS REPORT ===%s\n\n", ansiBold, ansiCyan, ansiReset)

	fmt.Printf("%sBookings%s\n", ansiBold, ansiReset)
	fmt.Printf("  Total:                 %d\n", m.TotalBookings)
	fmt.Printf("  Completed:             %s%d%s (%s%%)\n", ansiGreen, m.CompletedRides, ansiReset, m.CompletionRate)
	fmt.Printf("  Cancelled by customer: %d\n", m.CancelledByCustomer)
	fmt.Printf("  Cancelled by driver:   %d\n", m.CancelledByDriver)
	fmt.Printf("  Incomplete:            %d\n", m.IncompleteRides)
	fmt.Printf("  No driver found:       %d\n", m.NoDriverFound)
	fmt.Printf("  Cancellation rate:     %s%s%%%s\n\n", ansiYellow, m.CancellationRate, ansiReset)

	fmt.Printf("%sCompleted rides%s\n", ansiBold, ansiReset)
	fmt.Printf("  Revenue:           %.2f\n", m.TotalRevenue)
	fmt.Printf("  Distance:          %.2f\n", m.TotalDistance)
	fmt.Printf("  Avg ride distance: %.2f\n", m.AvgRideDistance)
	fmt.Printf("  Avg driver rating:   %.2f\n", m.AvgDriverRating)
	fmt.Printf("  Avg customer rating: %.2f\n\n", m.AvgCustomerRating)

	if len(dash.TopRoutes) > 0 {
		fmt.Printf("%sTop routes%s\n", ansiBold, ansiReset)
		for i, r := range dash.TopRoutes {
			fmt.Printf("  %2d. %-50s %4d rides  %10.2f\n", i+1, r.Route, r.Count, r.Revenue)
		}
		fmt.Println()
	}

	if len(dash.CancellationReasons) > 0 {
		fmt.Printf("%sCancellation reasons%s\n", ansiBold, ansiReset)
		for _, r := range dash.CancellationReasons {
			fmt.Printf("  %-40s %d\n", r.Reason, r.Count)
		}
		fmt.Println()
	}

	if len(dash.VehicleTypes) > 0 {
		fmt.Printf("%sBy vehicle type%s\n", ansiBold, ansiReset)
		for _, c := range dash.VehicleTypes {
			fmt.Printf("  %-20s %d\n", c.Name, c.Count)
		}
		fmt.Println()
	}

	if len(dash.PaymentMethods) > 0 {
		fmt.Printf("%sBy payment method%s\n", ansiBold, ansiReset)
		for _, c := range dash.PaymentMethods {
			fmt.Printf("  %-20s %d\n", c.Name, c.Count)
		}
		fmt.Println()
	}

	if n := len(dash.TimeSeries); n > 0 {
		first, last := dash.TimeSeries[0], dash.TimeSeries[n-1]
		fmt.Printf("%sTime series%s  %d days, %s → %s\n\n", ansiBold, ansiReset, n, first.Date, last.Date)
	}
}
