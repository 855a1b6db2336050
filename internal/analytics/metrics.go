package analytics

import (
	"math"
	"strconv"
	"strings"

	"ride-analytics/internal/model"
)

// Booking status values, compared case-insensitively throughout.
const (
	StatusCompleted           = "completed"
	StatusCancelledByCustomer = "cancelled by customer"
	StatusCancelledByDriver   = "cancelled by driver"
	StatusIncomplete          = "incomplete"
	StatusNoDriverFound       = "no driver found"
)

// ComputeMetrics derives the summary statistics for one filtered view.
// An empty view yields the all-zero snapshot with "0.0" rates.
//
// Cancellation and incomplete counts exist twice in the data: as a status
// string and as a per-row numeric counter. Datasets encode the fact either
// way, sometimes both, so the reported count is the maximum of the two
// totals rather than their sum. Summing would double count rows that carry
// both encodings.
func ComputeMetrics(records []model.BookingRecord) model.MetricsSnapshot {
	snap := model.MetricsSnapshot{
		CompletionRate:   "0.0",
		CancellationRate: "0.0",
	}
	if len(records) == 0 {
		return snap
	}

	var (
		custCancelStatus, driverCancelStatus, incompleteStatus int
		custCancelNumeric, driverCancelNumeric, incompleteSum  float64
		ratingSumDriver, ratingSumCustomer                     float64
		ratingCountDriver, ratingCountCustomer                 int
	)

	snap.TotalBookings = len(records)

	for _, r := range records {
		status := strings.ToLower(r.Status)
		switch status {
		case StatusCompleted:
			snap.CompletedRides++
			snap.TotalRevenue += r.BookingValue
			snap.TotalDistance += r.RideDistance
			if r.DriverRating > 0 && r.DriverRating <= 5 {
				ratingSumDriver += r.DriverRating
				ratingCountDriver++
			}
			if r.CustomerRating > 0 && r.CustomerRating <= 5 {
				ratingSumCustomer += r.CustomerRating
				ratingCountCustomer++
			}
		case StatusCancelledByCustomer:
			custCancelStatus++
		case StatusCancelledByDriver:
			driverCancelStatus++
		case StatusIncomplete:
			incompleteStatus++
		case StatusNoDriverFound:
			snap.NoDriverFound++
		}

		// The numeric counters only count when positive; 0 is the coercion
		// sink for absent and unparsable cells.
		if r.CancelledByCustomer > 0 {
			custCancelNumeric += r.CancelledByCustomer
		}
		if r.CancelledByDriver > 0 {
			driverCancelNumeric += r.CancelledByDriver
		}
		if r.IncompleteRides > 0 {
			incompleteSum += r.IncompleteRides
		}
	}

	cancelledByCustomer := math.Max(float64(custCancelStatus), custCancelNumeric)
	cancelledByDriver := math.Max(float64(driverCancelStatus), driverCancelNumeric)
	incomplete := math.Max(float64(incompleteStatus), incompleteSum)

	snap.CancelledByCustomer = int(math.Round(cancelledByCustomer))
	snap.CancelledByDriver = int(math.Round(cancelledByDriver))
	snap.IncompleteRides = int(math.Round(incomplete))

	snap.TotalRevenue = math.Round(snap.TotalRevenue*100) / 100

	if snap.CompletedRides > 0 {
		snap.AvgRideDistance = snap.TotalDistance / float64(snap.CompletedRides)
	}
	if ratingCountDriver > 0 {
		snap.AvgDriverRating = ratingSumDriver / float64(ratingCountDriver)
	}
	if ratingCountCustomer > 0 {
		snap.AvgCustomerRating = ratingSumCustomer / float64(ratingCountCustomer)
	}

	snap.CompletionRate = formatRate(float64(snap.CompletedRides), float64(snap.TotalBookings))
	snap.CancellationRate = formatRate(cancelledByCustomer+cancelledByDriver, float64(snap.TotalBookings))

	return snap
}

// formatRate renders part/total as a percentage with one decimal place.
func formatRate(part, total float64) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(part/total*100, 'f', 1, 64)
}
