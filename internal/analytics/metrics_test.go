package analytics

import (
	"testing"

	"ride-analytics/internal/model"
)

func TestComputeMetricsEmptyView(t *testing.T) {
	snap := ComputeMetrics(nil)

	if snap.TotalBookings != 0 || snap.CompletedRides != 0 || snap.TotalRevenue != 0 {
		t.Errorf("non-zero snapshot for empty view: %+v", snap)
	}
	if snap.CompletionRate != "0.0" || snap.CancellationRate != "0.0" {
		t.Errorf("rates = %q/%q, want 0.0/0.0", snap.CompletionRate, snap.CancellationRate)
	}
}

func TestComputeMetricsCountsAndRates(t *testing.T) {
	records := []model.BookingRecord{
		{Status: "Completed", BookingValue: 100, RideDistance: 10, DriverRating: 4, CustomerRating: 5},
		{Status: "Completed", BookingValue: 200.555, RideDistance: 20, DriverRating: 5},
		{Status: "Completed", BookingValue: 50, RideDistance: 30},
		{Status: "Cancelled by Customer"},
		{Status: "Cancelled by Driver"},
		{Status: "No Driver Found"},
		{Status: "Incomplete"},
	}

	snap := ComputeMetrics(records)

	if snap.TotalBookings != 7 {
		t.Errorf("TotalBookings = %d, want 7", snap.TotalBookings)
	}
	if snap.CompletedRides != 3 {
		t.Errorf("CompletedRides = %d, want 3", snap.CompletedRides)
	}
	if snap.CancelledByCustomer != 1 || snap.CancelledByDriver != 1 {
		t.Errorf("cancellations = %d/%d, want 1/1", snap.CancelledByCustomer, snap.CancelledByDriver)
	}
	if snap.IncompleteRides != 1 || snap.NoDriverFound != 1 {
		t.Errorf("incomplete/noDriver = %d/%d, want 1/1", snap.IncompleteRides, snap.NoDriverFound)
	}
	if snap.TotalRevenue != 350.56 {
		t.Errorf("TotalRevenue = %v, want 350.56", snap.TotalRevenue)
	}
	if snap.TotalDistance != 60 {
		t.Errorf("TotalDistance = %v, want 60", snap.TotalDistance)
	}
	if snap.AvgRideDistance != 20 {
		t.Errorf("AvgRideDistance = %v, want 20", snap.AvgRideDistance)
	}
	// 3/7 and 2/7 as one-decimal percentages.
	if snap.CompletionRate != "42.9" {
		t.Errorf("CompletionRate = %q, want 42.9", snap.CompletionRate)
	}
	if snap.CancellationRate != "28.6" {
		t.Errorf("CancellationRate = %q, want 28.6", snap.CancellationRate)
	}
}

func TestComputeMetricsReconcilesStatusAndCounters(t *testing.T) {
	// One row carries the cancellation as a status, five others carry it
	// only as a numeric counter. The count is the max of the two totals.
	records := []model.BookingRecord{
		{Status: "Cancelled by Customer"},
		{Status: "Completed", CancelledByCustomer: 2},
		{Status: "Completed", CancelledByCustomer: 3},
	}

	snap := ComputeMetrics(records)
	if snap.CancelledByCustomer != 5 {
		t.Errorf("CancelledByCustomer = %d, want max(1, 5) = 5", snap.CancelledByCustomer)
	}
}

func TestComputeMetricsStatusWinsWhenCountersSmaller(t *testing.T) {
	records := []model.BookingRecord{
		{Status: "Cancelled by Driver"},
		{Status: "Cancelled by Driver"},
		{Status: "Cancelled by Driver", CancelledByDriver: 1},
	}

	snap := ComputeMetrics(records)
	if snap.CancelledByDriver != 3 {
		t.Errorf("CancelledByDriver = %d, want max(3, 1) = 3", snap.CancelledByDriver)
	}
}

func TestComputeMetricsIgnoresNonPositiveCounters(t *testing.T) {
	records := []model.BookingRecord{
		{Status: "Completed", IncompleteRides: -1},
		{Status: "Completed", IncompleteRides: 0},
		{Status: "Incomplete", IncompleteRides: 1},
	}

	snap := ComputeMetrics(records)
	if snap.IncompleteRides != 1 {
		t.Errorf("IncompleteRides = %d, want 1", snap.IncompleteRides)
	}
}

func TestComputeMetricsRevenueCompletedOnly(t *testing.T) {
	records := []model.BookingRecord{
		{Status: "Completed", BookingValue: 100, RideDistance: 5},
		{Status: "Cancelled by Customer", BookingValue: 400, RideDistance: 50},
	}

	snap := ComputeMetrics(records)
	if snap.TotalRevenue != 100 {
		t.Errorf("TotalRevenue = %v, want 100", snap.TotalRevenue)
	}
	if snap.TotalDistance != 5 {
		t.Errorf("TotalDistance = %v, want 5", snap.TotalDistance)
	}
}

func TestComputeMetricsRatingWindow(t *testing.T) {
	records := []model.BookingRecord{
		{Status: "Completed", DriverRating: 4, CustomerRating: 0},  // 0 excluded
		{Status: "Completed", DriverRating: 6, CustomerRating: 2},  // 6 out of range
		{Status: "Cancelled by Driver", DriverRating: 5},           // not completed
		{Status: "Completed", DriverRating: 2, CustomerRating: 4},
	}

	snap := ComputeMetrics(records)
	if snap.AvgDriverRating != 3 {
		t.Errorf("AvgDriverRating = %v, want (4+2)/2 = 3", snap.AvgDriverRating)
	}
	if snap.AvgCustomerRating != 3 {
		t.Errorf("AvgCustomerRating = %v, want (2+4)/2 = 3", snap.AvgCustomerRating)
	}
}

func TestComputeMetricsIdempotent(t *testing.T) {
	records := []model.BookingRecord{
		{Status: "Completed", BookingValue: 123.456, DriverRating: 4.5},
		{Status: "Cancelled by Customer", CancelledByCustomer: 1},
	}

	first := ComputeMetrics(records)
	second := ComputeMetrics(records)
	if first != second {
		t.Errorf("snapshots differ: %+v vs %+v", first, second)
	}
}
