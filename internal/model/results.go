package model

// MetricsSnapshot is the immutable bundle of scalar summary statistics for
// one filtered view. It is recomputed wholesale on every filter change and
// has no identity beyond the view that produced it.
type MetricsSnapshot struct {
	TotalBookings  int `json:"totalBookings"`
	CompletedRides int `json:"completedRides"`

	// CancelledByCustomer, CancelledByDriver and IncompleteRides reconcile
	// two competing sources of the same fact: the row status string and the
	// per-row numeric counter. The reported count is the maximum of the two,
	// never the sum.
	CancelledByCustomer int `json:"cancelledByCustomer"`
	CancelledByDriver   int `json:"cancelledByDriver"`
	IncompleteRides     int `json:"incompleteRides"`
	NoDriverFound       int `json:"noDriverFound"`

	TotalRevenue    float64 `json:"totalRevenue"`
	TotalDistance   float64 `json:"totalDistance"`
	AvgRideDistance float64 `json:"avgRideDistance"`

	AvgDriverRating   float64 `json:"avgDriverRating"`
	AvgCustomerRating float64 `json:"avgCustomerRating"`

	// Rates are percentages formatted to one decimal place, "0.0" when the
	// view is empty.
	CompletionRate   string `json:"completionRate"`
	CancellationRate string `json:"cancellationRate"`
}

// CategoryCount is one slice of a categorical distribution (vehicle type,
// payment method).
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimePoint is one bucket of the per-date time series.
type TimePoint struct {
	Date      string  `json:"date"`
	Bookings  int     `json:"bookings"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

// RouteStat aggregates bookings over one pickup → drop pair.
type RouteStat struct {
	Route   string  `json:"route"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ReasonCount is one entry of the merged cancellation-reason ranking.
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// FilterOptions lists the distinct values available for each filter
// dimension, computed over the unfiltered record set.
type FilterOptions struct {
	VehicleTypes   []string `json:"vehicleTypes"`
	PaymentMethods []string `json:"paymentMethods"`
}

// Dashboard bundles everything the visualization layer consumes for one
// filtered view.
type Dashboard struct {
	Criteria            FilterCriteria  `json:"criteria"`
	Metrics             MetricsSnapshot `json:"metrics"`
	TimeSeries          []TimePoint     `json:"timeSeries"`
	TopRoutes           []RouteStat     `json:"topRoutes"`
	CancellationReasons []ReasonCount   `json:"cancellationReasons"`
	VehicleTypes        []CategoryCount `json:"vehicleTypes"`
	PaymentMethods      []CategoryCount `json:"paymentMethods"`
	Options             FilterOptions   `json:"options"`
}
