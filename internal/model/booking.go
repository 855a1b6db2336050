package model

// RawRow is an untyped record as delivered by the CSV tokenizer. Keys are the
// original (possibly whitespace-padded) header strings; values are string,
// float64, int or nil depending on what the cell looked like.
type RawRow map[string]any

// BookingRecord is a fully typed, schema-coerced ride booking.
//
// Categorical fields hold a trimmed string with "" as the canonical absent
// value. Numeric fields are guaranteed finite; anything absent or unparsable
// was coerced to 0 during normalization.
type BookingRecord struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	BookingID      string `json:"bookingId"`
	Status         string `json:"bookingStatus"`
	CustomerID     string `json:"customerId"`
	VehicleType    string `json:"vehicleType"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	PaymentMethod  string `json:"paymentMethod"`

	CustomerCancelReason string `json:"customerCancelReason"`
	DriverCancelReason   string `json:"driverCancelReason"`
	IncompleteReason     string `json:"incompleteReason"`

	AvgVTAT             float64 `json:"avgVtat"`
	AvgCTAT             float64 `json:"avgCtat"`
	CancelledByCustomer float64 `json:"cancelledByCustomer"`
	CancelledByDriver   float64 `json:"cancelledByDriver"`
	IncompleteRides     float64 `json:"incompleteRides"`
	BookingValue        float64 `json:"bookingValue"`
	RideDistance        float64 `json:"rideDistance"`
	DriverRating        float64 `json:"driverRating"`
	CustomerRating      float64 `json:"customerRating"`

	// Extra carries values from headers the schema does not declare. The
	// schema is advisory, not an allow-list, so unknown columns survive
	// normalization unmodified.
	Extra map[string]any `json:"extra,omitempty"`
}

// FilterCriteria selects a view over a record set. Empty string (or "all"
// for the categorical dimensions) means no constraint on that dimension.
// Date bounds are inclusive and compared lexicographically, which is why
// dates are canonicalized to YYYY-MM-DD during normalization.
type FilterCriteria struct {
	VehicleType   string `json:"vehicleType"`
	PaymentMethod string `json:"paymentMethod"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}
