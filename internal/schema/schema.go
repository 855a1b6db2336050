package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind classifies a declared column.
type Kind string

const (
	Categorical Kind = "categorical"
	Numeric     Kind = "numeric"
)

// Table maps trimmed column headers to their declared kind. It replaces the
// original string-list membership checks with a data-driven lookup that is
// consulted once per column during normalization. The table is advisory:
// columns it does not declare pass through normalization unmodified.
type Table struct {
	kinds map[string]Kind
}

// Header names of the ride bookings layout.
const (
	ColDate                 = "Date"
	ColTime                 = "Time"
	ColBookingID            = "Booking ID"
	ColBookingStatus        = "Booking Status"
	ColCustomerID           = "Customer ID"
	ColVehicleType          = "Vehicle Type"
	ColPickupLocation       = "Pickup Location"
	ColDropLocation         = "Drop Location"
	ColCustomerCancelReason = "Reason for cancelling by Customer"
	ColDriverCancelReason   = "Driver Cancellation Reason"
	ColIncompleteReason     = "Incomplete Rides Reason"
	ColPaymentMethod        = "Payment Method"

	ColAvgVTAT             = "Avg VTAT"
	ColAvgCTAT             = "Avg CTAT"
	ColCancelledByCustomer = "Cancelled Rides by Customer"
	ColCancelledByDriver   = "Cancelled Rides by Driver"
	ColIncompleteRides     = "Incomplete Rides"
	ColBookingValue        = "Booking Value"
	ColRideDistance        = "Ride Distance"
	ColDriverRating        = "Driver Ratings"
	ColCustomerRating      = "Customer Rating"
)

// Default returns the schema table for the ride bookings layout.
func Default() *Table {
	t := &Table{kinds: make(map[string]Kind)}

	for _, h := range []string{
		ColDate, ColTime, ColBookingID, ColBookingStatus, ColCustomerID,
		ColVehicleType, ColPickupLocation, ColDropLocation,
		ColCustomerCancelReason, ColDriverCancelReason, ColIncompleteReason,
		ColPaymentMethod,
	} {
		t.kinds[h] = Categorical
	}

	for _, h := range []string{
		ColAvgVTAT, ColAvgCTAT, ColCancelledByCustomer, ColCancelledByDriver,
		ColIncompleteRides, ColBookingValue, ColRideDistance,
		ColDriverRating, ColCustomerRating,
	} {
		t.kinds[h] = Numeric
	}

	return t
}

// KindOf reports the declared kind of a trimmed header, if any.
func (t *Table) KindOf(header string) (Kind, bool) {
	k, ok := t.kinds[header]
	return k, ok
}

// Declare adds or overrides a column declaration.
func (t *Table) Declare(header string, k Kind) {
	t.kinds[header] = k
}

// Len returns the number of declared columns.
func (t *Table) Len() int {
	return len(t.kinds)
}

// document is the on-disk shape of a schema override file.
type document struct {
	Categorical []string `yaml:"categorical"`
	Numeric     []string `yaml:"numeric"`
}

// LoadFile reads a YAML schema document and merges it over the default
// table. Columns listed in the file are declared (or re-declared) with the
// given kind; everything from the default layout stays in place.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", path, err)
	}

	t := Default()
	for _, h := range doc.Categorical {
		t.Declare(h, Categorical)
	}
	for _, h := range doc.Numeric {
		t.Declare(h, Numeric)
	}
	return t, nil
}
