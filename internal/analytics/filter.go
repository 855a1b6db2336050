package analytics

import "ride-analytics/internal/model"

// All is the sentinel criterion value meaning "no constraint" on a
// categorical dimension.
const All = "all"

// Filter applies the criteria as a pure predicate conjunction, preserving
// the relative order of records. An empty result is a valid view.
func Filter(records []model.BookingRecord, c model.FilterCriteria) []model.BookingRecord {
	out := make([]model.BookingRecord, 0, len(records))
	for _, r := range records {
		if !matchesCategory(r.VehicleType, c.VehicleType) {
			continue
		}
		if !matchesCategory(r.PaymentMethod, c.PaymentMethod) {
			continue
		}
		if c.StartDate != "" && r.Date < c.StartDate {
			continue
		}
		if c.EndDate != "" && r.Date > c.EndDate {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesCategory(value, criterion string) bool {
	if criterion == "" || criterion == All {
		return true
	}
	return value == criterion
}
