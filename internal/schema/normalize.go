package schema

import (
	"math"
	"strconv"
	"strings"
	"time"

	"ride-analytics/internal/model"
	"ride-analytics/pkg/logging"
)

// Normalizer coerces raw rows into typed booking records according to a
// schema table. Coercion is total: no input, however malformed, makes it
// return an error.
type Normalizer struct {
	table *Table
	log   *logging.Logger
}

// NewNormalizer creates a Normalizer over the given schema table.
func NewNormalizer(table *Table, log *logging.Logger) *Normalizer {
	return &Normalizer{table: table, log: log}
}

// Normalize turns raw rows into clean records. Headers are trimmed once and
// the trimmed name decides the field, while the value is read through the
// original header as delivered by the tokenizer. Rows without a Booking ID
// are dropped; they are blank trailing rows.
func (n *Normalizer) Normalize(headers []string, rows []model.RawRow) []model.BookingRecord {
	trimmed := make([]string, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
	}

	records := make([]model.BookingRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		rec := model.BookingRecord{}

		for i, h := range headers {
			name := trimmed[i]
			raw := row[h]

			kind, declared := n.table.KindOf(name)
			if !declared {
				// Schema drift: keep the column, untouched.
				if raw != nil {
					if rec.Extra == nil {
						rec.Extra = make(map[string]any)
					}
					rec.Extra[name] = raw
				}
				continue
			}

			switch kind {
			case Categorical:
				n.setCategorical(&rec, name, CleanString(raw))
			case Numeric:
				n.setNumeric(&rec, name, CoerceFloat(raw))
			}
		}

		if rec.BookingID == "" {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	if n.log != nil {
		n.log.Info("[schema] Normalized %d rows → %d records (dropped %d without Booking ID)",
			len(rows), len(records), dropped)
	}
	return records
}

func (n *Normalizer) setCategorical(rec *model.BookingRecord, name, value string) {
	switch name {
	case ColDate:
		rec.Date = CanonicalDate(value)
	case ColTime:
		rec.Time = value
	case ColBookingID:
		rec.BookingID = value
	case ColBookingStatus:
		rec.Status = value
	case ColCustomerID:
		rec.CustomerID = value
	case ColVehicleType:
		rec.VehicleType = value
	case ColPickupLocation:
		rec.PickupLocation = value
	case ColDropLocation:
		rec.DropLocation = value
	case ColCustomerCancelReason:
		rec.CustomerCancelReason = value
	case ColDriverCancelReason:
		rec.DriverCancelReason = value
	case ColIncompleteReason:
		rec.IncompleteReason = value
	case ColPaymentMethod:
		rec.PaymentMethod = value
	default:
		// Declared via a schema override but not part of the fixed record:
		// keep the coerced value alongside the unknowns.
		if rec.Extra == nil {
			rec.Extra = make(map[string]any)
		}
		rec.Extra[name] = value
	}
}

func (n *Normalizer) setNumeric(rec *model.BookingRecord, name string, value float64) {
	switch name {
	case ColAvgVTAT:
		rec.AvgVTAT = value
	case ColAvgCTAT:
		rec.AvgCTAT = value
	case ColCancelledByCustomer:
		rec.CancelledByCustomer = value
	case ColCancelledByDriver:
		rec.CancelledByDriver = value
	case ColIncompleteRides:
		rec.IncompleteRides = value
	case ColBookingValue:
		rec.BookingValue = value
	case ColRideDistance:
		rec.RideDistance = value
	case ColDriverRating:
		rec.DriverRating = value
	case ColCustomerRating:
		rec.CustomerRating = value
	default:
		if rec.Extra == nil {
			rec.Extra = make(map[string]any)
		}
		rec.Extra[name] = value
	}
}

// CleanString normalizes a raw cell into a categorical value: one layer of
// enclosing quotes is stripped, escaped quotes are unescaped, the result is
// trimmed, and the sentinels "null" and "NaN" collapse to "".
func CleanString(raw any) string {
	var s string
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		s = unquote(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		s = strconv.Itoa(v)
	default:
		return ""
	}

	s = strings.TrimSpace(s)
	if s == "null" || s == "NaN" {
		return ""
	}
	return s
}

// CoerceFloat normalizes a raw cell into a finite number. Absent values, the
// literal string "null", parse failures, NaN and infinities all become 0, so
// a genuinely zero value is indistinguishable from an unparsable one. That
// ambiguity is accepted.
func CoerceFloat(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return float64(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case string:
		s := strings.TrimSpace(unquote(v))
		if s == "" || s == "null" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// unquote strips one layer of enclosing single or double quotes and turns
// escaped double quotes into literal ones.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			s = s[1 : len(s)-1]
		}
	}
	return strings.ReplaceAll(s, `\"`, `"`)
}

// dateLayouts are the input formats CanonicalDate rewrites to YYYY-MM-DD.
// ISO input short-circuits; anything unrecognized passes through as-is so
// string comparison degrades no worse than the raw data.
var dateLayouts = []string{
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

// CanonicalDate rewrites a date string into lexicographically comparable
// YYYY-MM-DD form where a known layout matches.
func CanonicalDate(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
