package analytics

import (
	"math"
	"sort"
	"strings"

	"ride-analytics/internal/model"
)

const (
	// UnknownCategory labels records whose categorical value is absent.
	UnknownCategory = "Unknown"

	// RouteSeparator joins pickup and drop into a route key.
	RouteSeparator = " → "

	timeSeriesLimit = 30
	topRoutesLimit  = 10
	topReasonsLimit = 8
)

// Every grouping engine follows the same shape: one pass over the filtered
// view accumulating into a map keyed by the dimension value, then
// materialize, sort and truncate. None of them hold state across calls.

// CountByVehicleType buckets records by vehicle type.
func CountByVehicleType(records []model.BookingRecord) []model.CategoryCount {
	return countByCategory(records, func(r model.BookingRecord) string { return r.VehicleType })
}

// CountByPaymentMethod buckets records by payment method.
func CountByPaymentMethod(records []model.BookingRecord) []model.CategoryCount {
	return countByCategory(records, func(r model.BookingRecord) string { return r.PaymentMethod })
}

func countByCategory(records []model.BookingRecord, key func(model.BookingRecord) string) []model.CategoryCount {
	counts := make(map[string]int)
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = UnknownCategory
		}
		counts[k]++
	}

	out := make([]model.CategoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, model.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TimeSeries buckets records per date, keeping the most recent 30 distinct
// dates in ascending order. Revenue counts completed rides only and is
// rounded to the nearest integer per bucket; cancellations count both
// cancelled-by statuses.
func TimeSeries(records []model.BookingRecord) []model.TimePoint {
	buckets := make(map[string]*model.TimePoint)
	for _, r := range records {
		if r.Date == "" {
			continue
		}
		p, ok := buckets[r.Date]
		if !ok {
			p = &model.TimePoint{Date: r.Date}
			buckets[r.Date] = p
		}
		p.Bookings++

		switch strings.ToLower(r.Status) {
		case StatusCompleted:
			p.Completed++
			p.Revenue += r.BookingValue
		case StatusCancelledByCustomer, StatusCancelledByDriver:
			p.Cancelled++
		}
	}

	out := make([]model.TimePoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	if len(out) > timeSeriesLimit {
		out = out[len(out)-timeSeriesLimit:]
	}
	for i := range out {
		out[i].Revenue = math.Round(out[i].Revenue)
	}
	return out
}

// TopRoutes ranks pickup → drop pairs by booking count. A record only forms
// a route key when both endpoints are present; revenue sums booking values
// regardless of status and is rounded to the nearest integer.
func TopRoutes(records []model.BookingRecord) []model.RouteStat {
	routes := make(map[string]*model.RouteStat)
	for _, r := range records {
		if r.PickupLocation == "" || r.DropLocation == "" {
			continue
		}
		key := r.PickupLocation + RouteSeparator + r.DropLocation
		s, ok := routes[key]
		if !ok {
			s = &model.RouteStat{Route: key}
			routes[key] = s
		}
		s.Count++
		s.Revenue += r.BookingValue
	}

	out := make([]model.RouteStat, 0, len(routes))
	for _, s := range routes {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Route < out[j].Route
	})

	if len(out) > topRoutesLimit {
		out = out[:topRoutesLimit]
	}
	for i := range out {
		out[i].Revenue = math.Round(out[i].Revenue)
	}
	return out
}

// CancellationReasons merges customer-given and driver-given reasons into
// one key space and ranks the top 8 by count.
func CancellationReasons(records []model.BookingRecord) []model.ReasonCount {
	reasons := make(map[string]int)
	for _, r := range records {
		if r.CustomerCancelReason != "" {
			reasons[r.CustomerCancelReason]++
		}
		if r.DriverCancelReason != "" {
			reasons[r.DriverCancelReason]++
		}
	}

	out := make([]model.ReasonCount, 0, len(reasons))
	for reason, count := range reasons {
		out = append(out, model.ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})

	if len(out) > topReasonsLimit {
		out = out[:topReasonsLimit]
	}
	return out
}
