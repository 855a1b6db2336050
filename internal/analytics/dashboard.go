package analytics

import (
	"sort"

	"ride-analytics/internal/model"
)

// BuildDashboard computes the complete output boundary for one base record
// set and one set of filter criteria: the metrics snapshot, all four
// groupings, and the filter option lists. It filters once and is a pure
// function of its inputs; the host re-invokes it on every criteria change.
func BuildDashboard(records []model.BookingRecord, c model.FilterCriteria) model.Dashboard {
	filtered := Filter(records, c)

	return model.Dashboard{
		Criteria:            c,
		Metrics:             ComputeMetrics(filtered),
		TimeSeries:          TimeSeries(filtered),
		TopRoutes:           TopRoutes(filtered),
		CancellationReasons: CancellationReasons(filtered),
		VehicleTypes:        CountByVehicleType(filtered),
		PaymentMethods:      CountByPaymentMethod(filtered),
		Options:             Options(records),
	}
}

// Options lists the distinct values for each filter dimension. They come
// from the unfiltered base set so a selection never prunes its own
// alternatives out of the list.
func Options(records []model.BookingRecord) model.FilterOptions {
	return model.FilterOptions{
		VehicleTypes:   distinct(records, func(r model.BookingRecord) string { return r.VehicleType }),
		PaymentMethods: distinct(records, func(r model.BookingRecord) string { return r.PaymentMethod }),
	}
}

func distinct(records []model.BookingRecord, key func(model.BookingRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
