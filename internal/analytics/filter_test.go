package analytics

import (
	"testing"

	"ride-analytics/internal/model"
)

func filterFixture() []model.BookingRecord {
	return []model.BookingRecord{
		{BookingID: "B1", VehicleType: "Auto", PaymentMethod: "UPI", Date: "2024-03-01"},
		{BookingID: "B2", VehicleType: "Bike", PaymentMethod: "Cash", Date: "2024-03-05"},
		{BookingID: "B3", VehicleType: "Auto", PaymentMethod: "Cash", Date: "2024-03-10"},
		{BookingID: "B4", VehicleType: "Sedan", PaymentMethod: "UPI", Date: "2024-03-15"},
	}
}

func ids(records []model.BookingRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.BookingID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.FilterCriteria
		want     []string
	}{
		{"no criteria", model.FilterCriteria{}, []string{"B1", "B2", "B3", "B4"}},
		{"all sentinel", model.FilterCriteria{VehicleType: All, PaymentMethod: All}, []string{"B1", "B2", "B3", "B4"}},
		{"vehicle type", model.FilterCriteria{VehicleType: "Auto"}, []string{"B1", "B3"}},
		{"payment method", model.FilterCriteria{PaymentMethod: "UPI"}, []string{"B1", "B4"}},
		{"conjunction", model.FilterCriteria{VehicleType: "Auto", PaymentMethod: "Cash"}, []string{"B3"}},
		{"start date inclusive", model.FilterCriteria{StartDate: "2024-03-05"}, []string{"B2", "B3", "B4"}},
		{"end date inclusive", model.FilterCriteria{EndDate: "2024-03-05"}, []string{"B1", "B2"}},
		{"date window", model.FilterCriteria{StartDate: "2024-03-02", EndDate: "2024-03-12"}, []string{"B2", "B3"}},
		{"empty result", model.FilterCriteria{VehicleType: "Bike", PaymentMethod: "UPI"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(filterFixture(), tt.criteria))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := filterFixture()
	Filter(records, model.FilterCriteria{VehicleType: "Auto"})
	if records[1].BookingID != "B2" {
		t.Error("input slice reordered")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, model.FilterCriteria{VehicleType: "Auto"}); len(got) != 0 {
		t.Errorf("got %d records from nil input", len(got))
	}
}
