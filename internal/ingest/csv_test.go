package ingest

import (
	"strings"
	"testing"
)

func TestReadTypesCells(t *testing.T) {
	input := `Booking ID,Booking Value,Ride Distance,Vehicle Type
CNR1,250,12.5,Auto
CNR2,,0.0,Bike
`
	headers, rows, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(headers) != 4 {
		t.Fatalf("got %d headers, want 4", len(headers))
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if v, ok := rows[0]["Booking Value"].(int); !ok || v != 250 {
		t.Errorf("Booking Value = %v (%T), want int 250", rows[0]["Booking Value"], rows[0]["Booking Value"])
	}
	if v, ok := rows[0]["Ride Distance"].(float64); !ok || v != 12.5 {
		t.Errorf("Ride Distance = %v (%T), want float64 12.5", rows[0]["Ride Distance"], rows[0]["Ride Distance"])
	}
	if v, ok := rows[0]["Vehicle Type"].(string); !ok || v != "Auto" {
		t.Errorf("Vehicle Type = %v, want Auto", rows[0]["Vehicle Type"])
	}
	if rows[1]["Booking Value"] != nil {
		t.Errorf("empty cell = %v, want nil", rows[1]["Booking Value"])
	}
}

func TestReadPreservesHeaderPadding(t *testing.T) {
	input := "  Booking ID ,Status\nCNR1,ok\n"

	headers, rows, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if headers[0] != "  Booking ID " {
		t.Errorf("header = %q, padding must survive tokenizing", headers[0])
	}
	if rows[0]["  Booking ID "] != "CNR1" {
		t.Errorf("row keyed by original header: %v", rows[0])
	}
}

func TestReadRaggedRows(t *testing.T) {
	input := "A,B,C\n1,2\n"

	_, rows, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rows[0]["C"] != nil {
		t.Errorf("short row cell = %v, want nil", rows[0]["C"])
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, _, err := Read(strings.NewReader("")); err == nil {
		t.Error("expected error for input without a header row")
	}
}
