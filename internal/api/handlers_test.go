package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ride-analytics/internal/export"
	"ride-analytics/internal/model"
	"ride-analytics/internal/schema"
	"ride-analytics/internal/store"
	"ride-analytics/pkg/logging"
	"ride-analytics/pkg/router"
)

const bookingsCSV = `Date,Time,Booking ID,Booking Status,Customer ID,Vehicle Type,Pickup Location,Drop Location,Payment Method,Booking Value,Ride Distance,Driver Ratings,Customer Rating
2024-03-01,10:00,CNR1,Completed,C1,Auto,Airport,Downtown,UPI,100,10,4.5,4.0
2024-03-01,11:00,CNR2,Completed,C2,Bike,Airport,Downtown,Cash,50,5,4.0,5.0
2024-03-02,12:00,CNR3,Cancelled by Customer,C3,Auto,Station,Mall,UPI,0,0,0,0
2024-03-02,13:00,,Completed,C4,Auto,Station,Mall,UPI,75,7,5.0,5.0
`

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()
	log := logging.NewWriter(io.Discard)
	h := NewHandler(
		store.NewMemory(),
		schema.NewNormalizer(schema.Default(), log),
		export.NewManager(t.TempDir(), nil, "", log),
		log,
	)
	r := router.New()
	RegisterRoutes(r, h)
	return r
}

func do(t *testing.T, r *router.Router, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func uploadRaw(t *testing.T, r *router.Router) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/datasets", strings.NewReader(bookingsCSV), "text/csv")
	if w.Code != http.StatusOK {
		t.Fatalf("upload: status %d: %s", w.Code, w.Body.String())
	}
}

func TestAnalyticsWithoutDataset(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/datasets/current",
		"/api/v1/analytics/metrics",
		"/api/v1/analytics/dashboard",
		"/api/v1/analytics/filters",
	} {
		if w := do(t, r, http.MethodGet, path, nil, ""); w.Code != http.StatusNotFound {
			t.Errorf("%s: status %d, want 404", path, w.Code)
		}
	}
}

func TestUploadThenMetrics(t *testing.T) {
	r := newTestRouter(t)
	uploadRaw(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/analytics/metrics", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: status %d", w.Code)
	}

	var snap model.MetricsSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The blank-ID row is dropped during normalization.
	if snap.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", snap.TotalBookings)
	}
	if snap.CompletedRides != 2 || snap.CancelledByCustomer != 1 {
		t.Errorf("completed/cancelled = %d/%d, want 2/1", snap.CompletedRides, snap.CancelledByCustomer)
	}
	if snap.TotalRevenue != 150 {
		t.Errorf("TotalRevenue = %v, want 150", snap.TotalRevenue)
	}
}

func TestMetricsWithFilter(t *testing.T) {
	r := newTestRouter(t)
	uploadRaw(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/analytics/metrics?vehicleType=Bike", nil, "")
	var snap model.MetricsSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.TotalBookings != 1 || snap.TotalRevenue != 50 {
		t.Errorf("filtered snapshot = %+v", snap)
	}
}

func TestDashboardOptionsIgnoreFilter(t *testing.T) {
	r := newTestRouter(t)
	uploadRaw(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/analytics/dashboard?vehicleType=Bike", nil, "")
	var dash model.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dash.Metrics.TotalBookings != 1 {
		t.Errorf("filtered TotalBookings = %d, want 1", dash.Metrics.TotalBookings)
	}
	if len(dash.Options.VehicleTypes) != 2 {
		t.Errorf("options = %v, want both vehicle types", dash.Options.VehicleTypes)
	}
}

func TestUploadMultipart(t *testing.T) {
	r := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "bookings.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(bookingsCSV)); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	w := do(t, r, http.MethodPost, "/api/v1/datasets", &buf, mw.FormDataContentType())
	if w.Code != http.StatusOK {
		t.Fatalf("multipart upload: status %d: %s", w.Code, w.Body.String())
	}

	var info store.Info
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Source != "bookings.csv" {
		t.Errorf("Source = %q, want bookings.csv", info.Source)
	}
	if info.RecordCount != 3 || info.DroppedRows != 1 {
		t.Errorf("info = %+v, want 3 records / 1 dropped", info)
	}
}

func TestUploadReplacesDataset(t *testing.T) {
	r := newTestRouter(t)
	uploadRaw(t, r)
	uploadRaw(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/datasets/current", nil, "")
	var info store.Info
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Version != 2 {
		t.Errorf("Version = %d, want 2", info.Version)
	}
}

func TestSwaggerUIRoute(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/swagger/index.html", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("swagger UI: status %d, want 200", w.Code)
	}
}

func TestUploadMultipartMissingFile(t *testing.T) {
	r := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("note", "no file here")
	mw.Close()

	w := do(t, r, http.MethodPost, "/api/v1/datasets", &buf, mw.FormDataContentType())
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}
