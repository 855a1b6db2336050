package api

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"ride-analytics/internal/analytics"
	"ride-analytics/internal/export"
	"ride-analytics/internal/ingest"
	"ride-analytics/internal/model"
	"ride-analytics/internal/schema"
	"ride-analytics/internal/store"
	"ride-analytics/pkg/logging"
)

// maxUploadBytes bounds a single CSV upload (64 MiB covers hundreds of
// thousands of booking rows).
const maxUploadBytes = 64 << 20

// Handler owns the HTTP surface of the analytics engine.
type Handler struct {
	store      *store.Memory
	normalizer *schema.Normalizer
	exporter   *export.Manager
	log        *logging.Logger
}

// NewHandler wires the handler's collaborators.
func NewHandler(st *store.Memory, n *schema.Normalizer, ex *export.Manager, log *logging.Logger) *Handler {
	return &Handler{store: st, normalizer: n, exporter: ex, log: log}
}

// UploadDataset ingests a bookings CSV and replaces the current dataset
// @Summary Upload a bookings dataset
// @Description Upload a CSV of ride bookings; the file is normalized and replaces any previously uploaded dataset
// @Tags datasets
// @Accept mpfd
// @Produce json
// @Param file formData file true "Bookings CSV file"
// @Success 200 {object} store.Info "Dataset loaded"
// @Failure 400 {object} map[string]string "Unreadable upload"
// @Router /datasets [post]
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	body := r.Body
	source := "upload.csv"

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing multipart field 'file'")
			return
		}
		defer file.Close()
		body = file
		source = header.Filename
	}

	headers, rows, err := ingest.Read(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read CSV: %v", err))
		return
	}

	records := h.normalizer.Normalize(headers, rows)
	info := h.store.Replace(source, records, len(rows))

	h.log.Info("[api] Dataset %s loaded: %d records from %s", info.ID, info.RecordCount, source)
	writeJSON(w, http.StatusOK, info)
}

// CurrentDataset reports the currently loaded dataset
// @Summary Current dataset info
// @Tags datasets
// @Produce json
// @Success 200 {object} store.Info "Dataset info"
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /datasets/current [get]
func (h *Handler) CurrentDataset(w http.ResponseWriter, r *http.Request) {
	info, ok := h.store.CurrentInfo()
	if !ok {
		writeError(w, http.StatusNotFound, "no dataset loaded")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Metrics returns the summary statistics for the filtered view
// @Summary Summary metrics
// @Tags analytics
// @Produce json
// @Param vehicleType query string false "Vehicle type or 'all'"
// @Param paymentMethod query string false "Payment method or 'all'"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} model.MetricsSnapshot
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/metrics [get]
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(filtered []model.BookingRecord, _ []model.BookingRecord) any {
		return analytics.ComputeMetrics(filtered)
	})
}

// TimeSeries returns the per-date booking series
// @Summary Booking time series
// @Tags analytics
// @Produce json
// @Success 200 {array} model.TimePoint
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/timeseries [get]
func (h *Handler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(filtered []model.BookingRecord, _ []model.BookingRecord) any {
		return analytics.TimeSeries(filtered)
	})
}

// Routes returns the top pickup → drop pairs
// @Summary Top routes
// @Tags analytics
// @Produce json
// @Success 200 {array} model.RouteStat
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/routes [get]
func (h *Handler) Routes(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(filtered []model.BookingRecord, _ []model.BookingRecord) any {
		return analytics.TopRoutes(filtered)
	})
}

// Cancellations returns the ranked cancellation reasons
// @Summary Cancellation reasons
// @Tags analytics
// @Produce json
// @Success 200 {array} model.ReasonCount
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/cancellations [get]
func (h *Handler) Cancellations(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(filtered []model.BookingRecord, _ []model.BookingRecord) any {
		return analytics.CancellationReasons(filtered)
	})
}

// Categories returns the vehicle-type and payment-method distributions
// @Summary Category distributions
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string][]model.CategoryCount
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(filtered []model.BookingRecord, _ []model.BookingRecord) any {
		return map[string][]model.CategoryCount{
			"vehicleTypes":   analytics.CountByVehicleType(filtered),
			"paymentMethods": analytics.CountByPaymentMethod(filtered),
		}
	})
}

// FilterOptions returns the distinct values for each filter dimension
// @Summary Filter options
// @Tags analytics
// @Produce json
// @Success 200 {object} model.FilterOptions
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/filters [get]
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(_ []model.BookingRecord, base []model.BookingRecord) any {
		return analytics.Options(base)
	})
}

// Dashboard returns the complete output bundle for one filtered view
// @Summary Full dashboard
// @Tags analytics
// @Produce json
// @Success 200 {object} model.Dashboard
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /analytics/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.store.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no dataset loaded")
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildDashboard(ds.Records, criteriaFromQuery(r)))
}

// Export runs the configured export targets on the current filtered view
// @Summary Export derived analytics
// @Tags export
// @Produce json
// @Success 200 {array} export.Result
// @Failure 404 {object} map[string]string "No dataset loaded"
// @Router /export [post]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.store.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no dataset loaded")
		return
	}

	dash := analytics.BuildDashboard(ds.Records, criteriaFromQuery(r))
	results := h.exporter.Run(dash)
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// withView resolves the current dataset, filters it by the request's query
// criteria and writes the computed view. Every analytics read degrades to
// its zero/empty form on an empty filtered set; only a missing dataset is
// an error.
func (h *Handler) withView(w http.ResponseWriter, r *http.Request, compute func(filtered, base []model.BookingRecord) any) {
	ds, ok := h.store.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no dataset loaded")
		return
	}
	filtered := analytics.Filter(ds.Records, criteriaFromQuery(r))
	writeJSON(w, http.StatusOK, compute(filtered, ds.Records))
}

func criteriaFromQuery(r *http.Request) model.FilterCriteria {
	q := r.URL.Query()
	return model.FilterCriteria{
		VehicleType:   q.Get("vehicleType"),
		PaymentMethod: q.Get("paymentMethod"),
		StartDate:     q.Get("startDate"),
		EndDate:       q.Get("endDate"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
