package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "ride-analytics/docs"
	"ride-analytics/pkg/router"
)

// RegisterRoutes binds the analytics API onto the router.
func RegisterRoutes(r *router.Router, h *Handler) {
	r.POST("/api/v1/datasets", h.UploadDataset)
	r.GET("/api/v1/datasets/current", h.CurrentDataset)

	r.GET("/api/v1/analytics/metrics", h.Metrics)
	r.GET("/api/v1/analytics/timeseries", h.TimeSeries)
	r.GET("/api/v1/analytics/routes", h.Routes)
	r.GET("/api/v1/analytics/cancellations", h.Cancellations)
	r.GET("/api/v1/analytics/categories", h.Categories)
	r.GET("/api/v1/analytics/filters", h.FilterOptions)
	r.GET("/api/v1/analytics/dashboard", h.Dashboard)

	r.POST("/api/v1/export", h.Export)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
