package http

import (
	"net/http"

	"perflog-analytics/internal/analyzers"
	"perflog-analytics/internal/shared/loggers"
	"perflog-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService analyzers.AnalysisService, maxUploadBytes int, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	mcutilsHandler := NewMcUtilsReportHandler(analysisService, maxUploadBytes)
	ethtoolHandler := NewEthtoolReportHandler(analysisService, maxUploadBytes)

	router.Route("/analyses", func(r chi.Router) {
		r.Post("/mcutils", errorHandlingAdapter(mcutilsHandler))
		r.Post("/ethtool", errorHandlingAdapter(ethtoolHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
