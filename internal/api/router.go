package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter registers the tournament routes. When metricsHandler is non-nil
// it is mounted at /metrics.
func NewRouter(handler *Handler, logger *logrus.Logger, metricsHandler http.Handler) http.Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	router := mux.NewRouter()
	router.Use(loggingMiddleware(logger))

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/tournament", handler.CreateTournament).Methods(http.MethodPost)
	router.HandleFunc("/tournament", handler.DeleteTournament).Methods(http.MethodDelete)
	router.HandleFunc("/fixtures", handler.Fixtures).Methods(http.MethodGet)
	router.HandleFunc("/results", handler.RecordResult).Methods(http.MethodPost)
	router.HandleFunc("/results", handler.Results).Methods(http.MethodGet)
	router.HandleFunc("/standings", handler.Standings).Methods(http.MethodGet)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}
	return router
}
