package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/loan-earnings/pkg/response"
)

// NewRouter wires the health and API routes
func NewRouter(calculatorHandler *CalculatorHandler, healthHandler *HealthHandler, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	router.Use(response.LoggingMiddleware(logger))
	router.Use(response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(response.JSONMiddleware)

	api.HandleFunc("/calculations", calculatorHandler.CreateCalculation).Methods("POST", "OPTIONS")
	api.HandleFunc("/schedules", calculatorHandler.CreateSchedule).Methods("POST", "OPTIONS")
	api.HandleFunc("/datasets", calculatorHandler.ListDatasets).Methods("GET")
	api.HandleFunc("/datasets/{dataset}/categories", calculatorHandler.ListCategories).Methods("GET")

	return router
}
