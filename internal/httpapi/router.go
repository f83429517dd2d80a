package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRouter wires the simulator routes, middleware and CORS policy.
func NewRouter(h SimulatorHandler, corsOrigins []string) http.Handler {
	logger := h.Logger
	if logger == nil {
		logger = zap.NewNop()
		h.Logger = logger
	}

	r := mux.NewRouter()
	r.NotFoundHandler = notFound(logger)
	r.MethodNotAllowedHandler = methodNotAllowed(logger)
	r.Use(requestID, accessLog(logger), recoverer(logger))

	r.HandleFunc("/api/simulator", h.Simulate).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(r)
}
