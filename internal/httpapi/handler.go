package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arca/investment-simulator/internal/domain"
	"github.com/arca/investment-simulator/internal/simulator"
	"go.uber.org/zap"
)

// SimulatorHandler serves projection requests over HTTP
type SimulatorHandler struct {
	Simulator *simulator.Simulator
	Logger    *zap.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

// Simulate handles GET /api/simulator?initialInvestment=&monthlyInvestment=&period=
func (h SimulatorHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger.With(zap.String("method", "Simulate"), zap.String("request_id", RequestIDFromContext(r.Context())))

	q := r.URL.Query()
	raw := simulator.RawInput{
		InitialInvestment: q.Get(simulator.ParamInitialInvestment),
		MonthlyInvestment: q.Get(simulator.ParamMonthlyInvestment),
		Period:            q.Get(simulator.ParamPeriod),
	}

	resp, err := h.Simulator.Simulate(raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			logger.Warn("rejected simulation request",
				zap.Error(err),
				zap.String(simulator.ParamInitialInvestment, raw.InitialInvestment),
				zap.String(simulator.ParamMonthlyInvestment, raw.MonthlyInvestment),
				zap.String(simulator.ParamPeriod, raw.Period),
			)
			writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: domain.MissingParamsMessage})
			return
		}
		logger.Error("simulate", zap.Error(err))
		writeJSON(w, logger, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
		return
	}

	writeJSON(w, logger, http.StatusOK, resp)
}

// Health handles GET /healthz
func (h SimulatorHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.Logger, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: "Not found"})
	})
}

func methodNotAllowed(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}
