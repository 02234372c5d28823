// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs ROI logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roicheck/core/roi"
	"roicheck/internal/errors"
	"roicheck/internal/logging"
	"roicheck/internal/metrics"
	"roicheck/render"
)

// Server is the API server
type Server struct {
	calc    *roi.Calculator
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server around a calculator.
func NewServer(version string, calc *roi.Calculator) *Server {
	s := &Server{
		calc:    calc,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoint
	s.mux.HandleFunc("POST /evaluate", s.handleEvaluate)

	// Supporting endpoints
	s.mux.HandleFunc("GET /assumptions", s.handleAssumptions)
	s.mux.HandleFunc("GET /plans", s.handlePlans)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEvaluate handles POST /evaluate
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.EvaluationsTotal.WithLabelValues("api", "invalid_json").Inc()
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := req.toProfile(s.calc.Assumptions())
	if err != nil {
		metrics.EvaluationsTotal.WithLabelValues("api", "invalid_input").Inc()
		s.writeError(w, string(errors.TypeInput), err.Error(), http.StatusBadRequest)
		return
	}

	// Execute engine (NO ROI LOGIC HERE)
	result, err := s.calc.Evaluate(profile)
	if err != nil {
		if errors.IsType(err, errors.TypeInput) {
			metrics.EvaluationsTotal.WithLabelValues("api", "invalid_input").Inc()
			s.writeError(w, string(errors.TypeInput), err.Error(), http.StatusBadRequest)
			return
		}
		metrics.EvaluationsTotal.WithLabelValues("api", "error").Inc()
		s.writeError(w, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError)
		return
	}

	metrics.EvaluationsTotal.WithLabelValues("api", "success").Inc()
	metrics.RecommendedPlans.WithLabelValues(result.RecommendedPlan.String()).Inc()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())

	logging.Debug("evaluated profile",
		zap.String("request_id", requestID),
		zap.Int("staff", profile.Staff),
		zap.String("plan", result.RecommendedPlan.String()))

	s.writeJSON(w, toResponse(requestID, result, s.calc.Assumptions(), time.Since(start).Milliseconds()), http.StatusOK)
}

// handleAssumptions handles GET /assumptions
func (s *Server) handleAssumptions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.calc.Assumptions(), http.StatusOK)
}

// handlePlans handles GET /plans
func (s *Server) handlePlans(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"plans": render.PlanTiers(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "roicheck",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
