package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports whether a backing store is reachable. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides HTTP health check endpoints for the ETL process.
type HealthHandler struct {
	db        Pinger
	logger    *slog.Logger
	startedAt time.Time
}

// NewHealthHandler creates a new health check handler. The readiness probe
// reports not-ready until db answers a ping.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// healthResponse is the JSON response for the liveness endpoint.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// readinessResponse is the JSON response for the readiness endpoint.
type readinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: "failure-etl",
		Uptime:  time.Since(h.startedAt).String(),
	})
}

// Readyz handles readiness probe requests. The database is the only hard
// dependency of a run, so readiness is its reachability.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	resp := readinessResponse{
		Status:  "ready",
		Service: "failure-etl",
		Checks:  map[string]string{"database": "ok"},
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		status = http.StatusServiceUnavailable
		resp.Status = "not ready"
		resp.Checks["database"] = err.Error()
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
