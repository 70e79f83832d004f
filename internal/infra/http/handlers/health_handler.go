package handlers

import (
	"net/http"
	"time"

	"github.com/nazorathub/nazorat-hub/internal/infra/database"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
)

type HealthHandler struct {
	Gateway   *gateway.Gateway
	Cache     *database.Store
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Mode         string            `json:"mode"` // online (remote) or local (cache only)
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(gw *gateway.Gateway, cache *database.Store) *HealthHandler {
	return &HealthHandler{
		Gateway:   gw,
		Cache:     cache,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if err := h.Cache.Ping(); err != nil {
		deps["cache"] = "unhealthy: " + err.Error()
	} else {
		deps["cache"] = "healthy"
	}

	mode := "local"
	if h.Gateway.Connected() {
		mode = "online"
		deps["supabase"] = "configured"
	} else {
		deps["supabase"] = "not configured"
	}

	// The cache is the durable fallback; the service is only degraded when
	// the cache itself is broken.
	status := "healthy"
	if deps["cache"] != "healthy" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Mode:         mode,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
