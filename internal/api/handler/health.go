package handler

import (
	"context"
	"net/http"

	"github.com/teamhealth/teamhealth/internal/api/middleware"
	"github.com/teamhealth/teamhealth/internal/api/response"
)

// DBPinger verifies database connectivity for health checks.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	pinger  DBPinger
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pinger DBPinger, version string) *HealthHandler {
	return &HealthHandler{
		pinger:  pinger,
		version: version,
	}
}

type databaseStatus struct {
	Connected bool `json:"connected"`
}

type healthData struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Database databaseStatus `json:"database"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	status := "healthy"
	connected := true
	if err := h.pinger.Ping(r.Context()); err != nil {
		status = "degraded"
		connected = false
	}

	data := healthData{
		Status:  status,
		Version: h.version,
		Database: databaseStatus{
			Connected: connected,
		},
	}

	response.Success(w, http.StatusOK, data, requestID)
}
