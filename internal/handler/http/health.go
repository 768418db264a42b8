package http

import (
	"net/http"
	"time"

	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

const apiVersion = "1.0.0"

// health always answers 200. The database field tells callers whether the
// store is reachable; an unreachable store is a degraded state, not an error
// of the health endpoint itself.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.db.Ready(r.Context()); err != nil {
		database = "disconnected"
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  database,
	}, http.StatusOK)
}

func (h *Handler) serviceInfo(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ServiceInfoResponse{
		Message: "Smart Task Flow API Server",
		Version: apiVersion,
		Endpoints: map[string]string{
			"health": "/health",
			"auth":   "/api/auth",
			"tasks":  "/api/tasks",
		},
	}, http.StatusOK)
}
