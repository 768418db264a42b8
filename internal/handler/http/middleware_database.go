package http

import (
	"net/http"

	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

// withDatabaseReady gates the /api subtree on store reachability. When the
// database cannot be pinged the request is refused with 503 before any
// handler runs, so callers get a uniform "Database unavailable" answer
// instead of assorted query errors.
func (h *Handler) withDatabaseReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ready(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("database is not reachable")
			utils.WriteJSON(w, models.ErrorResponse{Message: "Database unavailable"}, http.StatusServiceUnavailable)
			return
		}

		next.ServeHTTP(w, r)
	})
}
