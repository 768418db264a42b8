package http

import (
	"errors"
	"net/http"

	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/service"
	"github.com/taskflow/go-task-flow/internal/store"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrPasswordTooShort:          http.StatusBadRequest,
	service.ErrInvalidEmail:              http.StatusBadRequest,
	service.ErrInvalidCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:            http.StatusUnauthorized,
	service.ErrTokenIsInvalid:            http.StatusForbidden,
	service.ErrAccessDenied:              http.StatusForbidden,
	service.ErrValidationEmptyTitle:      http.StatusBadRequest,
	service.ErrValidationInvalidPriority: http.StatusBadRequest,
	service.ErrValidationInvalidStatus:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap carries the client-facing message for every domain error
// that has one. Errors without an entry fall back to the generic 500 text.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:       "Email and password required",
	service.ErrPasswordTooShort:          "Password must be at least 6 characters",
	service.ErrInvalidEmail:              "Invalid email format",
	service.ErrInvalidCredentials:        "Invalid credentials",
	service.ErrTokenIsExpired:            "Token expired",
	service.ErrTokenIsInvalid:            "Invalid token",
	service.ErrAccessDenied:              "Access denied: You can only access your own resources",
	service.ErrValidationEmptyTitle:      "Title required",
	service.ErrValidationInvalidPriority: "Invalid priority value",
	service.ErrValidationInvalidStatus:   "Invalid status value",

	store.ErrEmailAlreadyExists: "Email already registered",
	store.ErrNoUserWasFound:     "Not found",
	store.ErrTaskNotFound:       "Not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Internal server error"
}

// writeError converts a domain error into the JSON error body the API
// speaks. Unmapped errors surface only the generic 500 message unless debug
// errors are enabled in the server configuration.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := messageFromError(err)

	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with internal error")
		if h.cfg.DebugErrors {
			message = err.Error()
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
