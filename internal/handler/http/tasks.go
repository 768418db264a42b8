package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

// The task endpoints never take a user id from the request. The owning user
// is always the authenticated identity placed in the context by the auth
// middleware.

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Access token required"}, http.StatusUnauthorized)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing tasks failed")
		h.writeError(w, r, err)
		return
	}

	// an empty list serializes as [], not null
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Access token required"}, http.StatusUnauthorized)
		return
	}

	var req models.TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task creation failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Access token required"}, http.StatusUnauthorized)
		return
	}

	taskID := chi.URLParam(r, "id")

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), userID, taskID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("task update failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Access token required"}, http.StatusUnauthorized)
		return
	}

	taskID := chi.URLParam(r, "id")

	if err := h.services.TaskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		log.Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("task deletion failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{OK: true}, http.StatusOK)
}
