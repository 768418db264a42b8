package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, created, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user registration failed")
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	// re-registering the configured admin updates the existing record and
	// answers 200; a fresh account answers 201
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  user.View(),
	}, status)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  user.View(),
	}, http.StatusOK)
}
