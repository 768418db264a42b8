package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/service"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores the
// authenticated user's ID and email in the request context before delegating
// to the next handler.
//
// Rejections distinguish three cases:
//   - No usable token in the header: 401 "Access token required".
//   - A token that was valid once but has expired: 401 "Token expired".
//   - A token that is malformed or fails signature checks: 403 "Invalid token".
//
// Any other verification failure answers 500. All rejection events are logged
// using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Message: "Access token required"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				utils.WriteJSON(w, models.ErrorResponse{Message: "Token expired"}, http.StatusUnauthorized)
				return
			case errors.Is(err, service.ErrTokenIsInvalid):
				log.Err(err).Msg("token rejected")
				utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid token"}, http.StatusForbidden)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSON(w, models.ErrorResponse{Message: "Token verification failed"}, http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns [ErrEmptyAuthorizationHeader] for an absent header,
// [ErrInvalidAuthorizationHeader] when the header contains fewer than two
// space-separated parts, and [ErrEmptyToken] when the second part exists but
// is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
