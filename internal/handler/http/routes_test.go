package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/go-task-flow/internal/config"
	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/service"
	"github.com/taskflow/go-task-flow/models"
)

func newRoutedHandler(t *testing.T, db DatabaseStatus) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: "user-7"}, nil
			},
		},
		TaskService: &mockTaskService{
			listTasksFn: func(_ context.Context, _ string) ([]models.Task, error) {
				return nil, nil
			},
		},
	}
	cfg := config.Server{CORSOrigin: "http://localhost:8080"}
	return NewHandler(svcs, db, cfg, logger.Nop()).Init()
}

func TestRoutes_HealthWhileDatabaseDown(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "disconnected", health.Database)
}

func TestRoutes_ServiceInfo(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var info models.ServiceInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "Smart Task Flow API Server", info.Message)
	assert.Equal(t, "/api/tasks", info.Endpoints["tasks"])
}

func TestRoutes_SecurityHeadersAndTraceID(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_TraceIDReflectsRequestHeader(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_UnknownPathIsJSON404(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeMessage(t, rec))
}

func TestRoutes_UnsupportedMethodIsJSON404(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeMessage(t, rec))
}

func TestRoutes_APIGatedOnDatabase(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Authorization", "Bearer good.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Database unavailable", decodeMessage(t, rec))
}

func TestRoutes_AuthenticatedTaskListThroughRouter(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Authorization", "Bearer good.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRoutes_TasksRequireToken(t *testing.T) {
	router := newRoutedHandler(t, &mockDatabaseStatus{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token required", decodeMessage(t, rec))
}
