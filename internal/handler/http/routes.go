package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(secureHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		AllowCredentials: true,
	}))

	// service banner and health check stay reachable while the database is down
	router.Get("/", h.serviceInfo)
	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withDatabaseReady)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listTasks)
			r.Post("/", h.createTask)
			r.Put("/{id}", h.updateTask)
			r.Delete("/{id}", h.deleteTask)
		})
	})

	// unknown paths and unsupported methods both answer with the same JSON
	// 404, so callers cannot probe which routes exist
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}

func (h *Handler) routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Message: "Route not found"}, http.StatusNotFound)
}
