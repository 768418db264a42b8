package http

import (
	"context"

	"github.com/taskflow/go-task-flow/internal/config"
	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/service"
)

// DatabaseStatus reports whether the backing store can currently serve
// queries. The /api subtree is gated on it and /health reports it.
type DatabaseStatus interface {
	Ready(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       DatabaseStatus
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, db DatabaseStatus, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}
}
