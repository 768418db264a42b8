package service

import (
	"github.com/taskflow/go-task-flow/internal/config"
	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, cfg.Admin, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
