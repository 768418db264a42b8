package store

import "github.com/taskflow/go-task-flow/internal/logger"

// Storages bundles every repository behind a single dependency for the
// service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
