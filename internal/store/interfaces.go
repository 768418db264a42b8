package store

import (
	"context"
	"time"

	"github.com/taskflow/go-task-flow/models"
)

// UserRepository persists user accounts. Implementations must guarantee the
// unique-email invariant (at most one account per email).
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// timestamps. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its exact (case-sensitive)
	// email. Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateUserCredentials overwrites the mutable identity fields of an
	// account (name, role, email_verified, password hash) in a single
	// statement. Used by the admin bootstrap's self-healing step.
	UpdateUserCredentials(ctx context.Context, user models.User) (models.User, error)

	// UpdateLastLogin records the moment of a successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// TaskRepository persists kanban tasks. Ownership checks live in the service
// layer; the repository operates on task IDs alone.
type TaskRepository interface {
	// CreateTask inserts a new task and returns it with server-assigned
	// timestamps.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// GetTask fetches a single task by ID. Returns ErrTaskNotFound when it
	// does not exist.
	GetTask(ctx context.Context, taskID string) (models.Task, error)

	// ListTasksByUser returns every task owned by userID, most recently
	// created first.
	ListTasksByUser(ctx context.Context, userID string) ([]models.Task, error)

	// UpdateTask applies a partial update to the task and returns the
	// updated row. Returns ErrTaskNotFound when the task does not exist.
	UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes the task permanently. Returns ErrTaskNotFound when
	// nothing was deleted.
	DeleteTask(ctx context.Context, taskID string) error
}
