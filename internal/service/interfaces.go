package service

import (
	"context"

	"github.com/taskflow/go-task-flow/models"
)

// AuthService implements registration, login, and the token lifecycle,
// including the admin bootstrap invariant for the configured operator
// identity.
type AuthService interface {
	// Register creates a new account (or heals the configured admin
	// account). The returned bool is true when a record was newly created
	// and false when an existing admin record was updated in place.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, bool, error)

	// Login authenticates an existing account and stamps lastLoginAt.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded
	// identity. Failure kinds are distinguished via ErrTokenIsExpired,
	// ErrTokenIsInvalid, and ErrTokenVerification.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService implements ownership-authorized task CRUD.
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID string, req models.TaskCreate) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}
