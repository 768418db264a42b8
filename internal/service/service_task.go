package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/store"
	"github.com/taskflow/go-task-flow/internal/utils"
	"github.com/taskflow/go-task-flow/models"
)

// taskService is the concrete implementation of TaskService. Every mutating
// operation fetches the task first and runs the ownership guard before
// touching the repository, so a foreign task yields 403 rather than 404.
type taskService struct {
	taskRepository store.TaskRepository
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// ListTasks returns every task owned by userID, most recently created first.
func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}

	return tasks, nil
}

// CreateTask validates the request and persists a new task owned by userID.
//
// The title must be non-empty after trimming (ErrValidationEmptyTitle).
// Out-of-enum priority and status values are coerced to their defaults
// rather than rejected; the update path is stricter. This asymmetry mirrors
// the behaviour the web client depends on.
func (s *taskService) CreateTask(ctx context.Context, userID string, req models.TaskCreate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Title) == "" {
		log.Warn().Str("user_id", userID).Msg("task creation with empty title")
		return models.Task{}, ErrValidationEmptyTitle
	}

	priority := req.Priority
	if !priority.Valid() {
		priority = models.PriorityMedium
	}
	status := req.Status
	if !status.Valid() {
		status = models.StatusTodo
	}

	task := models.Task{
		ID:          s.uuid.Generate(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     req.DueDate.Time,
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateTask applies a partial update to a task owned by userID.
//
// Failure order matters: a missing task yields store.ErrTaskNotFound (404)
// before any ownership check; a foreign task yields ErrAccessDenied (403)
// before any validation. Unlike CreateTask, out-of-enum priority/status
// values are rejected here with a validation error.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if err := authorizeOwner(userID, task.UserID); err != nil {
		log.Warn().
			Str("user_id", userID).
			Str("task_id", taskID).
			Str("owner_id", task.UserID).
			Msg("update of foreign task denied")
		return models.Task{}, err
	}

	if err := validateTaskUpdate(update); err != nil {
		return models.Task{}, err
	}

	updated, err := s.taskRepository.UpdateTask(ctx, taskID, update)
	if err != nil {
		log.Err(err).Str("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTask permanently removes a task owned by userID.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(userID, task.UserID); err != nil {
		log.Warn().
			Str("user_id", userID).
			Str("task_id", taskID).
			Str("owner_id", task.UserID).
			Msg("deletion of foreign task denied")
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID); err != nil {
		log.Err(err).Str("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

// validateTaskUpdate enforces the strict update rules: a present title must
// be non-empty after trimming, and present priority/status values must be in
// their enums.
func validateTaskUpdate(update models.TaskUpdate) error {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return ErrValidationEmptyTitle
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return ErrValidationInvalidPriority
	}
	if update.Status != nil && !update.Status.Valid() {
		return ErrValidationInvalidStatus
	}
	return nil
}
