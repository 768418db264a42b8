package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations directly against the "tasks" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (task_id, user_id).
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask inserts a new task row and returns the canonical database
// representation including server-assigned created_at/updated_at.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createTask,
		task.ID, task.UserID, task.Title, task.Description, task.Priority, task.Status, task.DueDate)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to execute insert for task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanTask(row)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to scan created task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetTask fetches a single task by its identifier.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTaskNotFound].
//   - Any other failure → wrapped as [ErrScanningRow] / [ErrExecutingQuery].
func (r *taskRepository) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getTask, taskID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetTask").
			Str("task_id", taskID).
			Msg("failed to execute query for task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).
			Str("func", "*taskRepository.GetTask").
			Str("task_id", taskID).
			Msg("failed to scan task row")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// ListTasksByUser retrieves every task owned by userID, ordered by creation
// time descending (most recent first).
//
// Returns an empty slice when the user has no tasks.
func (r *taskRepository) ListTasksByUser(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listTasksByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasksByUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 20)

	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.ListTasksByUser").
				Str("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*taskRepository.ListTasksByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask applies the provided partial update to the task and returns the
// updated row. Only fields present in the update are overwritten; updated_at
// is always refreshed so that an empty update still bumps the timestamp.
func (r *taskRepository) UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(taskID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", taskID).
			Msg("failed to build update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", taskID).
			Msg("failed to execute update for task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	updated, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", taskID).
			Msg("failed to scan updated task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteTask permanently removes the task row.
//
// Returns [ErrTaskNotFound] when no row was deleted.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteTask, taskID)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Str("task_id", taskID).
			Msg("failed to execute delete for task")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// buildUpdateTaskQuery assembles the dynamic partial UPDATE for a task.
// Fields absent from the update are not touched; due_date distinguishes
// explicit null (clear the deadline) from absent (keep it).
func buildUpdateTaskQuery(taskID string, update models.TaskUpdate) (string, []any, error) {
	builder := sq.Update("tasks").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.DueDate.Set {
		builder = builder.Set("due_date", update.DueDate.Time)
	}

	return builder.
		Where(sq.Eq{"id": taskID}).
		Suffix("RETURNING id, user_id, title, description, priority, status, due_date, created_at, updated_at").
		ToSql()
}

// scanTask reads one tasks row in canonical column order and converts the
// nullable due_date column.
func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	var dueDate sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Status,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}

	return task, nil
}
