package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/go-task-flow/internal/logger"
	"github.com/taskflow/go-task-flow/internal/store"
	"github.com/taskflow/go-task-flow/models"
)

type mockTaskRepo struct {
	createTaskFunc      func(ctx context.Context, task models.Task) (models.Task, error)
	getTaskFunc         func(ctx context.Context, taskID string) (models.Task, error)
	listTasksByUserFunc func(ctx context.Context, userID string) ([]models.Task, error)
	updateTaskFunc      func(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error)
	deleteTaskFunc      func(ctx context.Context, taskID string) error
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return m.createTaskFunc(ctx, task)
}

func (m *mockTaskRepo) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	return m.getTaskFunc(ctx, taskID)
}

func (m *mockTaskRepo) ListTasksByUser(ctx context.Context, userID string) ([]models.Task, error) {
	return m.listTasksByUserFunc(ctx, userID)
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error) {
	return m.updateTaskFunc(ctx, taskID, update)
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, taskID string) error {
	return m.deleteTaskFunc(ctx, taskID)
}

const (
	ownerID    = "owner-1"
	intruderID = "intruder-2"
)

func ownedTask(taskID string) models.Task {
	return models.Task{
		ID:       taskID,
		UserID:   ownerID,
		Title:    "write report",
		Priority: models.PriorityMedium,
		Status:   models.StatusTodo,
	}
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, logger.Nop())

	_, err := svc.CreateTask(context.Background(), ownerID, models.TaskCreate{Title: "   "})
	assert.ErrorIs(t, err, ErrValidationEmptyTitle)
}

func TestCreateTask_CoercesUnknownEnumValues(t *testing.T) {
	var captured models.Task
	repo := &mockTaskRepo{
		createTaskFunc: func(_ context.Context, task models.Task) (models.Task, error) {
			captured = task
			return task, nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	_, err := svc.CreateTask(context.Background(), ownerID, models.TaskCreate{
		Title:    "write report",
		Priority: "urgent",
		Status:   "archived",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PriorityMedium, captured.Priority)
	assert.Equal(t, models.StatusTodo, captured.Status)
}

func TestCreateTask_DefaultsWhenFieldsOmitted(t *testing.T) {
	var captured models.Task
	repo := &mockTaskRepo{
		createTaskFunc: func(_ context.Context, task models.Task) (models.Task, error) {
			captured = task
			return task, nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	_, err := svc.CreateTask(context.Background(), ownerID, models.TaskCreate{Title: "write report"})
	require.NoError(t, err)

	assert.Equal(t, ownerID, captured.UserID)
	assert.NotEmpty(t, captured.ID)
	assert.Equal(t, models.PriorityMedium, captured.Priority)
	assert.Equal(t, models.StatusTodo, captured.Status)
	assert.Nil(t, captured.DueDate)
}

func TestCreateTask_KeepsValidEnumValuesAndDueDate(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	var captured models.Task
	repo := &mockTaskRepo{
		createTaskFunc: func(_ context.Context, task models.Task) (models.Task, error) {
			captured = task
			return task, nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	_, err := svc.CreateTask(context.Background(), ownerID, models.TaskCreate{
		Title:    "write report",
		Priority: models.PriorityHigh,
		Status:   models.StatusInProgress,
		DueDate:  models.OptionalTime{Set: true, Time: &due},
	})
	require.NoError(t, err)

	assert.Equal(t, models.PriorityHigh, captured.Priority)
	assert.Equal(t, models.StatusInProgress, captured.Status)
	require.NotNil(t, captured.DueDate)
	assert.True(t, due.Equal(*captured.DueDate))
}

func TestListTasks(t *testing.T) {
	repo := &mockTaskRepo{
		listTasksByUserFunc: func(_ context.Context, userID string) ([]models.Task, error) {
			assert.Equal(t, ownerID, userID)
			return []models.Task{ownedTask("t-2"), ownedTask("t-1")}, nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	tasks, err := svc.ListTasks(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, _ string) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	_, err := svc.UpdateTask(context.Background(), ownerID, "missing", models.TaskUpdate{})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestUpdateTask_ForeignTaskDenied(t *testing.T) {
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, taskID string) (models.Task, error) {
			return ownedTask(taskID), nil
		},
		updateTaskFunc: func(_ context.Context, _ string, _ models.TaskUpdate) (models.Task, error) {
			t.Fatal("repository must not be reached for a foreign task")
			return models.Task{}, nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	title := "hijacked"
	_, err := svc.UpdateTask(context.Background(), intruderID, "t-1", models.TaskUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// The ownership check runs before validation, so an intruder sending an
// invalid payload still sees the access error.
func TestUpdateTask_OwnershipCheckedBeforeValidation(t *testing.T) {
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, taskID string) (models.Task, error) {
			return ownedTask(taskID), nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	badPriority := models.Priority("urgent")
	_, err := svc.UpdateTask(context.Background(), intruderID, "t-1", models.TaskUpdate{Priority: &badPriority})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateTask_StrictValidation(t *testing.T) {
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, taskID string) (models.Task, error) {
			return ownedTask(taskID), nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())
	ctx := context.Background()

	emptyTitle := "  "
	badPriority := models.Priority("urgent")
	badStatus := models.Status("archived")

	tests := []struct {
		name    string
		update  models.TaskUpdate
		wantErr error
	}{
		{name: "blank title", update: models.TaskUpdate{Title: &emptyTitle}, wantErr: ErrValidationEmptyTitle},
		{name: "unknown priority", update: models.TaskUpdate{Priority: &badPriority}, wantErr: ErrValidationInvalidPriority},
		{name: "unknown status", update: models.TaskUpdate{Status: &badStatus}, wantErr: ErrValidationInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateTask(ctx, ownerID, "t-1", tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateTask_Success(t *testing.T) {
	newTitle := "write final report"
	done := models.StatusCompleted

	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, taskID string) (models.Task, error) {
			return ownedTask(taskID), nil
		},
		updateTaskFunc: func(_ context.Context, taskID string, update models.TaskUpdate) (models.Task, error) {
			task := ownedTask(taskID)
			task.Title = *update.Title
			task.Status = *update.Status
			return task, nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	task, err := svc.UpdateTask(context.Background(), ownerID, "t-1", models.TaskUpdate{
		Title:  &newTitle,
		Status: &done,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, task.Title)
	assert.Equal(t, models.StatusCompleted, task.Status)
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, _ string) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	err := svc.DeleteTask(context.Background(), ownerID, "missing")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestDeleteTask_ForeignTaskDenied(t *testing.T) {
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, taskID string) (models.Task, error) {
			return ownedTask(taskID), nil
		},
		deleteTaskFunc: func(_ context.Context, _ string) error {
			t.Fatal("repository must not be reached for a foreign task")
			return nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	err := svc.DeleteTask(context.Background(), intruderID, "t-1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteTask_Success(t *testing.T) {
	deleted := false
	repo := &mockTaskRepo{
		getTaskFunc: func(_ context.Context, taskID string) (models.Task, error) {
			return ownedTask(taskID), nil
		},
		deleteTaskFunc: func(_ context.Context, taskID string) error {
			deleted = true
			assert.Equal(t, "t-1", taskID)
			return nil
		},
	}
	svc := NewTaskService(repo, logger.Nop())

	require.NoError(t, svc.DeleteTask(context.Background(), ownerID, "t-1"))
	assert.True(t, deleted)
}
