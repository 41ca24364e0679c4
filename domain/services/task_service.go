package services

import (
	"context"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/query"
)

// TaskService use cases over the tasks of one authenticated user.
// A nil task with a nil error means the task does not exist or belongs to someone else.
type TaskService interface {
	CreateTask(ctx context.Context, data models.CreateTaskData) (*models.Task, error)
	GetTask(ctx context.Context, id, userID string) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID string, filters query.TaskFilters, page, limit int) (*models.TaskPage, error)
	UpdateTask(ctx context.Context, userID, id string, updates models.TaskUpdates) (*models.Task, error)
	DeleteTask(ctx context.Context, id, userID string) (*models.Task, error)
	// ToggleTaskCompletion flips completed atomically at the storage layer.
	ToggleTaskCompletion(ctx context.Context, id, userID string) (*models.Task, error)
	GetUserStats(ctx context.Context, userID string) (*models.TaskStats, error)
}
