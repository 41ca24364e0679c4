package repositories

import (
	"context"
	"errors"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/query"
)

// ErrInvalidTaskID is returned for an identifier that can never match a task.
var ErrInvalidTaskID = errors.New("invalid task ID format")

// TaskRepository owns every read and write of tasks. Owner-scoped methods take the
// requesting userID and return (nil, nil) when no task of that user matches.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindOne(ctx context.Context, id, userID string) (*models.Task, error)
	Update(ctx context.Context, userID, id string, updates models.TaskUpdates) (*models.Task, error)
	Delete(ctx context.Context, id, userID string) (*models.Task, error)
	// ToggleCompletion flips completed in a single atomic statement.
	ToggleCompletion(ctx context.Context, id, userID string) (*models.Task, error)

	// FindPage returns one page ordered by created_at DESC, id ASC, plus the total match count.
	FindPage(ctx context.Context, p query.Predicate, page, limit int) ([]*models.Task, int64, error)

	// Statistics
	CountTotal(ctx context.Context, userID string) (int64, error)
	CountCompleted(ctx context.Context, userID string) (int64, error)
	AggregateByCategory(ctx context.Context, userID string) ([]models.CategoryCount, error)
	AggregateByPriority(ctx context.Context, userID string) ([]models.PriorityCount, error)
}
