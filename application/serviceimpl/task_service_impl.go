package serviceimpl

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JorgeJ97/task-management-backend/domain/dto"
	"github.com/JorgeJ97/task-management-backend/domain/factory"
	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/ports"
	"github.com/JorgeJ97/task-management-backend/domain/query"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
	"github.com/JorgeJ97/task-management-backend/domain/services"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

// ErrNoFieldsToUpdate is returned when an update carries nothing but immutable fields.
var ErrNoFieldsToUpdate = errors.New("no valid fields to update")

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.TaskEventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, input models.CreateTaskData) (*models.Task, error) {
	data := factory.CreateTask(input)

	task := &models.Task{
		ID:          uuid.New(),
		Title:       data.Title,
		Description: data.Description,
		Completed:   *data.Completed,
		Category:    data.Category,
		Priority:    data.Priority,
		Deadline:    data.Deadline,
		UserID:      data.UserID,
		UserEmail:   data.UserEmail,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", data.UserID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "category", task.Category, "priority", task.Priority)
	s.publish(ctx, ports.TaskCreated, task)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id, userID string) (*models.Task, error) {
	task, err := s.taskRepo.FindOne(ctx, id, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get task", "task_id", id, "error", err)
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) GetUserTasks(ctx context.Context, userID string, filters query.TaskFilters, page, limit int) (*models.TaskPage, error) {
	predicate, err := query.BuildQuery(userID, filters)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build task query", "error", err)
		return nil, err
	}

	page = query.ClampPage(page)
	limit = query.ClampLimit(limit)

	tasks, total, err := s.taskRepo.FindPage(ctx, predicate, page, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "page", page, "limit", limit, "error", err)
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	return &models.TaskPage{
		Tasks:      tasks,
		Pagination: query.Paginate(page, limit, total),
	}, nil
}

// UpdateTask ตัด field ที่แก้ไม่ได้ทิ้งก่อนส่งให้ repository
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, id string, updates models.TaskUpdates) (*models.Task, error) {
	clean := stripImmutable(updates)
	if len(clean) == 0 {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", ErrNoFieldsToUpdate)
		return nil, ErrNoFieldsToUpdate
	}

	task, err := s.taskRepo.Update(ctx, userID, id, clean)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID, "fields", len(clean))
	s.publish(ctx, ports.TaskUpdated, task)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id, userID string) (*models.Task, error) {
	task, err := s.taskRepo.Delete(ctx, id, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", task.ID)
	s.publish(ctx, ports.TaskDeleted, task)

	return task, nil
}

func (s *TaskServiceImpl) ToggleTaskCompletion(ctx context.Context, id, userID string) (*models.Task, error) {
	task, err := s.taskRepo.ToggleCompletion(ctx, id, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to toggle task completion", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	logger.InfoContext(ctx, "Task completion toggled", "task_id", task.ID, "completed", task.Completed)
	s.publish(ctx, ports.TaskToggled, task)

	return task, nil
}

// ========== Stats ==========

// GetUserStats อ่าน 4 ค่าพร้อมกัน แล้วเติมลงใน map ที่มีทุก key เป็น 0 ไว้ก่อน
func (s *TaskServiceImpl) GetUserStats(ctx context.Context, userID string) (*models.TaskStats, error) {
	var (
		total, completed int64
		byCategory       []models.CategoryCount
		byPriority       []models.PriorityCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.taskRepo.CountTotal(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		completed, err = s.taskRepo.CountCompleted(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		byCategory, err = s.taskRepo.AggregateByCategory(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		byPriority, err = s.taskRepo.AggregateByPriority(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "Failed to get user stats", "error", err)
		return nil, err
	}

	return buildStats(total, completed, byCategory, byPriority), nil
}

func buildStats(total, completed int64, byCategory []models.CategoryCount, byPriority []models.PriorityCount) *models.TaskStats {
	stats := &models.TaskStats{
		TotalTasks:      total,
		CompletedTasks:  completed,
		PendingTasks:    total - completed,
		CompletionRate:  completionRate(completed, total),
		TasksByCategory: make(map[models.TaskCategory]int64, len(models.AllCategories())),
		TasksByPriority: make(map[models.TaskPriority]int64, len(models.AllPriorities())),
	}

	for _, c := range models.AllCategories() {
		stats.TasksByCategory[c] = 0
	}
	for _, p := range models.AllPriorities() {
		stats.TasksByPriority[p] = 0
	}

	for _, row := range byCategory {
		if _, known := stats.TasksByCategory[row.Category]; known {
			stats.TasksByCategory[row.Category] = row.Count
		}
	}
	for _, row := range byPriority {
		if _, known := stats.TasksByPriority[row.Priority]; known {
			stats.TasksByPriority[row.Priority] = row.Count
		}
	}

	return stats
}

// completionRate is a percentage rounded to two decimals, 0 when there are no tasks.
func completionRate(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

// ========== Helpers ==========

func stripImmutable(updates models.TaskUpdates) models.TaskUpdates {
	clean := make(models.TaskUpdates, len(updates))
	for k, v := range updates {
		clean[k] = v
	}
	for _, field := range models.ImmutableTaskFields {
		delete(clean, field)
	}
	return clean
}

// publish ส่ง event แบบ best-effort: ล้มเหลวแค่ log ไม่ทำให้ request fail
func (s *TaskServiceImpl) publish(ctx context.Context, eventType ports.TaskEventType, task *models.Task) {
	if s.events == nil {
		return
	}

	event := &ports.TaskEvent{
		Type:      eventType,
		TaskID:    task.ID.String(),
		UserID:    task.UserID,
		Timestamp: time.Now().UTC(),
		Data:      dto.TaskToTaskResponse(task),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "type", eventType, "task_id", event.TaskID, "error", err)
	}
}
