package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/query"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
)

// updatableColumns - API field ที่แก้ไขได้ -> column
var updatableColumns = map[string]string{
	models.FieldTitle:       "title",
	models.FieldDescription: "description",
	models.FieldCompleted:   "completed",
	models.FieldCategory:    "category",
	models.FieldPriority:    "priority",
	models.FieldDeadline:    "deadline",
}

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func parseTaskID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repositories.ErrInvalidTaskID
	}
	return uid, nil
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) FindOne(ctx context.Context, id, userID string) (*models.Task, error) {
	uid, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	var task models.Task
	err = r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", uid, userID).
		Take(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, userID, id string, updates models.TaskUpdates) (*models.Task, error) {
	uid, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	columns, err := updateColumns(updates)
	if err != nil {
		return nil, err
	}
	columns["updated_at"] = time.Now().UTC()

	return r.updateReturning(ctx, uid, userID, columns)
}

// ToggleCompletion flips the flag inside the UPDATE itself so concurrent toggles
// never lose a write.
func (r *TaskRepositoryImpl) ToggleCompletion(ctx context.Context, id, userID string) (*models.Task, error) {
	uid, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	return r.updateReturning(ctx, uid, userID, map[string]any{
		"completed":  gorm.Expr("NOT completed"),
		"updated_at": time.Now().UTC(),
	})
}

func (r *TaskRepositoryImpl) updateReturning(ctx context.Context, id uuid.UUID, userID string, columns map[string]any) (*models.Task, error) {
	var task models.Task
	result := r.db.WithContext(ctx).
		Model(&task).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, userID string) (*models.Task, error) {
	uid, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	var task models.Task
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", uid, userID).
		Delete(&task)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &task, nil
}

// FindPage รัน query หน้าและ count พร้อมกัน
func (r *TaskRepositoryImpl) FindPage(ctx context.Context, p query.Predicate, page, limit int) ([]*models.Task, int64, error) {
	tasks := make([]*models.Task, 0, query.ClampLimit(limit))
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pageQuery(r.db.WithContext(gctx), p, page, limit).Find(&tasks).Error
	})
	g.Go(func() error {
		return applyPredicate(r.db.WithContext(gctx).Model(&models.Task{}), p).
			Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ========== Statistics ==========

func (r *TaskRepositoryImpl) CountTotal(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountCompleted(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) AggregateByCategory(ctx context.Context, userID string) ([]models.CategoryCount, error) {
	var results []models.CategoryCount
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Select("category, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&results).Error
	return results, err
}

func (r *TaskRepositoryImpl) AggregateByPriority(ctx context.Context, userID string) ([]models.PriorityCount, error) {
	var results []models.PriorityCount
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Select("priority, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("priority").
		Scan(&results).Error
	return results, err
}

// ========== Query helpers ==========

// pageQuery - เรียงใหม่สุดก่อน, id เป็นตัวตัดสินเมื่อ created_at เท่ากัน
func pageQuery(db *gorm.DB, p query.Predicate, page, limit int) *gorm.DB {
	limit = query.ClampLimit(limit)
	return applyPredicate(db.Model(&models.Task{}), p).
		Order("created_at DESC").
		Order("id ASC").
		Offset(query.Offset(page, limit)).
		Limit(limit)
}

// applyPredicate translates a predicate into WHERE terms. The owner term is
// always the first condition.
func applyPredicate(db *gorm.DB, p query.Predicate) *gorm.DB {
	db = db.Where("user_id = ?", p.UserID)

	if p.Completed != nil {
		db = db.Where("completed = ?", *p.Completed)
	}

	if categories := toStrings(p.Categories); len(categories) == 1 {
		db = db.Where("category = ?", categories[0])
	} else if len(categories) > 1 {
		db = db.Where("category IN ?", categories)
	}

	if priorities := toStrings(p.Priorities); len(priorities) == 1 {
		db = db.Where("priority = ?", priorities[0])
	} else if len(priorities) > 1 {
		db = db.Where("priority IN ?", priorities)
	}

	if p.Deadline.From != nil {
		db = db.Where("deadline >= ?", *p.Deadline.From)
	}
	if p.Deadline.To != nil {
		db = db.Where("deadline <= ?", *p.Deadline.To)
	}
	if p.CreatedAt.From != nil {
		db = db.Where("created_at >= ?", *p.CreatedAt.From)
	}
	if p.CreatedAt.To != nil {
		db = db.Where("created_at <= ?", *p.CreatedAt.To)
	}

	if p.Search != "" {
		pattern := "%" + escapeLike(p.Search) + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	return db
}

// escapeLike กัน wildcard ของ LIKE ที่มากับคำค้นหา (\ เป็น escape char default ของ Postgres)
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toStrings[T ~string](values []T) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func updateColumns(updates models.TaskUpdates) (map[string]any, error) {
	columns := make(map[string]any, len(updates)+1)
	for field, value := range updates {
		column, ok := updatableColumns[field]
		if !ok {
			return nil, fmt.Errorf("task field %q cannot be updated", field)
		}
		switch v := value.(type) {
		case models.TaskCategory:
			value = string(v)
		case models.TaskPriority:
			value = string(v)
		}
		columns[column] = value
	}
	return columns, nil
}
