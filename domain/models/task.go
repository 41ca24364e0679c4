package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskCategory string

const (
	CategoryPersonal TaskCategory = "personal"
	CategoryWork     TaskCategory = "work"
	CategoryUrgent   TaskCategory = "urgent"
	CategoryReminder TaskCategory = "reminder"
	CategoryGeneral  TaskCategory = "general"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// DefaultTaskDescription is stored when a task is created without a description.
const DefaultTaskDescription = "Sin descripción"

// AllCategories returns every category in declaration order.
func AllCategories() []TaskCategory {
	return []TaskCategory{CategoryPersonal, CategoryWork, CategoryUrgent, CategoryReminder, CategoryGeneral}
}

// AllPriorities returns every priority from lowest to highest.
func AllPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryUrgent, CategoryReminder, CategoryGeneral:
		return true
	}
	return false
}

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultPriorityFor returns the priority a new task of the given category gets
// when the caller does not pick one.
func DefaultPriorityFor(c TaskCategory) TaskPriority {
	switch c {
	case CategoryUrgent:
		return PriorityHigh
	case CategoryPersonal:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

type Task struct {
	ID          uuid.UUID    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string       `gorm:"size:100;not null"`
	Description string       `gorm:"size:500"`
	Completed   bool         `gorm:"not null;default:false;index:idx_tasks_completed_deadline,priority:1"`
	Category    TaskCategory `gorm:"size:20;not null;default:'general';index:idx_tasks_category_priority,priority:1"`
	Priority    TaskPriority `gorm:"size:10;not null;default:'medium';index:idx_tasks_category_priority,priority:2"`
	Deadline    *time.Time   `gorm:"index:idx_tasks_completed_deadline,priority:2"`
	UserID      string       `gorm:"size:255;not null;index:idx_tasks_user_created,priority:1"`
	UserEmail   string       `gorm:"size:255;not null"`
	CreatedAt   time.Time    `gorm:"index:idx_tasks_user_created,priority:2,sort:desc"`
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// CreateTaskData is the normalized input of a task creation. Ownership fields are
// filled from the authenticated identity, never from the request body.
type CreateTaskData struct {
	Title       string
	Description string
	Completed   *bool
	Category    TaskCategory
	Priority    TaskPriority
	Deadline    *time.Time
	UserID      string
	UserEmail   string
}

// TaskUpdates is a partial update keyed by API field name
// (title, description, completed, category, priority, deadline).
type TaskUpdates map[string]any

// Field names accepted in TaskUpdates.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldCategory    = "category"
	FieldPriority    = "priority"
	FieldDeadline    = "deadline"
	FieldUserID      = "userId"
	FieldUserEmail   = "userEmail"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// ImmutableTaskFields can never be changed through an update.
var ImmutableTaskFields = []string{FieldID, FieldUserID, FieldUserEmail, FieldCreatedAt, FieldUpdatedAt}

// TaskPage is one page of a filtered task listing.
type TaskPage struct {
	Tasks      []*Task
	Pagination PaginationInfo
}
