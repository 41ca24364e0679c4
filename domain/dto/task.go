package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/JorgeJ97/task-management-backend/domain/models"
)

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Completed   *bool  `json:"completed"`
	Category    string `json:"category" validate:"required,oneof=personal work urgent reminder general"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    *Date  `json:"deadline" validate:"omitempty,gt"`
}

// UpdateTaskRequest - ทุก field เป็น optional; field ที่แก้ไม่ได้ถูกรับไว้
// เพื่อส่งต่อให้ service ตัดทิ้ง
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Completed   *bool   `json:"completed"`
	Category    *string `json:"category" validate:"omitempty,oneof=personal work urgent reminder general"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    *Date   `json:"deadline" validate:"omitempty,gt"`

	ID        any `json:"id,omitempty" validate:"-"`
	UserID    any `json:"userId,omitempty" validate:"-"`
	UserEmail any `json:"userEmail,omitempty" validate:"-"`
	CreatedAt any `json:"createdAt,omitempty" validate:"-"`
	UpdatedAt any `json:"updatedAt,omitempty" validate:"-"`
}

type TaskResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Completed   bool                `json:"completed"`
	Category    models.TaskCategory `json:"category"`
	Priority    models.TaskPriority `json:"priority"`
	Deadline    *time.Time          `json:"deadline"`
	UserID      string              `json:"userId"`
	UserEmail   string              `json:"userEmail"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}
