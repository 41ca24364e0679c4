package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Task Event Port - แจ้งเหตุการณ์ของ task ออกไปยังระบบภายนอก
// ═══════════════════════════════════════════════════════════════════════════════

type TaskEventType string

const (
	TaskCreated TaskEventType = "task.created"
	TaskUpdated TaskEventType = "task.updated"
	TaskToggled TaskEventType = "task.toggled"
	TaskDeleted TaskEventType = "task.deleted"
)

// TaskEvent - Plain struct (ไม่มี broker dependency)
type TaskEvent struct {
	Type      TaskEventType `json:"type"`
	TaskID    string        `json:"taskId"`
	UserID    string        `json:"userId"`
	Timestamp time.Time     `json:"timestamp"`
	Data      any           `json:"data,omitempty"`
}

// TaskEventPublisher - Interface สำหรับส่ง task events
type TaskEventPublisher interface {
	Publish(ctx context.Context, event *TaskEvent) error
	Close() error
}
