package messaging

import (
	"context"

	"github.com/JorgeJ97/task-management-backend/domain/ports"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

// NoopTaskPublisher - ไม่ส่งอะไรเลย ใช้เมื่อ EVENTS_DRIVER=none หรือตอน test
type NoopTaskPublisher struct{}

func NewNoopTaskPublisher() *NoopTaskPublisher {
	return &NoopTaskPublisher{}
}

func (NoopTaskPublisher) Publish(ctx context.Context, event *ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task event (noop)", "type", event.Type, "task_id", event.TaskID)
	return nil
}

func (NoopTaskPublisher) Close() error { return nil }

var _ ports.TaskEventPublisher = (*NoopTaskPublisher)(nil)
