package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/JorgeJ97/task-management-backend/domain/ports"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

// NATSTaskPublisher ส่ง task events ผ่าน NATS core publish
// Subject: {prefix}.{event type} เช่น tasks.task.created
type NATSTaskPublisher struct {
	nc     *nats.Conn
	prefix string
}

func NewNATSTaskPublisher(url, subjectPrefix string) (*NATSTaskPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("task-management-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSTaskPublisher{
		nc:     nc,
		prefix: strings.TrimSuffix(subjectPrefix, "."),
	}, nil
}

func (p *NATSTaskPublisher) Subject(eventType ports.TaskEventType) string {
	if p.prefix == "" {
		return string(eventType)
	}
	return p.prefix + "." + string(eventType)
}

func (p *NATSTaskPublisher) Publish(ctx context.Context, event *ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := p.Subject(event.Type)
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish task event: %w", err)
	}

	logger.DebugContext(ctx, "Task event published", "subject", subject, "task_id", event.TaskID)
	return nil
}

func (p *NATSTaskPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	// Drain flushes pending publishes before closing
	return p.nc.Drain()
}

var _ ports.TaskEventPublisher = (*NATSTaskPublisher)(nil)
