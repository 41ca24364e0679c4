package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/JorgeJ97/task-management-backend/domain/ports"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

// KafkaTaskPublisher writes task events to one topic, keyed by task id so that
// every event of a task lands on the same partition.
type KafkaTaskPublisher struct {
	writer *kafka.Writer
}

func NewKafkaTaskPublisher(brokers []string, topic string) *KafkaTaskPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn("Kafka task event delivery failed", "count", len(messages), "error", err)
			}
		},
	}
	return &KafkaTaskPublisher{writer: w}
}

// ParseBrokers splits a comma-separated broker list.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (p *KafkaTaskPublisher) Publish(ctx context.Context, event *ports.TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TaskID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish task event: %w", err)
	}
	return nil
}

func (p *KafkaTaskPublisher) Close() error {
	return p.writer.Close()
}

var _ ports.TaskEventPublisher = (*KafkaTaskPublisher)(nil)
