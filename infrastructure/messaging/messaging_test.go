package messaging

import (
	"context"
	"reflect"
	"testing"

	"github.com/JorgeJ97/task-management-backend/domain/ports"
)

func TestParseBrokers(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"localhost:9092", []string{"localhost:9092"}},
		{"a:9092, b:9092 ,,c:9092", []string{"a:9092", "b:9092", "c:9092"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseBrokers(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBrokers(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNATSSubject(t *testing.T) {
	p := &NATSTaskPublisher{prefix: "tasks"}
	if got := p.Subject(ports.TaskToggled); got != "tasks.task.toggled" {
		t.Errorf("Subject() = %q", got)
	}

	bare := &NATSTaskPublisher{}
	if got := bare.Subject(ports.TaskCreated); got != "task.created" {
		t.Errorf("Subject() without prefix = %q", got)
	}
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopTaskPublisher()
	if err := p.Publish(context.Background(), &ports.TaskEvent{Type: ports.TaskDeleted, TaskID: "x"}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}
