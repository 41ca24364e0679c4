package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/JorgeJ97/task-management-backend/domain/models"
)

func TestParseTaskListQuery_Defaults(t *testing.T) {
	q, err := ParseTaskListQuery(QueryValues{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("page/limit = %d/%d, want 1/10", q.Page, q.Limit)
	}
	if q.Filters.Completed != nil || q.Filters.Categories != nil || q.Filters.Search != "" {
		t.Errorf("expected empty filters, got %+v", q.Filters)
	}
}

func TestParseTaskListQuery_Sets(t *testing.T) {
	q, err := ParseTaskListQuery(QueryValues{
		"category":  {"work,urgent", "work", "reminder"},
		"priority":  {"high"},
		"completed": {"false"},
		"page":      {"2"},
		"limit":     {"500"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.TaskCategory{models.CategoryWork, models.CategoryUrgent, models.CategoryReminder}
	if len(q.Filters.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", q.Filters.Categories, want)
	}
	for i := range want {
		if q.Filters.Categories[i] != want[i] {
			t.Errorf("categories[%d] = %s, want %s", i, q.Filters.Categories[i], want[i])
		}
	}
	if len(q.Filters.Priorities) != 1 || q.Filters.Priorities[0] != models.PriorityHigh {
		t.Errorf("priorities = %v", q.Filters.Priorities)
	}
	if q.Filters.Completed == nil || *q.Filters.Completed {
		t.Errorf("completed should be explicit false")
	}
	if q.Page != 2 || q.Limit != 100 {
		t.Errorf("page/limit = %d/%d, want 2/100", q.Page, q.Limit)
	}
}

func TestParseTaskListQuery_Errors(t *testing.T) {
	tests := []struct {
		name  string
		v     QueryValues
		field string
	}{
		{"bad completed", QueryValues{"completed": {"maybe"}}, "completed"},
		{"bad category", QueryValues{"category": {"work,fun"}}, "category"},
		{"bad priority", QueryValues{"priority": {"critical"}}, "priority"},
		{"bad deadline", QueryValues{"deadlineFrom": {"soon"}}, "deadlineFrom"},
		{"bad page", QueryValues{"page": {"two"}}, "page"},
		{"bad limit", QueryValues{"limit": {"1.5"}}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskListQuery(tt.v, nil)
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tt.field {
				t.Fatalf("expected FieldError on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestParseTaskListQuery_SearchSanitized(t *testing.T) {
	q, _ := ParseTaskListQuery(QueryValues{"search": {"<b>rent</b>"}}, func(s string) string { return "clean" })
	if q.Filters.Search != "clean" {
		t.Errorf("search = %q, want sanitizer output", q.Filters.Search)
	}
}

func TestUpdateTaskRequestToUpdates(t *testing.T) {
	title := "New"
	deadline := Date{Time: time.Now().Add(time.Hour)}
	updates := UpdateTaskRequestToUpdates(&UpdateTaskRequest{
		Title:    &title,
		Deadline: &deadline,
		UserID:   "attacker",
	})

	if updates[models.FieldTitle] != "New" {
		t.Errorf("title = %v", updates[models.FieldTitle])
	}
	if _, ok := updates[models.FieldDeadline]; !ok {
		t.Errorf("deadline missing")
	}
	if updates[models.FieldUserID] != "attacker" {
		t.Errorf("immutable keys are forwarded for the service to strip")
	}
	if _, ok := updates[models.FieldDescription]; ok {
		t.Errorf("absent field should not be present")
	}
}

func TestTasksToTaskResponses_Empty(t *testing.T) {
	out := TasksToTaskResponses(nil)
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil slice")
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    time.Time
		wantErr bool
	}{
		{"date only", `{"deadline":"2026-12-01"}`, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", `{"deadline":"2026-12-01T10:30:00+02:00"}`, time.Date(2026, 12, 1, 8, 30, 0, 0, time.UTC), false},
		{"garbage", `{"deadline":"someday"}`, time.Time{}, true},
		{"number", `{"deadline":20261201}`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateTaskRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				var fe *FieldError
				if !errors.As(err, &fe) || fe.Field != "deadline" {
					t.Fatalf("err = %v, want deadline field error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Deadline == nil || !req.Deadline.Time.Equal(tt.want) {
				t.Errorf("deadline = %v, want %v", req.Deadline, tt.want)
			}
		})
	}
}

func TestCreateTaskRequestToData_Deadline(t *testing.T) {
	d := &Date{Time: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)}
	data := CreateTaskRequestToData(&CreateTaskRequest{Title: "x", Deadline: d}, "u", "u@example.com")
	if data.Deadline == nil || !data.Deadline.Equal(d.Time) {
		t.Errorf("deadline = %v", data.Deadline)
	}
	if data := CreateTaskRequestToData(&CreateTaskRequest{Title: "x"}, "u", "u@example.com"); data.Deadline != nil {
		t.Errorf("absent deadline should stay nil, got %v", data.Deadline)
	}
}

// null และการไม่ส่ง deadline ให้ผลเหมือนกัน: ไม่มีการแก้ deadline
func TestUpdateTaskRequest_NullDeadlineLeavesDeadline(t *testing.T) {
	for _, body := range []string{`{"title":"x","deadline":null}`, `{"title":"x"}`} {
		var req UpdateTaskRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		updates := UpdateTaskRequestToUpdates(&req)
		if _, ok := updates[models.FieldDeadline]; ok {
			t.Errorf("%s: deadline should not be in updates: %v", body, updates)
		}
	}
}
