package query

import (
	"errors"
	"testing"
	"time"

	"github.com/JorgeJ97/task-management-backend/domain/models"
)

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildQuery_AlwaysScopesToOwner(t *testing.T) {
	filters := []TaskFilters{
		{},
		{Completed: boolPtr(true)},
		{Categories: []models.TaskCategory{models.CategoryWork, models.CategoryUrgent}},
		{Search: "rent"},
		{CreatedAtFrom: "2024-01-01", CreatedAtTo: "2024-12-31"},
	}

	for _, f := range filters {
		p, err := BuildQuery("user-1", f)
		if err != nil {
			t.Fatalf("BuildQuery(%+v) returned error: %v", f, err)
		}
		if p.UserID != "user-1" {
			t.Errorf("BuildQuery(%+v).UserID = %q, want user-1", f, p.UserID)
		}
	}
}

func TestBuildQuery_EmptyFiltersImposeNoConstraint(t *testing.T) {
	p, err := BuildQuery("u", TaskFilters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Completed != nil || p.Categories != nil || p.Priorities != nil || p.Search != "" ||
		!p.Deadline.IsZero() || !p.CreatedAt.IsZero() {
		t.Errorf("expected bare owner predicate, got %+v", p)
	}
}

func TestBuildQuery_CreatedAtRange(t *testing.T) {
	p, err := BuildQuery("u", TaskFilters{
		CreatedAtFrom: "2024-01-01",
		CreatedAtTo:   "2024-01-31T23:59:59Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	if p.CreatedAt.From == nil || !p.CreatedAt.From.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", p.CreatedAt.From, wantFrom)
	}
	if p.CreatedAt.To == nil || !p.CreatedAt.To.Equal(wantTo) {
		t.Errorf("to = %v, want %v", p.CreatedAt.To, wantTo)
	}
}

func TestBuildQuery_InvalidCreatedAtDate(t *testing.T) {
	tests := []struct {
		name    string
		filters TaskFilters
	}{
		{"garbage from", TaskFilters{CreatedAtFrom: "yesterday"}},
		{"impossible day", TaskFilters{CreatedAtTo: "2024-02-30"}},
		{"month 13", TaskFilters{CreatedAtFrom: "2024-13-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildQuery("u", tt.filters)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

func TestBuildQuery_CopiesSlices(t *testing.T) {
	categories := []models.TaskCategory{models.CategoryWork}
	p, _ := BuildQuery("u", TaskFilters{Categories: categories})
	categories[0] = models.CategoryPersonal
	if p.Categories[0] != models.CategoryWork {
		t.Errorf("predicate shares caller slice")
	}
}

func TestPredicate_Matches(t *testing.T) {
	created := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	task := &models.Task{
		Title:       "Pay Rent",
		Description: "transfer to landlord",
		Completed:   false,
		Category:    models.CategoryUrgent,
		Priority:    models.PriorityHigh,
		Deadline:    &deadline,
		UserID:      "owner",
		CreatedAt:   created,
	}

	tests := []struct {
		name    string
		pred    Predicate
		matches bool
	}{
		{"owner only", Predicate{UserID: "owner"}, true},
		{"other user", Predicate{UserID: "intruder"}, false},
		{"completed mismatch", Predicate{UserID: "owner", Completed: boolPtr(true)}, false},
		{"completed match", Predicate{UserID: "owner", Completed: boolPtr(false)}, true},
		{"category scalar", Predicate{UserID: "owner", Categories: []models.TaskCategory{models.CategoryUrgent}}, true},
		{"category set", Predicate{UserID: "owner", Categories: []models.TaskCategory{models.CategoryWork, models.CategoryUrgent}}, true},
		{"category miss", Predicate{UserID: "owner", Categories: []models.TaskCategory{models.CategoryWork}}, false},
		{"priority set miss", Predicate{UserID: "owner", Priorities: []models.TaskPriority{models.PriorityLow, models.PriorityMedium}}, false},
		{"search title case-insensitive", Predicate{UserID: "owner", Search: "pay rent"}, true},
		{"search description", Predicate{UserID: "owner", Search: "LANDLORD"}, true},
		{"search miss", Predicate{UserID: "owner", Search: "groceries"}, false},
		{"deadline inclusive bound", Predicate{UserID: "owner", Deadline: TimeRange{From: timePtr(deadline), To: timePtr(deadline)}}, true},
		{"deadline after range", Predicate{UserID: "owner", Deadline: TimeRange{To: timePtr(deadline.Add(-time.Hour))}}, false},
		{"created from only", Predicate{UserID: "owner", CreatedAt: TimeRange{From: timePtr(created.Add(-time.Minute))}}, true},
		{"created before range", Predicate{UserID: "owner", CreatedAt: TimeRange{From: timePtr(created.Add(time.Minute))}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.Matches(task); got != tt.matches {
				t.Errorf("Matches() = %v, want %v", got, tt.matches)
			}
		})
	}
}

func TestPredicate_DeadlineFilterExcludesTasksWithoutDeadline(t *testing.T) {
	task := &models.Task{UserID: "owner", CreatedAt: time.Now()}
	p := Predicate{UserID: "owner", Deadline: TimeRange{From: timePtr(time.Now().Add(-time.Hour))}}
	if p.Matches(task) {
		t.Errorf("task without deadline should not match a deadline range")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"2024-03-10T08:30:00Z", time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)},
		{"2024-03-10T08:30:00+07:00", time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)},
		{"2024-03-10T08:30:00", time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)},
		{" 2024-03-10 ", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
