package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JorgeJ97/task-management-backend/domain/models"
)

// ErrInvalidDate is returned when a date filter is not a valid calendar date.
var ErrInvalidDate = errors.New("invalid date")

// TaskFilters are the optional, already validated filters of a task listing.
// An empty slice or nil pointer means "no constraint".
type TaskFilters struct {
	Completed     *bool
	Categories    []models.TaskCategory
	Priorities    []models.TaskPriority
	Search        string
	DeadlineFrom  *time.Time
	DeadlineTo    *time.Time
	CreatedAtFrom string
	CreatedAtTo   string
}

// TimeRange is an inclusive range, either bound may be nil.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func (r TimeRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

func (r TimeRange) contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Predicate describes which tasks match a listing. All terms are ANDed and the
// owner term is always present.
type Predicate struct {
	UserID     string
	Completed  *bool
	Categories []models.TaskCategory
	Priorities []models.TaskPriority
	Search     string
	Deadline   TimeRange
	CreatedAt  TimeRange
}

// BuildQuery turns filters into a predicate scoped to userID.
func BuildQuery(userID string, f TaskFilters) (Predicate, error) {
	p := Predicate{UserID: userID}

	if f.Completed != nil {
		completed := *f.Completed
		p.Completed = &completed
	}

	if len(f.Categories) > 0 {
		p.Categories = append([]models.TaskCategory(nil), f.Categories...)
	}
	if len(f.Priorities) > 0 {
		p.Priorities = append([]models.TaskPriority(nil), f.Priorities...)
	}

	p.Deadline = TimeRange{From: f.DeadlineFrom, To: f.DeadlineTo}

	if f.CreatedAtFrom != "" {
		from, err := ParseDate(f.CreatedAtFrom)
		if err != nil {
			return Predicate{}, fmt.Errorf("createdAtFrom: %w", err)
		}
		p.CreatedAt.From = &from
	}
	if f.CreatedAtTo != "" {
		to, err := ParseDate(f.CreatedAtTo)
		if err != nil {
			return Predicate{}, fmt.Errorf("createdAtTo: %w", err)
		}
		p.CreatedAt.To = &to
	}

	p.Search = strings.TrimSpace(f.Search)

	return p, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts an RFC3339 timestamp or a plain calendar date (UTC midnight).
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Matches reports whether task satisfies the predicate.
func (p Predicate) Matches(task *models.Task) bool {
	if task == nil || task.UserID != p.UserID {
		return false
	}
	if p.Completed != nil && task.Completed != *p.Completed {
		return false
	}
	if len(p.Categories) > 0 && !containsValue(p.Categories, task.Category) {
		return false
	}
	if len(p.Priorities) > 0 && !containsValue(p.Priorities, task.Priority) {
		return false
	}
	if !p.Deadline.IsZero() {
		if task.Deadline == nil || !p.Deadline.contains(*task.Deadline) {
			return false
		}
	}
	if !p.CreatedAt.IsZero() && !p.CreatedAt.contains(task.CreatedAt) {
		return false
	}
	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(task.Title), needle) &&
			!strings.Contains(strings.ToLower(task.Description), needle) {
			return false
		}
	}
	return true
}

func containsValue[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
