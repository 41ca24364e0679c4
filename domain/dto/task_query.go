package dto

import (
	"strconv"
	"strings"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/query"
)

// TaskListQuery is the typed form of the list endpoint's query string.
type TaskListQuery struct {
	Filters query.TaskFilters
	Page    int
	Limit   int
}

// QueryValues - key เดียวมีได้หลายค่า (?category=work&category=urgent)
type QueryValues map[string][]string

func (v QueryValues) last(key string) (string, bool) {
	values := v[key]
	if len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[len(values)-1]), true
}

// list รวมค่าที่ส่งซ้ำและค่าที่คั่นด้วย comma, ตัดค่าว่างและค่าซ้ำ
func (v QueryValues) list(key string) []string {
	var out []string
	seen := map[string]bool{}
	for _, raw := range v[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			out = append(out, part)
		}
	}
	return out
}

// ParseTaskListQuery coerces and validates list parameters. createdAt bounds are
// passed through raw; the query builder parses them.
func ParseTaskListQuery(v QueryValues, sanitize func(string) string) (TaskListQuery, error) {
	q := TaskListQuery{Page: query.DefaultPage, Limit: query.DefaultLimit}

	if raw, ok := v.last("completed"); ok && raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, &FieldError{Field: "completed", Message: "must be true or false"}
		}
		q.Filters.Completed = &b
	}

	for _, c := range v.list("category") {
		category := models.TaskCategory(c)
		if !category.IsValid() {
			return q, &FieldError{Field: "category", Message: "unknown category " + strconv.Quote(c)}
		}
		q.Filters.Categories = append(q.Filters.Categories, category)
	}

	for _, p := range v.list("priority") {
		priority := models.TaskPriority(p)
		if !priority.IsValid() {
			return q, &FieldError{Field: "priority", Message: "unknown priority " + strconv.Quote(p)}
		}
		q.Filters.Priorities = append(q.Filters.Priorities, priority)
	}

	if raw, ok := v.last("search"); ok {
		if sanitize != nil {
			raw = sanitize(raw)
		}
		q.Filters.Search = raw
	}

	if raw, ok := v.last("deadlineFrom"); ok && raw != "" {
		t, err := query.ParseDate(raw)
		if err != nil {
			return q, &FieldError{Field: "deadlineFrom", Message: "must be a valid date"}
		}
		q.Filters.DeadlineFrom = &t
	}
	if raw, ok := v.last("deadlineTo"); ok && raw != "" {
		t, err := query.ParseDate(raw)
		if err != nil {
			return q, &FieldError{Field: "deadlineTo", Message: "must be a valid date"}
		}
		q.Filters.DeadlineTo = &t
	}

	q.Filters.CreatedAtFrom, _ = v.last("createdAtFrom")
	q.Filters.CreatedAtTo, _ = v.last("createdAtTo")

	var err error
	if q.Page, err = intParam(v, "page", query.DefaultPage); err != nil {
		return q, err
	}
	if q.Limit, err = intParam(v, "limit", query.DefaultLimit); err != nil {
		return q, err
	}
	q.Page = query.ClampPage(q.Page)
	q.Limit = query.ClampLimit(q.Limit)

	return q, nil
}

func intParam(v QueryValues, key string, def int) (int, error) {
	raw, ok := v.last(key)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Message: "must be an integer"}
	}
	return n, nil
}
