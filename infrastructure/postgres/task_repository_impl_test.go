package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/query"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
)

// dryRunDB สร้าง SQL โดยไม่ต่อ database จริง
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db
}

func TestApplyPredicate(t *testing.T) {
	db := dryRunDB(t)
	done := false
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		p       query.Predicate
		want    []string
		notWant []string
	}{
		{
			name:    "owner only",
			p:       query.Predicate{UserID: "u1"},
			want:    []string{`SELECT count(*) FROM "tasks" WHERE user_id = 'u1'`},
			notWant: []string{" AND "},
		},
		{
			name: "one category is equality",
			p:    query.Predicate{UserID: "u1", Categories: []models.TaskCategory{models.CategoryWork}},
			want: []string{`WHERE user_id = 'u1' AND category = 'work'`},
		},
		{
			name: "category set is IN",
			p: query.Predicate{UserID: "u1", Completed: &done,
				Categories: []models.TaskCategory{models.CategoryWork, models.CategoryUrgent}},
			want: []string{`WHERE user_id = 'u1' AND completed = false AND category IN ('work','urgent')`},
		},
		{
			name: "priority set is IN",
			p:    query.Predicate{UserID: "u1", Priorities: []models.TaskPriority{models.PriorityLow, models.PriorityHigh}},
			want: []string{`WHERE user_id = 'u1' AND priority IN ('low','high')`},
		},
		{
			name: "date bounds are inclusive",
			p: query.Predicate{UserID: "u1",
				Deadline:  query.TimeRange{From: &from, To: &to},
				CreatedAt: query.TimeRange{From: &from, To: &to}},
			want: []string{
				`WHERE user_id = 'u1' AND deadline >= '2026-01-01 00:00:00'`,
				`deadline <= '2026-01-31 00:00:00'`,
				`created_at >= '2026-01-01 00:00:00'`,
				`created_at <= '2026-01-31 00:00:00'`,
			},
		},
		{
			name: "search escapes wildcards",
			p:    query.Predicate{UserID: "u1", Search: "a_b%"},
			want: []string{
				`WHERE user_id = 'u1' AND (`,
				`title ILIKE '%a\_b\%%' OR description ILIKE '%a\_b\%%'`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var total int64
				return applyPredicate(tx.Model(&models.Task{}), tt.p).Count(&total)
			})
			for _, w := range tt.want {
				if !strings.Contains(sql, w) {
					t.Errorf("SQL missing %q\n%s", w, sql)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(sql, nw) {
					t.Errorf("SQL should not contain %q\n%s", nw, sql)
				}
			}
		})
	}
}

func TestPageQuery(t *testing.T) {
	db := dryRunDB(t)
	p := query.Predicate{UserID: "u1", Categories: []models.TaskCategory{models.CategoryWork}}

	tests := []struct {
		name        string
		page, limit int
		want        string
	}{
		{"second page", 2, 10, `ORDER BY created_at DESC,id ASC LIMIT 10 OFFSET 10`},
		{"limit clamped", 1, 500, `ORDER BY created_at DESC,id ASC LIMIT 100`},
		{"page clamped", 0, 5, `ORDER BY created_at DESC,id ASC LIMIT 5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var tasks []*models.Task
				return pageQuery(tx, p, tt.page, tt.limit).Find(&tasks)
			})
			if !strings.HasPrefix(sql, `SELECT * FROM "tasks" WHERE user_id = 'u1' AND category = 'work'`) {
				t.Errorf("owner term must come first:\n%s", sql)
			}
			if !strings.HasSuffix(sql, tt.want) {
				t.Errorf("SQL should end with %q\n%s", tt.want, sql)
			}
		})
	}
}

func TestTranslateCreateError(t *testing.T) {
	if err := translateCreateError(gorm.ErrDuplicatedKey); !errors.Is(err, repositories.ErrDuplicateEmail) {
		t.Errorf("duplicated key = %v, want ErrDuplicateEmail", err)
	}
	other := errors.New("connection reset")
	if err := translateCreateError(other); err != other {
		t.Errorf("other errors must pass through, got %v", err)
	}
	if err := translateCreateError(nil); err != nil {
		t.Errorf("nil = %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"rent":       "rent",
		"100%":       `100\%`,
		"a_b":        `a\_b`,
		`back\slash`: `back\\slash`,
		`%_\`:        `\%\_\\`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTaskID(t *testing.T) {
	if _, err := parseTaskID("507f1f77bcf86cd799439011"); !errors.Is(err, repositories.ErrInvalidTaskID) {
		t.Errorf("expected ErrInvalidTaskID for non-uuid, got %v", err)
	}
	if _, err := parseTaskID("6f1c8a3e-6a55-4f51-9d3c-2b4f1c0b8e11"); err != nil {
		t.Errorf("unexpected error for valid uuid: %v", err)
	}
}

func TestUpdateColumns(t *testing.T) {
	columns, err := updateColumns(models.TaskUpdates{
		models.FieldTitle:    "New",
		models.FieldCategory: models.CategoryWork,
		models.FieldPriority: models.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if columns["title"] != "New" || columns["category"] != "work" || columns["priority"] != "high" {
		t.Errorf("unexpected columns: %v", columns)
	}

	if _, err := updateColumns(models.TaskUpdates{models.FieldUserID: "x"}); err == nil {
		t.Errorf("expected error for non-updatable field")
	}
}

func TestParseGormLogLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"ERROR":  gormlogger.Error,
		"info":   gormlogger.Info,
		"":       gormlogger.Warn,
	}
	for in, want := range tests {
		if got := ParseGormLogLevel(in); got != want {
			t.Errorf("ParseGormLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
