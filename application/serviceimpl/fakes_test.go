package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/ports"
	"github.com/JorgeJ97/task-management-backend/domain/query"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
)

// memTaskRepo is an in-memory TaskRepository that evaluates predicates with
// Predicate.Matches.
type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*models.Task
	clock time.Time
	err   error
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{
		tasks: map[uuid.UUID]*models.Task{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memTaskRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memTaskRepo) owned(id, userID string) (*models.Task, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, repositories.ErrInvalidTaskID
	}
	t, ok := r.tasks[uid]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return t, nil
}

func (r *memTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	now := r.tick()
	task.CreatedAt, task.UpdatedAt = now, now
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) FindOne(ctx context.Context, id, userID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(id, userID)
	if t == nil {
		return nil, err
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) Update(ctx context.Context, userID, id string, updates models.TaskUpdates) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(id, userID)
	if t == nil {
		return nil, err
	}
	for k, v := range updates {
		switch k {
		case models.FieldTitle:
			t.Title = v.(string)
		case models.FieldDescription:
			t.Description = v.(string)
		case models.FieldCompleted:
			t.Completed = v.(bool)
		case models.FieldCategory:
			t.Category = v.(models.TaskCategory)
		case models.FieldPriority:
			t.Priority = v.(models.TaskPriority)
		case models.FieldDeadline:
			d := v.(time.Time)
			t.Deadline = &d
		default:
			panic("repository received non-updatable field " + k)
		}
	}
	t.UpdatedAt = r.tick()
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) Delete(ctx context.Context, id, userID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(id, userID)
	if t == nil {
		return nil, err
	}
	delete(r.tasks, t.ID)
	return t, nil
}

func (r *memTaskRepo) ToggleCompletion(ctx context.Context, id, userID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(id, userID)
	if t == nil {
		return nil, err
	}
	t.Completed = !t.Completed
	t.UpdatedAt = r.tick()
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) FindPage(ctx context.Context, p query.Predicate, page, limit int) ([]*models.Task, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}

	var matched []*models.Task
	for _, t := range r.tasks {
		if p.Matches(t) {
			cp := *t
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return strings.Compare(matched[i].ID.String(), matched[j].ID.String()) < 0
	})

	total := int64(len(matched))
	offset := query.Offset(page, limit)
	if offset >= len(matched) {
		return []*models.Task{}, total, nil
	}
	end := offset + query.ClampLimit(limit)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memTaskRepo) CountTotal(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, t := range r.tasks {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memTaskRepo) CountCompleted(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tasks {
		if t.UserID == userID && t.Completed {
			n++
		}
	}
	return n, nil
}

func (r *memTaskRepo) AggregateByCategory(ctx context.Context, userID string) ([]models.CategoryCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[models.TaskCategory]int64{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			counts[t.Category]++
		}
	}
	var out []models.CategoryCount
	for c, n := range counts {
		out = append(out, models.CategoryCount{Category: c, Count: n})
	}
	return out, nil
}

func (r *memTaskRepo) AggregateByPriority(ctx context.Context, userID string) ([]models.PriorityCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[models.TaskPriority]int64{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			counts[t.Priority]++
		}
	}
	var out []models.PriorityCount
	for p, n := range counts {
		out = append(out, models.PriorityCount{Priority: p, Count: n})
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*ports.TaskEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event *ports.TaskEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []ports.TaskEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.TaskEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
	// staleLookups ทำให้ GetByEmail ไม่เห็น user (register สองตัวพร้อมกัน)
	staleLookups bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleLookups {
		return nil, nil
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
