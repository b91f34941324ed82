package service

import (
	"context"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"github.com/jackc/pgx/v5"
)

// fakeTaskRepo is an in-memory TaskRepo for service tests.
type fakeTaskRepo struct {
	nextID int64
	tasks  map[int64]dom.Task

	createErr error
	updateErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, tasks: make(map[int64]dom.Task)}
}

func (r *fakeTaskRepo) add(t dom.Task) dom.Task {
	t.ID = r.nextID
	r.nextID++
	if t.SubTasks == nil {
		t.SubTasks = []dom.SubTask{}
	}
	r.tasks[t.ID] = t
	return t
}

func (r *fakeTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	if r.createErr != nil {
		return dom.Task{}, r.createErr
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return r.add(t), nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, userID int64, f repo.TaskFilter) ([]dom.Task, error) {
	var out []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, t dom.Task) (dom.Task, error) {
	if r.updateErr != nil {
		return dom.Task{}, r.updateErr
	}
	if _, ok := r.tasks[t.ID]; !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.UpdatedAt = time.Now()
	r.tasks[t.ID] = t
	return t, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, userID, id int64) error {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) TasksForStats(ctx context.Context, userID int64) ([]dom.Task, error) {
	var out []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) DueRecurring(ctx context.Context, now time.Time) ([]dom.Task, error) {
	var out []dom.Task
	for _, t := range r.tasks {
		if t.IsRecurring && t.NextDueDate != nil && !t.NextDueDate.After(now) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) DueWithin(ctx context.Context, userID int64, from, to time.Time) ([]dom.Task, error) {
	var out []dom.Task
	for _, t := range r.tasks {
		if t.UserID != userID || t.Completed || t.Deadline == nil {
			continue
		}
		if t.Deadline.Before(from) || t.Deadline.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
