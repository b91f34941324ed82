package jobs

import (
	"context"
	"errors"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/notify"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"github.com/jackc/pgx/v5"
)

// memTaskRepo is a minimal in-memory TaskRepo for job tests.
type memTaskRepo struct {
	nextID int64
	tasks  map[int64]dom.Task

	createErr error
	failOnce  bool
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{nextID: 1, tasks: make(map[int64]dom.Task)}
}

func (r *memTaskRepo) add(t dom.Task) dom.Task {
	t.ID = r.nextID
	r.nextID++
	r.tasks[t.ID] = t
	return t
}

func (r *memTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	if r.createErr != nil {
		err := r.createErr
		if r.failOnce {
			r.createErr = nil
		}
		return dom.Task{}, err
	}
	return r.add(t), nil
}

func (r *memTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTaskRepo) List(ctx context.Context, userID int64, f repo.TaskFilter) ([]dom.Task, error) {
	return nil, errors.New("not implemented")
}

func (r *memTaskRepo) Update(ctx context.Context, t dom.Task) (dom.Task, error) {
	if _, ok := r.tasks[t.ID]; !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) Delete(ctx context.Context, userID, id int64) error {
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) TasksForStats(ctx context.Context, userID int64) ([]dom.Task, error) {
	return nil, errors.New("not implemented")
}

func (r *memTaskRepo) DueRecurring(ctx context.Context, now time.Time) ([]dom.Task, error) {
	var out []dom.Task
	for _, t := range r.tasks {
		if t.IsRecurring && t.NextDueDate != nil && !t.NextDueDate.After(now) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) DueWithin(ctx context.Context, userID int64, from, to time.Time) ([]dom.Task, error) {
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

// byUser returns the user's tasks for assertions.
func (r *memTaskRepo) byUser(userID int64) []dom.Task {
	var out []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// memUserRepo serves the reminder job's full-account scan.
type memUserRepo struct {
	users []dom.User
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	return dom.User{}, errors.New("not implemented")
}

func (r *memUserRepo) ListAll(ctx context.Context) ([]dom.User, error) {
	return r.users, nil
}

// captureMailer records dispatched messages; failFor simulates a bad address.
type captureMailer struct {
	sent    []notify.Message
	failFor string
}

func (m *captureMailer) Send(ctx context.Context, msg notify.Message) error {
	if m.failFor != "" && msg.To == m.failFor {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}
