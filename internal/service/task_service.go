package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AvishekRimal/student-planner/internal/cache"
	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrNotOwner means the record exists but belongs to someone else.
	// Deliberately distinct from ErrNotFound: cross-owner access is an
	// authorization failure, not a miss.
	ErrNotOwner          = errors.New("user not authorized")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidRecurrence = errors.New("recurring task requires a recurrence type and next due date")
	ErrSubTaskNotFound   = errors.New("sub-task not found")
)

// OptionalTime distinguishes "leave unchanged" (Set false) from "assign
// Value", where a nil Value clears the field.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// TaskPatch carries optional field updates. Nil (or Set false for the time
// fields) means "leave unchanged".
type TaskPatch struct {
	Title          *string
	Description    *string
	Category       *string
	Deadline       OptionalTime
	Priority       *string
	Completed      *bool
	IsRecurring    *bool
	RecurrenceType *string
	NextDueDate    OptionalTime
}

type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.StatsCache
}

// NewTaskService creates a TaskService. If c is nil, stats cache
// invalidation is skipped.
func NewTaskService(r repo.TaskRepo, c *cache.StatsCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

func (s *TaskService) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)

	if t.Title == "" {
		return dom.Task{}, ErrTitleRequired
	}
	if t.Category == "" {
		t.Category = dom.DefaultCategory
	}
	if t.Priority == "" {
		t.Priority = dom.PriorityMedium
	}
	if err := checkRecurrence(t); err != nil {
		return dom.Task{}, err
	}
	t.SubTasks = []dom.SubTask{}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateStats(ctx, t.UserID)
	return created, nil
}

func (s *TaskService) List(ctx context.Context, userID int64, f repo.TaskFilter) ([]dom.Task, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, patch TaskPatch) (dom.Task, error) {
	t, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return dom.Task{}, err
	}

	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
		if t.Title == "" {
			return dom.Task{}, ErrTitleRequired
		}
	}
	if patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		t.Category = strings.TrimSpace(*patch.Category)
		if t.Category == "" {
			t.Category = dom.DefaultCategory
		}
	}
	if patch.Deadline.Set {
		t.Deadline = patch.Deadline.Value
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.IsRecurring != nil {
		t.IsRecurring = *patch.IsRecurring
	}
	if patch.RecurrenceType != nil {
		t.RecurrenceType = *patch.RecurrenceType
	}
	if patch.NextDueDate.Set {
		t.NextDueDate = patch.NextDueDate.Value
	}
	if err := checkRecurrence(t); err != nil {
		return dom.Task{}, err
	}

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateStats(ctx, userID)
	return updated, nil
}

// SetCompleted toggles the completion flag.
func (s *TaskService) SetCompleted(ctx context.Context, userID, id int64, completed bool) (dom.Task, error) {
	t, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return dom.Task{}, err
	}
	t.Completed = completed
	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateStats(ctx, userID)
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

// ListSubTasks returns the task's subtasks in display order.
func (s *TaskService) ListSubTasks(ctx context.Context, userID, taskID int64) ([]dom.SubTask, error) {
	t, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	return t.SubTasks, nil
}

// AddSubTask appends a new subtask and returns it.
func (s *TaskService) AddSubTask(ctx context.Context, userID, taskID int64, text string) (dom.SubTask, error) {
	t, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return dom.SubTask{}, err
	}
	sub := dom.SubTask{ID: uuid.NewString(), Text: strings.TrimSpace(text)}
	if sub.Text == "" {
		return dom.SubTask{}, ErrTitleRequired
	}
	t.SubTasks = append(t.SubTasks, sub)
	if _, err := s.repo.Update(ctx, t); err != nil {
		return dom.SubTask{}, err
	}
	s.invalidateStats(ctx, userID)
	return sub, nil
}

// UpdateSubTask patches one subtask by id.
func (s *TaskService) UpdateSubTask(ctx context.Context, userID, taskID int64, subTaskID string, text *string, completed *bool) (dom.SubTask, error) {
	t, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return dom.SubTask{}, err
	}
	idx := -1
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == subTaskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return dom.SubTask{}, ErrSubTaskNotFound
	}
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		if trimmed == "" {
			return dom.SubTask{}, ErrTitleRequired
		}
		t.SubTasks[idx].Text = trimmed
	}
	if completed != nil {
		t.SubTasks[idx].Completed = *completed
	}
	if _, err := s.repo.Update(ctx, t); err != nil {
		return dom.SubTask{}, err
	}
	return t.SubTasks[idx], nil
}

// DeleteSubTask removes one subtask, preserving the order of the rest.
func (s *TaskService) DeleteSubTask(ctx context.Context, userID, taskID int64, subTaskID string) error {
	t, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}
	kept := t.SubTasks[:0]
	found := false
	for _, sub := range t.SubTasks {
		if sub.ID == subTaskID {
			found = true
			continue
		}
		kept = append(kept, sub)
	}
	if !found {
		return ErrSubTaskNotFound
	}
	t.SubTasks = kept
	if _, err := s.repo.Update(ctx, t); err != nil {
		return err
	}
	return nil
}

// getOwned loads a task and verifies ownership. Missing rows map to
// ErrNotFound, foreign rows to ErrNotOwner.
func (s *TaskService) getOwned(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	if t.UserID != userID {
		return dom.Task{}, ErrNotOwner
	}
	return t, nil
}

// checkRecurrence enforces the template invariant: a recurring task needs a
// recognized recurrence type and a next due date. A task with no recurrence
// type can never be recurring, since "" is not a valid type.
func checkRecurrence(t dom.Task) error {
	if t.IsRecurring && (!dom.ValidRecurrence(t.RecurrenceType) || t.NextDueDate == nil) {
		return ErrInvalidRecurrence
	}
	return nil
}

func (s *TaskService) invalidateStats(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
