package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/jackc/pgx/v5"
)

type fakeNoteRepo struct {
	nextID int64
	notes  map[int64]dom.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{nextID: 1, notes: make(map[int64]dom.Note)}
}

func (r *fakeNoteRepo) Create(ctx context.Context, n dom.Note) (dom.Note, error) {
	n.ID = r.nextID
	r.nextID++
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	r.notes[n.ID] = n
	return n, nil
}

func (r *fakeNoteRepo) GetByID(ctx context.Context, id int64) (dom.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return dom.Note{}, pgx.ErrNoRows
	}
	return n, nil
}

func (r *fakeNoteRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Note, error) {
	var out []dom.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, n dom.Note) (dom.Note, error) {
	if _, ok := r.notes[n.ID]; !ok {
		return dom.Note{}, pgx.ErrNoRows
	}
	n.UpdatedAt = time.Now()
	r.notes[n.ID] = n
	return n, nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, userID, id int64) error {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.notes, id)
	return nil
}

func TestNoteService_Create(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()

	n, err := svc.Create(ctx, 1, " Lecture 9 ", " entropy notes ", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if n.Title != "Lecture 9" || n.Content != "entropy notes" {
		t.Errorf("Create() = %+v, want trimmed fields", n)
	}
	if n.Category != dom.DefaultCategory {
		t.Errorf("Category = %q, want %q", n.Category, dom.DefaultCategory)
	}

	if _, err := svc.Create(ctx, 1, "title only", "   ", ""); !errors.Is(err, ErrContentRequired) {
		t.Errorf("Create(blank content) error = %v, want ErrContentRequired", err)
	}
}

func TestNoteService_Ownership(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewNoteService(repo)
	ctx := context.Background()

	mine, err := svc.Create(ctx, 1, "mine", "body", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	theirs, err := svc.Create(ctx, 2, "theirs", "body", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.GetByID(ctx, 1, mine.ID); err != nil {
		t.Errorf("GetByID(own) error = %v", err)
	}
	if _, err := svc.GetByID(ctx, 1, theirs.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("GetByID(foreign) error = %v, want ErrNotOwner", err)
	}
	if err := svc.Delete(ctx, 1, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

func TestNoteService_UpdateValidation(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewNoteService(repo)
	ctx := context.Background()

	n, err := svc.Create(ctx, 1, "draft", "body", "School")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	blank := "  "
	if _, err := svc.Update(ctx, 1, n.ID, NotePatch{Content: &blank}); !errors.Is(err, ErrContentRequired) {
		t.Errorf("Update(blank content) error = %v, want ErrContentRequired", err)
	}

	title := "final"
	updated, err := svc.Update(ctx, 1, n.ID, NotePatch{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "final" || updated.Content != "body" || updated.Category != "School" {
		t.Errorf("Update() = %+v, want only title changed", updated)
	}
}
