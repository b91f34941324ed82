package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"github.com/jackc/pgx/v5"
)

var ErrContentRequired = errors.New("title and content are required")

// NotePatch carries optional note updates. Nil means "leave unchanged".
type NotePatch struct {
	Title    *string
	Content  *string
	Category *string
}

type NoteService struct {
	repo repo.NoteRepo
}

func NewNoteService(r repo.NoteRepo) *NoteService {
	return &NoteService{repo: r}
}

func (s *NoteService) Create(ctx context.Context, userID int64, title, content, category string) (dom.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	category = strings.TrimSpace(category)
	if title == "" || content == "" {
		return dom.Note{}, ErrContentRequired
	}
	if category == "" {
		category = dom.DefaultCategory
	}
	return s.repo.Create(ctx, dom.Note{
		UserID:   userID,
		Title:    title,
		Content:  content,
		Category: category,
	})
}

func (s *NoteService) List(ctx context.Context, userID int64) ([]dom.Note, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NoteService) GetByID(ctx context.Context, userID, id int64) (dom.Note, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *NoteService) Update(ctx context.Context, userID, id int64, patch NotePatch) (dom.Note, error) {
	n, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return dom.Note{}, err
	}
	if patch.Title != nil {
		n.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		n.Content = strings.TrimSpace(*patch.Content)
	}
	if patch.Category != nil {
		n.Category = strings.TrimSpace(*patch.Category)
		if n.Category == "" {
			n.Category = dom.DefaultCategory
		}
	}
	if n.Title == "" || n.Content == "" {
		return dom.Note{}, ErrContentRequired
	}
	return s.repo.Update(ctx, n)
}

func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *NoteService) getOwned(ctx context.Context, userID, id int64) (dom.Note, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	if n.UserID != userID {
		return dom.Note{}, ErrNotOwner
	}
	return n, nil
}
