package repo

import (
	"context"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NoteRepo interface {
	Create(ctx context.Context, n dom.Note) (dom.Note, error)
	GetByID(ctx context.Context, id int64) (dom.Note, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Note, error)
	Update(ctx context.Context, n dom.Note) (dom.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}

const noteColumns = `id, user_id, title, content, category, created_at, updated_at`

type PGNoteRepo struct {
	db *pgxpool.Pool
}

func NewPGNoteRepo(db *pgxpool.Pool) *PGNoteRepo {
	return &PGNoteRepo{db: db}
}

func (r *PGNoteRepo) Create(ctx context.Context, n dom.Note) (dom.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + noteColumns
	return scanNote(r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Content, n.Category))
}

func (r *PGNoteRepo) GetByID(ctx context.Context, id int64) (dom.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	return scanNote(r.db.QueryRow(ctx, query, id))
}

// ListByUser returns the user's notes, most recently touched first.
func (r *PGNoteRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNoteRepo) Update(ctx context.Context, n dom.Note) (dom.Note, error) {
	query := `
		UPDATE notes SET title = $2, content = $3, category = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + noteColumns
	return scanNote(r.db.QueryRow(ctx, query, n.ID, n.Title, n.Content, n.Category))
}

func (r *PGNoteRepo) Delete(ctx context.Context, userID, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanNote(row pgx.Row) (dom.Note, error) {
	var n dom.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}
