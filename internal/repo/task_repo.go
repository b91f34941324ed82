package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskFilter narrows List results. Zero values mean "no filter".
type TaskFilter struct {
	Priority  string
	Category  string
	Completed *bool
	Search    string // matches title or description, case-insensitive
	Sort      string // comma-separated keys, "-" prefix for descending
}

type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, id int64) (dom.Task, error)
	List(ctx context.Context, userID int64, f TaskFilter) ([]dom.Task, error)
	Update(ctx context.Context, t dom.Task) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) error

	// TasksForStats returns the full task set for one user in a single
	// query; the stats service reduces it in memory.
	TasksForStats(ctx context.Context, userID int64) ([]dom.Task, error)

	// DueRecurring returns recurring templates across all users whose
	// next_due_date has passed.
	DueRecurring(ctx context.Context, now time.Time) ([]dom.Task, error)

	// DueWithin returns a user's incomplete tasks with a deadline inside
	// [from, to].
	DueWithin(ctx context.Context, userID int64, from, to time.Time) ([]dom.Task, error)
}

const taskColumns = `id, user_id, title, description, category, deadline, priority, completed,
		sub_tasks, is_recurring, recurrence_type, next_due_date, created_at, updated_at`

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	if t.SubTasks == nil {
		t.SubTasks = []dom.SubTask{}
	}
	query := `
		INSERT INTO tasks (user_id, title, description, category, deadline, priority, completed,
			sub_tasks, is_recurring, recurrence_type, next_due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + taskColumns
	row := r.db.QueryRow(ctx, query,
		t.UserID, t.Title, t.Description, t.Category, t.Deadline, t.Priority, t.Completed,
		t.SubTasks, t.IsRecurring, t.RecurrenceType, t.NextDueDate,
	)
	return scanTask(row)
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(r.db.QueryRow(ctx, query, id))
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64, f TaskFilter) ([]dom.Task, error) {
	var (
		where = []string{"user_id = $1"}
		args  = []any{userID}
	)
	if f.Priority != "" {
		args = append(args, f.Priority)
		where = append(where, fmt.Sprintf("priority = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Completed != nil {
		args = append(args, *f.Completed)
		where = append(where, fmt.Sprintf("completed = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY ` + buildOrderBy(f.Sort)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *PGTaskRepo) Update(ctx context.Context, t dom.Task) (dom.Task, error) {
	if t.SubTasks == nil {
		t.SubTasks = []dom.SubTask{}
	}
	query := `
		UPDATE tasks SET title = $2, description = $3, category = $4, deadline = $5,
			priority = $6, completed = $7, sub_tasks = $8, is_recurring = $9,
			recurrence_type = $10, next_due_date = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns
	row := r.db.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.Category, t.Deadline, t.Priority, t.Completed,
		t.SubTasks, t.IsRecurring, t.RecurrenceType, t.NextDueDate,
	)
	return scanTask(row)
}

func (r *PGTaskRepo) Delete(ctx context.Context, userID, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGTaskRepo) TasksForStats(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *PGTaskRepo) DueRecurring(ctx context.Context, now time.Time) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE is_recurring = TRUE AND next_due_date IS NOT NULL AND next_due_date <= $1
		ORDER BY next_due_date ASC`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *PGTaskRepo) DueWithin(ctx context.Context, userID int64, from, to time.Time) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1 AND completed = FALSE
		  AND deadline IS NOT NULL AND deadline >= $2 AND deadline <= $3
		ORDER BY deadline ASC`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// sortColumns whitelists API sort keys. Anything else is ignored.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"deadline":  "deadline",
	"priority":  "priority",
	"title":     "title",
	"category":  "category",
}

// buildOrderBy converts "priority,-createdAt" into an ORDER BY clause.
// Unknown keys are dropped; empty input falls back to newest-first.
func buildOrderBy(sort string) string {
	var parts []string
	for _, key := range strings.Split(sort, ",") {
		key = strings.TrimSpace(key)
		dir := "ASC"
		if strings.HasPrefix(key, "-") {
			dir = "DESC"
			key = key[1:]
		}
		if col, ok := sortColumns[key]; ok {
			parts = append(parts, col+" "+dir)
		}
	}
	if len(parts) == 0 {
		return "created_at DESC"
	}
	return strings.Join(parts, ", ")
}

func scanTask(row pgx.Row) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Category, &t.Deadline, &t.Priority,
		&t.Completed, &t.SubTasks, &t.IsRecurring, &t.RecurrenceType, &t.NextDueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func collectTasks(rows pgx.Rows) ([]dom.Task, error) {
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
