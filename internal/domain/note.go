package domain

import "time"

// Note is a free-form text note owned by a user.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
