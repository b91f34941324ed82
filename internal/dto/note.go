package dto

import "time"

type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Content  string `json:"content" binding:"required,min=1"`
	Category string `json:"category" binding:"max=60"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	Category *string `json:"category" binding:"omitempty,max=60"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}
