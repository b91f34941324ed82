package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date parses a date field from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC. A present field
// with a null or empty value is recorded as "explicitly cleared", which
// Provided distinguishes from the field being absent.
type Date struct {
	t   *time.Time
	set bool
}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// If it was date-only (no time component), use start of day UTC
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d Date) Ptr() *time.Time { return d.t }

// Provided reports whether the field appeared in the JSON body at all,
// including as an explicit null.
func (d Date) Provided() bool { return d.set }

type CreateTaskRequest struct {
	Title          string `json:"title" binding:"required,min=1,max=200"`
	Description    string `json:"description" binding:"max=2000"`
	Category       string `json:"category" binding:"max=60"`
	Deadline       Date   `json:"deadline"` // optional: "2026-02-19" or RFC3339
	Priority       string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	IsRecurring    bool   `json:"isRecurring"`
	RecurrenceType string `json:"recurrenceType" binding:"omitempty,oneof=daily weekly monthly"`
	NextDueDate    Date   `json:"nextDueDate"`
}

type UpdateTaskRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=2000"`
	Category       *string `json:"category" binding:"omitempty,max=60"`
	Deadline       Date    `json:"deadline"` // отсутствует = не менять, null = убрать
	Priority       *string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Completed      *bool   `json:"completed"`
	IsRecurring    *bool   `json:"isRecurring"`
	RecurrenceType *string `json:"recurrenceType" binding:"omitempty,oneof=daily weekly monthly"`
	NextDueDate    Date    `json:"nextDueDate"`
}

// CompleteTaskRequest toggles the completed flag.
type CompleteTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type CreateSubTaskRequest struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
}

type UpdateSubTaskRequest struct {
	Text      *string `json:"text" binding:"omitempty,min=1,max=500"`
	Completed *bool   `json:"completed"`
}

type SubTaskResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TaskResponse struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Deadline       *time.Time        `json:"deadline"`
	Priority       string            `json:"priority"`
	Completed      bool              `json:"completed"`
	SubTasks       []SubTaskResponse `json:"subTasks"`
	IsRecurring    bool              `json:"isRecurring"`
	RecurrenceType string            `json:"recurrenceType,omitempty"`
	NextDueDate    *time.Time        `json:"nextDueDate,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type ListTasksResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
}
