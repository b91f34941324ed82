package domain

import "time"

// Priority levels a task can carry.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Recurrence types for task templates. A template with any other value is
// considered malformed and gets demoted to non-recurring by the scheduler.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// DefaultCategory is used when a task or note is created without one.
const DefaultCategory = "General"

// SubTask is an embedded checklist item. It lives inside its parent task's
// sub_tasks array and has no lifecycle of its own.
type SubTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Category    string
	Deadline    *time.Time
	Priority    string
	Completed   bool
	SubTasks    []SubTask

	IsRecurring    bool
	RecurrenceType string
	NextDueDate    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidPriority reports whether p is one of the allowed priority values.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ValidRecurrence reports whether rt is a recognized recurrence type.
func ValidRecurrence(rt string) bool {
	return rt == RecurrenceDaily || rt == RecurrenceWeekly || rt == RecurrenceMonthly
}
