package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobNow = time.Date(2025, time.April, 10, 0, 1, 0, 0, time.UTC)

func newTestRecurrenceJob(repo *memTaskRepo) *RecurrenceJob {
	j := NewRecurrenceJob(repo, nil, nil)
	j.now = func() time.Time { return jobNow }
	return j
}

func TestRecurrenceJob_MaterializesDueTemplate(t *testing.T) {
	repo := newMemTaskRepo()
	due := jobNow.AddDate(0, 0, -1)
	template := repo.add(dom.Task{
		UserID:         7,
		Title:          "weekly review",
		Description:    "go through the planner",
		Category:       "Habits",
		Priority:       dom.PriorityHigh,
		IsRecurring:    true,
		RecurrenceType: dom.RecurrenceDaily,
		NextDueDate:    &due,
	})

	require.NoError(t, newTestRecurrenceJob(repo).Run(context.Background()))

	all := repo.byUser(7)
	require.Len(t, all, 2)

	var occurrence, saved dom.Task
	for _, task := range all {
		if task.ID == template.ID {
			saved = task
		} else {
			occurrence = task
		}
	}

	assert.Equal(t, template.Title, occurrence.Title)
	assert.Equal(t, template.Category, occurrence.Category)
	assert.Equal(t, template.Priority, occurrence.Priority)
	assert.False(t, occurrence.IsRecurring)
	assert.Empty(t, occurrence.RecurrenceType)
	require.NotNil(t, occurrence.Deadline)
	assert.True(t, occurrence.Deadline.Equal(due), "occurrence deadline should be the template's due date")

	require.NotNil(t, saved.NextDueDate)
	assert.True(t, saved.NextDueDate.Equal(due.AddDate(0, 0, 1)), "template cursor should advance one day")
	assert.True(t, saved.IsRecurring)
}

func TestRecurrenceJob_SkipsFutureTemplates(t *testing.T) {
	repo := newMemTaskRepo()
	future := jobNow.AddDate(0, 0, 3)
	repo.add(dom.Task{
		UserID:         7,
		Title:          "not yet",
		IsRecurring:    true,
		RecurrenceType: dom.RecurrenceWeekly,
		NextDueDate:    &future,
	})

	require.NoError(t, newTestRecurrenceJob(repo).Run(context.Background()))
	assert.Len(t, repo.byUser(7), 1, "future template must not spawn anything")
}

func TestRecurrenceJob_DemotesUnknownType(t *testing.T) {
	repo := newMemTaskRepo()
	due := jobNow.AddDate(0, 0, -1)
	template := repo.add(dom.Task{
		UserID:         7,
		Title:          "legacy schedule",
		IsRecurring:    true,
		RecurrenceType: "fortnightly",
		NextDueDate:    &due,
	})

	job := newTestRecurrenceJob(repo)
	require.NoError(t, job.Run(context.Background()))

	saved, err := repo.GetByID(context.Background(), template.ID)
	require.NoError(t, err)
	assert.False(t, saved.IsRecurring, "malformed template must be demoted")
	// The one occurrence it still produced, nothing more on a second run.
	require.Len(t, repo.byUser(7), 2)
	require.NoError(t, job.Run(context.Background()))
	assert.Len(t, repo.byUser(7), 2)
}

func TestRecurrenceJob_OneFailureDoesNotAbortBatch(t *testing.T) {
	repo := newMemTaskRepo()
	due := jobNow.AddDate(0, 0, -1)
	repo.add(dom.Task{
		UserID: 1, Title: "a", IsRecurring: true,
		RecurrenceType: dom.RecurrenceDaily, NextDueDate: &due,
	})
	repo.add(dom.Task{
		UserID: 2, Title: "b", IsRecurring: true,
		RecurrenceType: dom.RecurrenceDaily, NextDueDate: &due,
	})
	repo.createErr = errors.New("insert failed")
	repo.failOnce = true

	require.NoError(t, newTestRecurrenceJob(repo).Run(context.Background()))

	// One template hit the injected failure, the other still materialized.
	total := len(repo.byUser(1)) + len(repo.byUser(2))
	assert.Equal(t, 3, total)
}

func TestNextDueDate(t *testing.T) {
	from := time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		recurrenceType string
		want           time.Time
		ok             bool
	}{
		{dom.RecurrenceDaily, from.AddDate(0, 0, 1), true},
		{dom.RecurrenceWeekly, from.AddDate(0, 0, 7), true},
		// AddDate normalizes Jan 31 + 1 month past February's end.
		{dom.RecurrenceMonthly, time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC), true},
		{"fortnightly", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.recurrenceType, func(t *testing.T) {
			got, ok := NextDueDate(from, tt.recurrenceType)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}
