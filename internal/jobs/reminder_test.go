package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reminderNow = time.Date(2025, time.April, 10, 8, 0, 0, 0, time.UTC)

func newTestReminderJob(users *memUserRepo, tasks *memTaskRepo, mailer *captureMailer) *ReminderJob {
	j := NewReminderJob(users, tasks, mailer, nil)
	j.now = func() time.Time { return reminderNow }
	return j
}

func TestReminderJob_OneDigestPerUser(t *testing.T) {
	users := &memUserRepo{users: []dom.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
	}}
	tasks := newMemTaskRepo()
	soon := reminderNow.Add(6 * time.Hour)
	tonight := reminderNow.Add(14 * time.Hour)
	farOff := reminderNow.Add(48 * time.Hour)
	tasks.add(dom.Task{UserID: 1, Title: "physics problem set", Priority: dom.PriorityHigh, Deadline: &soon})
	tasks.add(dom.Task{UserID: 1, Title: "return library book", Priority: dom.PriorityLow, Deadline: &tonight})
	tasks.add(dom.Task{UserID: 1, Title: "term paper", Priority: dom.PriorityHigh, Deadline: &farOff})

	mailer := &captureMailer{}
	require.NoError(t, newTestReminderJob(users, tasks, mailer).Run(context.Background()))

	require.Len(t, mailer.sent, 1, "two due tasks fold into a single digest")
	msg := mailer.sent[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Your Daily Task Reminder", msg.Subject)
	assert.Contains(t, msg.Body, "Hello alice,")
	assert.Contains(t, msg.Body, `"physics problem set" (Priority: High)`)
	assert.Contains(t, msg.Body, `"return library book" (Priority: Low)`)
	assert.NotContains(t, msg.Body, "term paper", "48h-out deadline is outside the window")
	assert.Equal(t, 2, strings.Count(msg.Body, "- \""), "digest lists exactly the due tasks")
	assert.Contains(t, msg.Body, "Stay productive!")
}

func TestReminderJob_SkipsUsersWithNothingDue(t *testing.T) {
	users := &memUserRepo{users: []dom.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}}
	tasks := newMemTaskRepo()
	soon := reminderNow.Add(2 * time.Hour)
	tasks.add(dom.Task{UserID: 2, Title: "submit form", Priority: dom.PriorityMedium, Deadline: &soon})
	// Completed tasks never trigger a reminder.
	tasks.add(dom.Task{UserID: 1, Title: "already done", Completed: true, Deadline: &soon})

	mailer := &captureMailer{}
	require.NoError(t, newTestReminderJob(users, tasks, mailer).Run(context.Background()))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "bob@example.com", mailer.sent[0].To)
}

func TestReminderJob_DeliveryFailureIsIsolated(t *testing.T) {
	users := &memUserRepo{users: []dom.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}}
	tasks := newMemTaskRepo()
	soon := reminderNow.Add(2 * time.Hour)
	tasks.add(dom.Task{UserID: 1, Title: "a", Priority: dom.PriorityMedium, Deadline: &soon})
	tasks.add(dom.Task{UserID: 2, Title: "b", Priority: dom.PriorityMedium, Deadline: &soon})

	mailer := &captureMailer{failFor: "alice@example.com"}
	require.NoError(t, newTestReminderJob(users, tasks, mailer).Run(context.Background()))

	require.Len(t, mailer.sent, 1, "bob's digest goes out despite alice's failure")
	assert.Equal(t, "bob@example.com", mailer.sent[0].To)
}
