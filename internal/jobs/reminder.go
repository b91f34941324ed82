package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/notify"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"go.uber.org/zap"
)

const reminderWindow = 24 * time.Hour

// ReminderJob mails each user one digest of their tasks due within the next
// 24 hours. Users with nothing due get nothing; one user's delivery failure
// never blocks the rest.
type ReminderJob struct {
	users  repo.UserRepo
	tasks  repo.TaskRepo
	mailer notify.Dispatcher
	logger *zap.Logger
	now    func() time.Time
}

func NewReminderJob(users repo.UserRepo, tasks repo.TaskRepo, mailer notify.Dispatcher, logger *zap.Logger) *ReminderJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderJob{users: users, tasks: tasks, mailer: mailer, logger: logger, now: time.Now}
}

func (j *ReminderJob) Name() string { return "reminder" }

func (j *ReminderJob) Run(ctx context.Context) error {
	now := j.now()
	users, err := j.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if err := j.remindUser(ctx, user, now); err != nil {
			j.logger.Error("reminder skipped",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (j *ReminderJob) remindUser(ctx context.Context, user dom.User, now time.Time) error {
	due, err := j.tasks.DueWithin(ctx, user.ID, now, now.Add(reminderWindow))
	if err != nil {
		return fmt.Errorf("scan deadlines: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	if err := j.mailer.Send(ctx, notify.Message{
		To:      user.Email,
		Subject: "Your Daily Task Reminder",
		Body:    digestBody(user.Username, due),
	}); err != nil {
		return fmt.Errorf("dispatch digest: %w", err)
	}
	j.logger.Info("reminder sent",
		zap.Int64("user_id", user.ID),
		zap.Int("tasks", len(due)),
	)
	return nil
}

// digestBody composes the single digest message listing every near-term task.
func digestBody(username string, tasks []dom.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", username)
	b.WriteString("This is a friendly reminder that you have the following task(s) due in the next 24 hours:\n\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %q (Priority: %s)\n", t.Title, t.Priority)
	}
	b.WriteString("\nStay productive!\n- The Student Planner Team")
	return b.String()
}
