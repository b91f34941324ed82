package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/AvishekRimal/student-planner/internal/cache"
	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"go.uber.org/zap"
)

// RecurrenceJob materializes due recurring templates: each one spawns an
// independent one-off task and the template's schedule cursor advances by
// one recurrence unit. No exactly-once guarantee — if the occurrence insert
// succeeds but the reschedule save fails, the template is simply picked up
// again on the next run.
type RecurrenceJob struct {
	tasks  repo.TaskRepo
	stats  *cache.StatsCache
	logger *zap.Logger
	now    func() time.Time
}

// NewRecurrenceJob creates the job. stats may be nil to skip cache
// invalidation for spawned occurrences.
func NewRecurrenceJob(tasks repo.TaskRepo, stats *cache.StatsCache, logger *zap.Logger) *RecurrenceJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecurrenceJob{tasks: tasks, stats: stats, logger: logger, now: time.Now}
}

func (j *RecurrenceJob) Name() string { return "recurrence" }

// Run processes every due template. A single template's failure is logged
// and skipped; it never aborts the batch.
func (j *RecurrenceJob) Run(ctx context.Context) error {
	now := j.now()
	due, err := j.tasks.DueRecurring(ctx, now)
	if err != nil {
		return fmt.Errorf("scan recurring tasks: %w", err)
	}
	if len(due) == 0 {
		return nil
	}
	j.logger.Info("processing recurring tasks", zap.Int("count", len(due)))

	for _, template := range due {
		if err := j.processTemplate(ctx, template); err != nil {
			j.logger.Error("recurring task skipped",
				zap.Int64("task_id", template.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (j *RecurrenceJob) processTemplate(ctx context.Context, template dom.Task) error {
	if _, err := j.tasks.Create(ctx, occurrenceFrom(template)); err != nil {
		return fmt.Errorf("create occurrence: %w", err)
	}

	next, ok := NextDueDate(*template.NextDueDate, template.RecurrenceType)
	if !ok {
		// Malformed recurrence type: demote to a plain task so the
		// template is never scanned again.
		template.IsRecurring = false
		j.logger.Warn("unrecognized recurrence type, template demoted",
			zap.Int64("task_id", template.ID),
			zap.String("recurrence_type", template.RecurrenceType),
		)
	} else {
		template.NextDueDate = &next
	}
	if _, err := j.tasks.Update(ctx, template); err != nil {
		return fmt.Errorf("reschedule template: %w", err)
	}

	if j.stats != nil {
		_ = j.stats.Invalidate(ctx, template.UserID)
	}
	return nil
}

// occurrenceFrom copies template fields into a fresh one-off task. The
// occurrence's deadline is the template's due date, and it carries no
// recurrence fields or subtasks of its own.
func occurrenceFrom(template dom.Task) dom.Task {
	deadline := *template.NextDueDate
	return dom.Task{
		UserID:      template.UserID,
		Title:       template.Title,
		Description: template.Description,
		Category:    template.Category,
		Priority:    template.Priority,
		Deadline:    &deadline,
	}
}

// NextDueDate advances a schedule cursor by one recurrence unit. ok is false
// for unrecognized types. Month arithmetic uses time.AddDate, which
// normalizes day-of-month overflow (Jan 31 + 1 month = Mar 2 or Mar 3).
func NextDueDate(from time.Time, recurrenceType string) (next time.Time, ok bool) {
	switch recurrenceType {
	case dom.RecurrenceDaily:
		return from.AddDate(0, 0, 1), true
	case dom.RecurrenceWeekly:
		return from.AddDate(0, 0, 7), true
	case dom.RecurrenceMonthly:
		return from.AddDate(0, 1, 0), true
	default:
		return time.Time{}, false
	}
}
