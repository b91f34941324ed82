package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// jobTimeout bounds a single run of any scheduled job. A stalled run is
// abandoned and retried on the next tick.
const jobTimeout = 5 * time.Minute

// Job is one schedulable unit of background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler wraps cron-based jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewScheduler(loc *time.Location, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		logger: logger,
	}
}

// Register schedules a job with a standard 5-field cron spec. Each run gets
// its own timeout context; failures are logged, never propagated.
func (s *Scheduler) Register(spec string, job Job) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		started := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("job run failed",
				zap.String("job", job.Name()),
				zap.Duration("elapsed", time.Since(started)),
				zap.Error(err),
			)
			return
		}
		s.logger.Info("job run finished",
			zap.String("job", job.Name()),
			zap.Duration("elapsed", time.Since(started)),
		)
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
