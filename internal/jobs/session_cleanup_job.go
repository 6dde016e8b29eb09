package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionCleanupSchedule fires at the top of every hour.
const DefaultSessionCleanupSchedule = "0 0 * * * *"

// SessionPurger is satisfied by commands.PurgeSessionsCommandHandler.
type SessionPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeSessionsCommand) (int, error)
}

// SessionCleanupJob drops expired one-time codes, temporary sessions and
// token revocations from the session store.
type SessionCleanupJob struct {
	handler  SessionPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob uses DefaultSessionCleanupSchedule when schedule is empty.
// The schedule is a six-field cron expression with seconds.
func NewSessionCleanupJob(handler SessionPurger, schedule string, logger *slog.Logger) *SessionCleanupJob {
	if schedule == "" {
		schedule = DefaultSessionCleanupSchedule
	}
	return &SessionCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *SessionCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single purge and returns the number of entries removed.
func (j *SessionCleanupJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewPurgeSessionsCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
		return 0
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
		return 0
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired session entries purged", "removed", removed)
	}
	return removed
}

// Stop waits for a running purge to finish.
func (j *SessionCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
