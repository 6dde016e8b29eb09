package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sessionCleanupJob *SessionCleanupJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(purger SessionPurger, cleanupSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		sessionCleanupJob: NewSessionCleanupJob(purger, cleanupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start session cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionCleanupJob.Stop()
}
