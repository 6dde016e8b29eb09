// Package jobs provides scheduled background tasks for the parcels service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are driven through JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.DefaultSessionCleanupSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SessionCleanupJob runs hourly and purges expired one-time codes,
// temporary sessions and token revocations. Reads already treat expired
// entries as absent, so the job only bounds memory and key growth.
package jobs
