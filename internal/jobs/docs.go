// Package jobs provides scheduled background tasks for the logistics system.
//
// Jobs run on github.com/robfig/cron/v3 and log through log/slog with a
// component attribute.
//
// # Available Jobs
//
// 1. FleetUtilizationJob - reads the committed load of every vehicle and
// publishes it as gauges. It never changes state.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(fleetJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron expression or a descriptor such
// as "@every 1m". A job run is bounded by its own timeout.
//
// # Error Handling
//
// - A failed run is logged and counted; the next run starts from scratch
// - Failed job starts stop any already running jobs
package jobs
