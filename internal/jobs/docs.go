// Package jobs provides scheduled background tasks for the cargo tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. CargoInspectionJob - Runs every minute to recompute delivery snapshots
// and raise misdirection and arrival notifications
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(inspectCargoHandler, cargoRepository, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The inspection sweep logs failures per cargo and keeps going; one bad
// cargo must not block the rest of the sweep
// - Failed job starts will stop any already running jobs
package jobs
