// Package jobs provides scheduled background tasks for the pizzeria engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CourierAssignmentJob offers the oldest Pending order without a courier to
// the dispatcher on every tick. Orders placed while every courier covering
// their postal code was busy or cooling down are picked up this way.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(assignCourierHandler, "*/10 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field. A tick
// that is still running when the next one is due is skipped.
//
// # Error Handling
//
//   - no waiting order and no available courier are expected and logged at debug level
//   - every other failure is logged as an error; the transaction of that tick is rolled back
package jobs
