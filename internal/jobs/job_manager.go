package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(assigner CourierAssigner, assignmentSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		courierAssignmentJob: NewCourierAssignmentJob(assigner, assignmentSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.courierAssignmentJob.Stop()
}
