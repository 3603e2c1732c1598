package jobs

import (
	"fmt"
)

// JobManager starts and stops the scheduled jobs of the service.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
}

func NewJobManager(overdueOrdersJob *OverdueOrdersJob) *JobManager {
	return &JobManager{overdueOrdersJob: overdueOrdersJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
}
