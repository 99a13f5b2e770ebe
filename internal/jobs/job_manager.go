package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	rateProbeJob *RateProbeJob
}

// NewJobManager creates a job manager with every scheduled job wired.
func NewJobManager(ratesHandler RatesQueryHandler, rateProbeSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		rateProbeJob: NewRateProbeJob(ratesHandler, rateProbeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.rateProbeJob.Start(); err != nil {
		return fmt.Errorf("failed to start rate probe job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rateProbeJob.Stop()
}
