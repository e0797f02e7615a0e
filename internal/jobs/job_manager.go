package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockAuditJob    *StockAuditJob
	overdueOrdersJob *OverdueOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, logger *slog.Logger) *JobManager {
	return &JobManager{
		stockAuditJob:    NewStockAuditJob(db, logger),
		overdueOrdersJob: NewOverdueOrdersJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock audit job: %w", err)
	}

	if err := jm.overdueOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stockAuditJob.Stop()
		return fmt.Errorf("failed to start overdue order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
	jm.stockAuditJob.Stop()
}
