package jobs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StockAuditJob periodically scans the toy inventory for counter drift.
// Available quantity must always stay within [0, stock]; a row outside that
// range means a reservation path bypassed the guarded counter updates.
// The job only reports, it never repairs.
type StockAuditJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStockAuditJob creates a job that audits inventory counters once a minute.
func NewStockAuditJob(db *gorm.DB, logger *slog.Logger) *StockAuditJob {
	return &StockAuditJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stock_audit_job"),
	}
}

type stockViolationRow struct {
	ID                uuid.UUID
	Name              string
	StockQuantity     int
	AvailableQuantity int
}

func (j *StockAuditJob) audit(ctx context.Context) ([]stockViolationRow, error) {
	var violations []stockViolationRow
	err := j.db.WithContext(ctx).Raw(
		`SELECT id, name, stock_quantity, available_quantity
		FROM toys
		WHERE available_quantity < 0 OR available_quantity > stock_quantity`,
	).Scan(&violations).Error
	if err != nil {
		return nil, err
	}
	return violations, nil
}

// Start begins the stock audit job.
func (j *StockAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		violations, err := j.audit(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stock audit failed", "error", err)
			return
		}

		for _, violation := range violations {
			j.logger.ErrorContext(ctx, "Inventory counter out of range",
				"toy_id", violation.ID,
				"toy_name", violation.Name,
				"stock_quantity", violation.StockQuantity,
				"available_quantity", violation.AvailableQuantity,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock audit job started (running every minute)")
	return nil
}

// Stop stops the stock audit job.
func (j *StockAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock audit job stopped")
}
