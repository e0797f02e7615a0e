package jobs

import (
	"context"
	"log/slog"
	"time"

	"toyrental/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OverdueOrdersJob reports orders whose return date has passed while the
// toys are still out with the customer. Operations follow up with the
// customer manually; the job never changes order state itself.
type OverdueOrdersJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOverdueOrdersJob creates a job that checks for overdue returns hourly.
func NewOverdueOrdersJob(db *gorm.DB, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_orders_job"),
	}
}

type overdueOrderRow struct {
	ID         uuid.UUID
	Number     string
	CustomerID uuid.UUID
	ReturnDate time.Time
	Status     int
}

func (j *OverdueOrdersJob) findOverdue(ctx context.Context, now time.Time) ([]overdueOrderRow, error) {
	var overdue []overdueOrderRow
	err := j.db.WithContext(ctx).Raw(
		`SELECT id, number, customer_id, return_date, status
		FROM orders
		WHERE return_date IS NOT NULL AND return_date < ? AND status IN (?, ?)`,
		now, int(order.Delivered), int(order.Returning),
	).Scan(&overdue).Error
	if err != nil {
		return nil, err
	}
	return overdue, nil
}

// Start begins the overdue order check.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		overdue, err := j.findOverdue(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue order check failed", "error", err)
			return
		}

		for _, row := range overdue {
			j.logger.WarnContext(ctx, "Order past its return date",
				"order_id", row.ID,
				"order_number", row.Number,
				"customer_id", row.CustomerID,
				"return_date", row.ReturnDate,
				"status", order.Status(row.Status).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order job started (running hourly)")
	return nil
}

// Stop stops the overdue order check.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order job stopped")
}
