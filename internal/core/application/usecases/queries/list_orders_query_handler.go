package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
)

// ListOrdersQueryHandler pages through order headers with optional filters.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler over the given database.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID           uuid.UUID
	Number       string
	CustomerID   uuid.UUID
	Status       int
	TotalAmount  float64
	DeliveryCity string
	DeliveryDate time.Time
}

// Handle returns the requested page of orders, newest delivery date first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	conds := []string{"1=1"}
	args := make([]any, 0, 5)
	if query.CustomerID() != nil {
		conds = append(conds, "customer_id = ?")
		args = append(args, query.CustomerID().Bytes())
	}
	if query.Status() != nil {
		conds = append(conds, "status = ?")
		args = append(args, int(*query.Status()))
	}
	if query.City() != "" {
		conds = append(conds, "delivery_city = ?")
		args = append(args, query.City())
	}
	if query.DateFrom() != nil {
		conds = append(conds, "delivery_date >= ?")
		args = append(args, *query.DateFrom())
	}
	if query.DateTo() != nil {
		conds = append(conds, "delivery_date <= ?")
		args = append(args, *query.DateTo())
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countSQL := "SELECT count(*) FROM orders WHERE " + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var rows []orderSummaryRow
	pageSQL := `SELECT id, number, customer_id, status, total_amount, delivery_city, delivery_date
		FROM orders WHERE ` + where + `
		ORDER BY delivery_date DESC, number DESC
		LIMIT ? OFFSET ?`
	pageArgs := append(args, query.Limit(), (query.Page()-1)*query.Limit())
	if err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Scan(&rows).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	response := ListOrdersQueryResponse{
		Orders: make([]OrderSummaryResponse, 0, len(rows)),
		Total:  total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	}
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		response.Orders = append(response.Orders, OrderSummaryResponse{
			ID:           id,
			Number:       row.Number,
			CustomerID:   customerID,
			Status:       order.Status(row.Status).String(),
			TotalAmount:  row.TotalAmount,
			DeliveryCity: row.DeliveryCity,
			DeliveryDate: row.DeliveryDate,
		})
	}
	return response, nil
}
