package queries

import (
	"context"
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its children from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderHeaderRow struct {
	ID               uuid.UUID
	Number           string
	CustomerID       uuid.UUID
	Status           int
	TotalAmount      float64
	DepositAmount    float64
	DeliveryAddress  string
	DeliveryCity     string
	DeliveryDate     time.Time
	DeliveryTimeSlot string
	ReturnDate       *time.Time
	ReturnTimeSlot   string
	Notes            string
	CustomerName     string
	CustomerPhone    string
	CustomerAddress  string
	CustomerCity     string
}

type orderItemRow struct {
	ToyID              uuid.UUID
	ToyName            string
	Quantity           int
	RentalPrice        float64
	RentalDurationDays int
	ConditionBefore    string
}

type deliveryRow struct {
	ID             uuid.UUID
	Type           string
	Status         string
	ScheduledDate  time.Time
	TimeSlot       string
	RecipientName  string
	RecipientPhone string
}

// Handle executes the query, returning the order's header, item lines joined
// with toy names, and scheduled trips.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var header orderHeaderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_id,
			o.status,
			o.total_amount,
			o.deposit_amount,
			o.delivery_address,
			o.delivery_city,
			o.delivery_date,
			o.delivery_time_slot,
			o.return_date,
			o.return_time_slot,
			o.notes,
			COALESCE(c.name, '') AS customer_name,
			COALESCE(c.phone, '') AS customer_phone,
			COALESCE(c.address, '') AS customer_address,
			COALESCE(c.city, '') AS customer_city
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).First(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	var itemRows []orderItemRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			oi.toy_id,
			t.name AS toy_name,
			oi.quantity,
			oi.rental_price,
			oi.rental_duration_days,
			oi.condition_before
		FROM order_items oi
		JOIN toys t ON t.id = oi.toy_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, query.OrderID().Bytes()).Scan(&itemRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var tripRows []deliveryRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			status,
			scheduled_date,
			time_slot,
			recipient_name,
			recipient_phone
		FROM deliveries
		WHERE order_id = ?
		ORDER BY scheduled_date
	`, query.OrderID().Bytes()).Scan(&tripRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return buildGetOrderResponse(header, itemRows, tripRows)
}

func buildGetOrderResponse(
	header orderHeaderRow,
	itemRows []orderItemRow,
	tripRows []deliveryRow,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(header.CustomerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]GetOrderItemResponse, 0, len(itemRows))
	for _, row := range itemRows {
		toyID, idErr := kernel.UUIDFromBytes(row.ToyID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		items = append(items, GetOrderItemResponse{
			ToyID:              toyID,
			ToyName:            row.ToyName,
			Quantity:           row.Quantity,
			RentalPrice:        row.RentalPrice,
			RentalDurationDays: row.RentalDurationDays,
			ConditionBefore:    row.ConditionBefore,
		})
	}

	deliveries := make([]GetOrderDeliveryResponse, 0, len(tripRows))
	for _, row := range tripRows {
		tripID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		deliveries = append(deliveries, GetOrderDeliveryResponse{
			ID:             tripID,
			Type:           row.Type,
			Status:         row.Status,
			ScheduledDate:  row.ScheduledDate,
			TimeSlot:       row.TimeSlot,
			RecipientName:  row.RecipientName,
			RecipientPhone: row.RecipientPhone,
		})
	}

	response := GetOrderQueryResponse{
		ID:         orderID,
		Number:     header.Number,
		CustomerID: customerID,
		Customer: GetOrderCustomerResponse{
			Name:    header.CustomerName,
			Phone:   header.CustomerPhone,
			Address: header.CustomerAddress,
			City:    header.CustomerCity,
		},
		Status:           order.Status(header.Status).String(),
		TotalAmount:      header.TotalAmount,
		DepositAmount:    header.DepositAmount,
		DeliveryAddress:  header.DeliveryAddress,
		DeliveryCity:     header.DeliveryCity,
		DeliveryDate:     header.DeliveryDate,
		DeliveryTimeSlot: header.DeliveryTimeSlot,
		ReturnTimeSlot:   header.ReturnTimeSlot,
		Notes:            header.Notes,
		Items:            items,
		Deliveries:       deliveries,
	}
	if header.ReturnDate != nil {
		returned := *header.ReturnDate
		response.ReturnDate = &returned
	}

	return response, nil
}
