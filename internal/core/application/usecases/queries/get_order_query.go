// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and deliveries.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse represents one rented toy line in the read model,
// joined with the toy's display name.
type GetOrderItemResponse struct {
	ToyID              kernel.UUID
	ToyName            string
	Quantity           int
	RentalPrice        float64
	RentalDurationDays int
	ConditionBefore    string
}

// GetOrderDeliveryResponse represents one scheduled trip in the read model.
type GetOrderDeliveryResponse struct {
	ID             kernel.UUID
	Type           string
	Status         string
	ScheduledDate  time.Time
	TimeSlot       string
	RecipientName  string
	RecipientPhone string
}

// GetOrderCustomerResponse is the customer directory snapshot joined into
// the order read model.
type GetOrderCustomerResponse struct {
	Name    string
	Phone   string
	Address string
	City    string
}

// GetOrderQueryResponse represents a complete order in the read model.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	Number           string
	CustomerID       kernel.UUID
	Customer         GetOrderCustomerResponse
	Status           string
	TotalAmount      float64
	DepositAmount    float64
	DeliveryAddress  string
	DeliveryCity     string
	DeliveryDate     time.Time
	DeliveryTimeSlot string
	ReturnDate       *time.Time
	ReturnTimeSlot   string
	Notes            string
	Items            []GetOrderItemResponse
	Deliveries       []GetOrderDeliveryResponse
}
