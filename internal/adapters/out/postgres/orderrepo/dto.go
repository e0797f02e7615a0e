// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/toy"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and deliveries are stored in child tables and loaded together with
// the header.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number           string     `gorm:"uniqueIndex"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	SubscriptionID   *uuid.UUID `gorm:"type:uuid"`
	Status           int        `gorm:"index"`
	TotalAmount      float64
	DepositAmount    float64
	DeliveryAddress  string
	DeliveryCity     string    `gorm:"index"`
	DeliveryDate     time.Time `gorm:"index"`
	DeliveryTimeSlot string
	ReturnDate       *time.Time
	ReturnTimeSlot   string
	AssignedDriverID *uuid.UUID `gorm:"type:uuid"`
	Notes            string

	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Deliveries []DeliveryDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one rented toy line within an order. Lines are
// written once at checkout and never updated; the price columns are the
// locked-in snapshot.
type OrderItemDTO struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	ToyID              uuid.UUID `gorm:"type:uuid;index"`
	Quantity           int
	RentalPrice        float64
	RentalDurationDays int
	ConditionBefore    string
	ConditionAfter     string
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents one scheduled trip attached to an order, with the
// recipient snapshot taken at scheduling time.
type DeliveryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Type           string
	Status         string
	ScheduledDate  time.Time
	TimeSlot       string
	RecipientName  string
	RecipientPhone string
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderCounterDTO holds the per-year sequential counter backing order number
// generation. One row per year, incremented atomically.
type OrderCounterDTO struct {
	Year    int `gorm:"primaryKey"`
	Counter int
}

// TableName specifies the database table name for the order number counter.
func (OrderCounterDTO) TableName() string {
	return "order_counters"
}

// fromDomain converts an order domain aggregate to its database
// representation, including item and delivery children.
func fromDomain(aggregate *order.Order) OrderDTO {
	var subscriptionID *uuid.UUID
	if id := aggregate.SubscriptionID(); id != nil {
		raw := id.Bytes()
		subscriptionID = &raw
	}

	var driverID *uuid.UUID
	if id := aggregate.AssignedDriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:            orderID,
			ToyID:              item.ToyID().Bytes(),
			Quantity:           item.Quantity(),
			RentalPrice:        item.RentalPrice(),
			RentalDurationDays: item.RentalDurationDays(),
			ConditionBefore:    string(item.ConditionBefore()),
			ConditionAfter:     string(item.ConditionAfter()),
		})
	}

	deliveries := make([]DeliveryDTO, 0, len(aggregate.Deliveries()))
	for _, trip := range aggregate.Deliveries() {
		deliveries = append(deliveries, DeliveryDTO{
			ID:             trip.ID().Bytes(),
			OrderID:        orderID,
			Type:           string(trip.Type()),
			Status:         string(trip.Status()),
			ScheduledDate:  trip.ScheduledDate(),
			TimeSlot:       trip.TimeSlot(),
			RecipientName:  trip.RecipientName(),
			RecipientPhone: trip.RecipientPhone(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		Number:           aggregate.Number(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		SubscriptionID:   subscriptionID,
		Status:           int(aggregate.Status()),
		TotalAmount:      aggregate.TotalAmount(),
		DepositAmount:    aggregate.DepositAmount(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		DeliveryCity:     aggregate.DeliveryCity(),
		DeliveryDate:     aggregate.DeliveryDate(),
		DeliveryTimeSlot: aggregate.DeliveryTimeSlot(),
		ReturnDate:       aggregate.ReturnDate(),
		ReturnTimeSlot:   aggregate.ReturnTimeSlot(),
		AssignedDriverID: driverID,
		Notes:            aggregate.Notes(),
		Items:            items,
		Deliveries:       deliveries,
	}
}

// toDomain converts a database DTO to an order domain aggregate, rebuilding
// the complete aggregate with its children using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var subscriptionID *kernel.UUID
	if dto.SubscriptionID != nil {
		sID, subErr := kernel.UUIDFromBytes((*dto.SubscriptionID)[:])
		if subErr != nil {
			return nil, subErr
		}
		subscriptionID = &sID
	}

	var driverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		toyID, itemErr := kernel.UUIDFromBytes(itemDTO.ToyID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			toyID,
			itemDTO.Quantity,
			itemDTO.RentalPrice,
			itemDTO.RentalDurationDays,
			toy.Condition(itemDTO.ConditionBefore),
			toy.Condition(itemDTO.ConditionAfter),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveries := make([]order.Delivery, 0, len(dto.Deliveries))
	for _, tripDTO := range dto.Deliveries {
		tripID, tripErr := kernel.UUIDFromBytes(tripDTO.ID[:])
		if tripErr != nil {
			return nil, tripErr
		}

		trip, tripErr := order.RestoreDelivery(
			tripID,
			order.DeliveryType(tripDTO.Type),
			order.DeliveryStatus(tripDTO.Status),
			tripDTO.ScheduledDate,
			tripDTO.TimeSlot,
			tripDTO.RecipientName,
			tripDTO.RecipientPhone,
		)
		if tripErr != nil {
			return nil, tripErr
		}
		deliveries = append(deliveries, trip)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customerID,
		subscriptionID,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.DepositAmount,
		dto.DeliveryAddress,
		dto.DeliveryCity,
		dto.DeliveryDate,
		dto.DeliveryTimeSlot,
		dto.ReturnDate,
		dto.ReturnTimeSlot,
		driverID,
		dto.Notes,
		items,
		deliveries,
	)
}
