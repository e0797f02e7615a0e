package commands

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired    = errors.New("at least one order item is required")
	ErrDeliveryAddressIsMissing = errors.New("delivery address and city are required")
	ErrDeliveryDateIsRequired   = errors.New("delivery date is required")
	ErrItemQuantityIsInvalid    = errors.New("item quantity must be greater than 0")
	ErrItemPriceIsInvalid       = errors.New("item rental price must not be negative")
	ErrItemDurationIsInvalid    = errors.New("item rental duration must be greater than 0")
)

// CreateOrderItem is one requested toy line within a checkout. The rental
// price carried here is the quoted price the customer accepted; it is locked
// onto the order item and never recomputed.
type CreateOrderItem struct {
	ToyID              kernel.UUID
	Quantity           int
	RentalPrice        float64
	RentalDurationDays int
}

func (i CreateOrderItem) validate() error {
	if err := i.ToyID.Validate(); err != nil {
		return err
	}
	if i.Quantity <= 0 {
		return ErrItemQuantityIsInvalid
	}
	if i.RentalPrice < 0 {
		return ErrItemPriceIsInvalid
	}
	if i.RentalDurationDays <= 0 {
		return ErrItemDurationIsInvalid
	}
	return nil
}

// CreateOrderCommand represents a checkout request: a customer renting one or
// more toys with a scheduled delivery. The whole request succeeds or fails as
// one unit; no partial reservation is ever observable.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	items            []CreateOrderItem
	deliveryAddress  string
	deliveryCity     string
	deliveryDate     time.Time
	deliveryTimeSlot string
	returnDate       *time.Time
	returnTimeSlot   string
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Validates the customer
// id, every item line, and the delivery schedule.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	items []CreateOrderItem,
	deliveryAddress, deliveryCity string,
	deliveryDate time.Time,
	deliveryTimeSlot string,
	returnDate *time.Time,
	returnTimeSlot string,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		deliveryTimeSlot: deliveryTimeSlot,
		returnDate:       returnDate,
		returnTimeSlot:   returnTimeSlot,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
		orderCommand.setDeliveryAddress(deliveryAddress, deliveryCity),
		orderCommand.setDeliveryDate(deliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the renting customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested toy lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// DeliveryAddress returns the delivery street address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryCity returns the delivery city.
func (c CreateOrderCommand) DeliveryCity() string {
	return c.deliveryCity
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// DeliveryTimeSlot returns the requested delivery time slot.
func (c CreateOrderCommand) DeliveryTimeSlot() string {
	return c.deliveryTimeSlot
}

// ReturnDate returns the planned return date, if any.
func (c CreateOrderCommand) ReturnDate() *time.Time {
	return c.returnDate
}

// ReturnTimeSlot returns the planned return time slot.
func (c CreateOrderCommand) ReturnTimeSlot() string {
	return c.returnTimeSlot
}

// Notes returns free-form notes attached to the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address, city string) error {
	if address == "" || city == "" {
		return ErrDeliveryAddressIsMissing
	}

	c.deliveryAddress = address
	c.deliveryCity = city
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.deliveryDate = date
	return nil
}
