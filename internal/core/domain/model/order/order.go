package order

import (
	"errors"
	"fmt"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without lines.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate root of the rental order lifecycle. It exclusively
// owns its Item and Delivery child records and guards every status change
// through the transition table in Status.
//
// Invariants:
//   - at least one item, each referencing a toy by id only
//   - totalAmount equals the sum of the items' locked line totals and never
//     changes when the toys' live rates change
//   - status changes only through ChangeStatus and Cancel
type Order struct {
	id               kernel.UUID
	number           string
	customerID       kernel.UUID
	subscriptionID   *kernel.UUID
	status           Status
	totalAmount      float64
	depositAmount    float64
	deliveryAddress  string
	deliveryCity     string
	deliveryDate     time.Time
	deliveryTimeSlot string
	returnDate       *time.Time
	returnTimeSlot   string
	assignedDriverID *kernel.UUID
	notes            string
	items            []Item
	deliveries       []Delivery

	isConstructed bool
}

// NewOrder creates a confirmed order from validated checkout input.
// The total amount is computed from the items' locked line totals.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	deliveryAddress, deliveryCity string,
	deliveryDate time.Time,
	deliveryTimeSlot string,
	returnDate *time.Time,
	returnTimeSlot string,
	notes string,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:           Confirmed,
		deliveryTimeSlot: deliveryTimeSlot,
		returnDate:       returnDate,
		returnTimeSlot:   returnTimeSlot,
		notes:            notes,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setDeliveryAddress(deliveryAddress, deliveryCity),
		o.setDeliveryDate(deliveryDate),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.totalAmount += item.LineTotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status,
// totals, and children.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	subscriptionID *kernel.UUID,
	status Status,
	totalAmount, depositAmount float64,
	deliveryAddress, deliveryCity string,
	deliveryDate time.Time,
	deliveryTimeSlot string,
	returnDate *time.Time,
	returnTimeSlot string,
	assignedDriverID *kernel.UUID,
	notes string,
	items []Item,
	deliveries []Delivery,
) (*Order, error) {
	o := &Order{
		subscriptionID:   subscriptionID,
		totalAmount:      totalAmount,
		depositAmount:    depositAmount,
		deliveryTimeSlot: deliveryTimeSlot,
		returnDate:       returnDate,
		returnTimeSlot:   returnTimeSlot,
		assignedDriverID: assignedDriverID,
		notes:            notes,
		deliveries:       deliveries,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setDeliveryAddress(deliveryAddress, deliveryCity),
		o.setDeliveryDate(deliveryDate),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the generated order number, e.g. "CMD-2026-00042".
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the id of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SubscriptionID returns the optional subscription reference.
func (o *Order) SubscriptionID() *kernel.UUID {
	return o.subscriptionID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of the items' locked line totals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DepositAmount returns the security deposit held for the order.
func (o *Order) DepositAmount() float64 {
	return o.depositAmount
}

// DeliveryAddress returns the street address for the outbound trip.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryCity returns the destination city.
func (o *Order) DeliveryCity() string {
	return o.deliveryCity
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// DeliveryTimeSlot returns the requested delivery window, if any.
func (o *Order) DeliveryTimeSlot() string {
	return o.deliveryTimeSlot
}

// ReturnDate returns the planned return date, if any.
func (o *Order) ReturnDate() *time.Time {
	return o.returnDate
}

// ReturnTimeSlot returns the planned return window, if any.
func (o *Order) ReturnTimeSlot() string {
	return o.returnTimeSlot
}

// AssignedDriverID returns the driver slot downstream collaborators act on.
func (o *Order) AssignedDriverID() *kernel.UUID {
	return o.assignedDriverID
}

// Notes returns free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order's lines.
func (o *Order) Items() []Item {
	return o.items
}

// Deliveries returns the order's scheduled trips.
func (o *Order) Deliveries() []Delivery {
	return o.deliveries
}

// SetDeposit records the security deposit held for the order.
func (o *Order) SetDeposit(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("depositAmount", fmt.Errorf("%f is negative", amount))
	}
	o.depositAmount = amount
	return nil
}

// AddDelivery appends a scheduled trip to the order.
func (o *Order) AddDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.deliveries = append(o.deliveries, delivery)
	return nil
}

// AssignDriver records the driver who will handle the order's trips.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.assignedDriverID = &driverID
	return nil
}

// ChangeStatus advances the order to next following the transition table.
// A Cancelled target is routed through Cancel so the trip cleanup happens
// in one place.
func (o *Order) ChangeStatus(next Status) error {
	if next == Cancelled {
		return o.Cancel()
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel aborts the order. Only Draft and Confirmed orders can be cancelled;
// any pending trips are marked cancelled as well.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	for i := range o.deliveries {
		o.deliveries[i].cancel()
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryAddress(address, city string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if city == "" {
		return errs.NewValueIsRequiredError("deliveryCity")
	}
	o.deliveryAddress = address
	o.deliveryCity = city
	return nil
}

func (o *Order) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = date
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
