package order

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// DeliveryType distinguishes the outbound trip from the return pickup.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypeReturn   DeliveryType = "return"
)

// DeliveryStatus is the state of a single scheduled trip. This core creates
// and cancels trips; route execution belongs to downstream collaborators.
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "SCHEDULED"
	DeliveryStatusInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusCompleted DeliveryStatus = "COMPLETED"
	DeliveryStatusCancelled DeliveryStatus = "CANCELLED"
)

// Delivery is a value-like child record of an Order describing one scheduled
// trip, with a snapshot of the recipient taken at scheduling time.
type Delivery struct {
	id             kernel.UUID
	deliveryType   DeliveryType
	status         DeliveryStatus
	scheduledDate  time.Time
	timeSlot       string
	recipientName  string
	recipientPhone string

	isConstructed bool
}

// NewDelivery schedules a trip for an order. The recipient name and phone are
// snapshotted so later customer-directory edits do not alter past orders.
func NewDelivery(
	id kernel.UUID,
	deliveryType DeliveryType,
	scheduledDate time.Time,
	timeSlot string,
	recipientName, recipientPhone string,
) (Delivery, error) {
	d := Delivery{
		status:         DeliveryStatusScheduled,
		timeSlot:       timeSlot,
		recipientName:  recipientName,
		recipientPhone: recipientPhone,
		isConstructed:  true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setType(deliveryType),
		d.setScheduledDate(scheduledDate),
	); err != nil {
		return Delivery{}, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a trip from persistence.
func RestoreDelivery(
	id kernel.UUID,
	deliveryType DeliveryType,
	status DeliveryStatus,
	scheduledDate time.Time,
	timeSlot string,
	recipientName, recipientPhone string,
) (Delivery, error) {
	d, err := NewDelivery(id, deliveryType, scheduledDate, timeSlot, recipientName, recipientPhone)
	if err != nil {
		return Delivery{}, err
	}

	switch status {
	case DeliveryStatusScheduled, DeliveryStatusInTransit, DeliveryStatusCompleted, DeliveryStatusCancelled:
		d.status = status
	default:
		return Delivery{}, errs.NewValueIsInvalidError("delivery status")
	}

	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d Delivery) Validate() error {
	if !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the trip's unique identifier.
func (d Delivery) ID() kernel.UUID {
	return d.id
}

// Type returns whether this is the outbound delivery or the return pickup.
func (d Delivery) Type() DeliveryType {
	return d.deliveryType
}

// Status returns the trip's current state.
func (d Delivery) Status() DeliveryStatus {
	return d.status
}

// ScheduledDate returns the date the trip is planned for.
func (d Delivery) ScheduledDate() time.Time {
	return d.scheduledDate
}

// TimeSlot returns the requested time window, if any.
func (d Delivery) TimeSlot() string {
	return d.timeSlot
}

// RecipientName returns the snapshotted recipient name.
func (d Delivery) RecipientName() string {
	return d.recipientName
}

// RecipientPhone returns the snapshotted recipient phone number.
func (d Delivery) RecipientPhone() string {
	return d.recipientPhone
}

// cancel marks a not-yet-completed trip as cancelled. Completed trips are
// left untouched.
func (d *Delivery) cancel() {
	if d.status == DeliveryStatusScheduled || d.status == DeliveryStatusInTransit {
		d.status = DeliveryStatusCancelled
	}
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setType(deliveryType DeliveryType) error {
	if deliveryType != DeliveryTypeDelivery && deliveryType != DeliveryTypeReturn {
		return errs.NewValueIsInvalidError("delivery type")
	}
	d.deliveryType = deliveryType
	return nil
}

func (d *Delivery) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	d.scheduledDate = date
	return nil
}
