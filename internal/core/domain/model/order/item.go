package order

import (
	"errors"
	"fmt"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a value-like child record of an Order describing one rented toy
// line. The toy reference is a non-owning lookup by id. The rental price and
// duration are locked in at order creation and never recomputed from the
// toy's live rates.
type Item struct {
	toyID              kernel.UUID
	quantity           int
	rentalPrice        float64
	rentalDurationDays int
	conditionBefore    toy.Condition
	conditionAfter     toy.Condition

	isConstructed bool
}

// NewItem creates an order line with the price snapshot taken at checkout.
// conditionBefore captures the toy's condition at reservation time.
func NewItem(toyID kernel.UUID, quantity int, rentalPrice float64, rentalDurationDays int, conditionBefore toy.Condition) (Item, error) {
	item := Item{
		conditionBefore: conditionBefore,
		isConstructed:   true,
	}

	if err := errors.Join(
		item.setToyID(toyID),
		item.setQuantity(quantity),
		item.setRentalPrice(rentalPrice),
		item.setRentalDurationDays(rentalDurationDays),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(
	toyID kernel.UUID,
	quantity int,
	rentalPrice float64,
	rentalDurationDays int,
	conditionBefore, conditionAfter toy.Condition,
) (Item, error) {
	item, err := NewItem(toyID, quantity, rentalPrice, rentalDurationDays, conditionBefore)
	if err != nil {
		return Item{}, err
	}

	item.conditionAfter = conditionAfter
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ToyID returns the id of the rented toy.
func (i Item) ToyID() kernel.UUID {
	return i.toyID
}

// Quantity returns the number of units rented on this line.
func (i Item) Quantity() int {
	return i.quantity
}

// RentalPrice returns the per-unit price locked in at creation.
func (i Item) RentalPrice() float64 {
	return i.rentalPrice
}

// RentalDurationDays returns the rental period length in days.
func (i Item) RentalDurationDays() int {
	return i.rentalDurationDays
}

// ConditionBefore returns the toy's condition when the order was created.
func (i Item) ConditionBefore() toy.Condition {
	return i.conditionBefore
}

// ConditionAfter returns the condition recorded at return, if any.
func (i Item) ConditionAfter() toy.Condition {
	return i.conditionAfter
}

// LineTotal returns the locked price multiplied by the quantity.
func (i Item) LineTotal() float64 {
	return i.rentalPrice * float64(i.quantity)
}

func (i *Item) setToyID(toyID kernel.UUID) error {
	if err := toyID.Validate(); err != nil {
		return err
	}
	i.toyID = toyID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setRentalPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rentalPrice", fmt.Errorf("%f is negative", price))
	}
	i.rentalPrice = price
	return nil
}

func (i *Item) setRentalDurationDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rentalDurationDays", fmt.Errorf("%d is not greater than 0", days))
	}
	i.rentalDurationDays = days
	return nil
}
