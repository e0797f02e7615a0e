package toy

import (
	"errors"
	"fmt"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"
)

var (
	// ErrToyIsNotConstructed is returned when a Toy instance was not created
	// through NewToy or RestoreToy.
	ErrToyIsNotConstructed = errors.New("Toy must be created via NewToy or RestoreToy constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than are currently available. Callers may retry with a smaller quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Condition describes the physical state of a toy.
type Condition string

const (
	ConditionNew        Condition = "NEW"
	ConditionExcellent  Condition = "EXCELLENT"
	ConditionGood       Condition = "GOOD"
	ConditionAcceptable Condition = "ACCEPTABLE"
)

// Toy is the aggregate root of the inventory ledger. It owns the stock and
// availability counters for one rentable toy and maintains the invariant
// 0 <= availableQuantity <= stockQuantity at all times.
//
// Rental rates are stored per granularity (daily/weekly/monthly); a zero rate
// means the toy is not offered at that granularity.
type Toy struct {
	id                 kernel.UUID
	name               string
	rentalPriceDaily   float64
	rentalPriceWeekly  float64
	rentalPriceMonthly float64
	stockQuantity      int
	availableQuantity  int
	timesRented        int
	status             Status
	condition          Condition

	isConstructed bool
}

// NewToy creates a toy with the full stock available and Available status.
func NewToy(id kernel.UUID, name string, daily, weekly, monthly float64, stockQuantity int, condition Condition) (*Toy, error) {
	t := &Toy{
		status:        Available,
		condition:     condition,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setRates(daily, weekly, monthly),
		t.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	t.availableQuantity = stockQuantity
	return t, nil
}

// RestoreToy reconstructs a toy from persistence without resetting counters.
func RestoreToy(
	id kernel.UUID,
	name string,
	daily, weekly, monthly float64,
	stockQuantity, availableQuantity, timesRented int,
	status Status,
	condition Condition,
) (*Toy, error) {
	t := &Toy{
		timesRented:   timesRented,
		condition:     condition,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setRates(daily, weekly, monthly),
		t.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	if availableQuantity < 0 || availableQuantity > stockQuantity {
		return nil, errs.NewValueIsOutOfRangeError("availableQuantity", availableQuantity, 0, stockQuantity)
	}
	t.availableQuantity = availableQuantity

	if err := status.Validate(); err != nil {
		return nil, err
	}
	t.status = status

	return t, nil
}

// Validate ensures the toy was created through a constructor.
func (t *Toy) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrToyIsNotConstructed
	}
	return nil
}

// ID returns the toy's unique identifier.
func (t *Toy) ID() kernel.UUID {
	return t.id
}

// Name returns the toy's display name.
func (t *Toy) Name() string {
	return t.name
}

// RentalPriceDaily returns the daily rental rate (0 if not offered daily).
func (t *Toy) RentalPriceDaily() float64 {
	return t.rentalPriceDaily
}

// RentalPriceWeekly returns the weekly rental rate (0 if not offered weekly).
func (t *Toy) RentalPriceWeekly() float64 {
	return t.rentalPriceWeekly
}

// RentalPriceMonthly returns the monthly rental rate (0 if not offered monthly).
func (t *Toy) RentalPriceMonthly() float64 {
	return t.rentalPriceMonthly
}

// StockQuantity returns the total number of units in the fleet.
func (t *Toy) StockQuantity() int {
	return t.stockQuantity
}

// AvailableQuantity returns the number of units not held by any order.
func (t *Toy) AvailableQuantity() int {
	return t.availableQuantity
}

// TimesRented returns the lifetime number of units rented out.
func (t *Toy) TimesRented() int {
	return t.timesRented
}

// Status returns the current lifecycle status.
func (t *Toy) Status() Status {
	return t.status
}

// Condition returns the toy's physical condition.
func (t *Toy) Condition() Condition {
	return t.condition
}

// CanReserve reports whether qty units are currently available.
func (t *Toy) CanReserve(qty int) bool {
	return qty > 0 && t.availableQuantity >= qty
}

// Reserve holds qty units for an order: decrements availableQuantity and
// increments timesRented. Returns ErrInsufficientStock without mutating
// anything when fewer than qty units are available.
func (t *Toy) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	if t.availableQuantity < qty {
		return fmt.Errorf("%w: toy %s has %d available, %d requested",
			ErrInsufficientStock, t.id, t.availableQuantity, qty)
	}

	t.availableQuantity -= qty
	t.timesRented += qty
	return nil
}

// Release returns qty units to availability, bounded by stockQuantity.
// Used when an order completes.
func (t *Toy) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}

	t.availableQuantity = min(t.availableQuantity+qty, t.stockQuantity)
	return nil
}

// Unreserve reverts a reservation after a cancellation: returns the units to
// availability and takes back the timesRented increment made by Reserve.
func (t *Toy) Unreserve(qty int) error {
	if err := t.Release(qty); err != nil {
		return err
	}

	t.timesRented = max(t.timesRented-qty, 0)
	return nil
}

// ChangeStatus sets the lifecycle status. Toy status transitions are driven
// by the order lifecycle and administrators, so any valid status is accepted.
func (t *Toy) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	return nil
}

// SetDailyRate replaces the daily rental rate.
func (t *Toy) SetDailyRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rentalPriceDaily", fmt.Errorf("%f is negative", rate))
	}
	t.rentalPriceDaily = rate
	return nil
}

// SetWeeklyRate replaces the weekly rental rate.
func (t *Toy) SetWeeklyRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rentalPriceWeekly", fmt.Errorf("%f is negative", rate))
	}
	t.rentalPriceWeekly = rate
	return nil
}

// SetMonthlyRate replaces the monthly rental rate.
func (t *Toy) SetMonthlyRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rentalPriceMonthly", fmt.Errorf("%f is negative", rate))
	}
	t.rentalPriceMonthly = rate
	return nil
}

func (t *Toy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Toy) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Toy) setRates(daily, weekly, monthly float64) error {
	if daily < 0 || weekly < 0 || monthly < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rental rates",
			fmt.Errorf("rates must not be negative: daily=%f weekly=%f monthly=%f", daily, weekly, monthly))
	}
	t.rentalPriceDaily = daily
	t.rentalPriceWeekly = weekly
	t.rentalPriceMonthly = monthly
	return nil
}

func (t *Toy) setStockQuantity(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity", fmt.Errorf("%d is negative", stock))
	}
	t.stockQuantity = stock
	return nil
}
