package queries

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/pkg/errs"
	"toyrental/internal/pkg/guard"
)

var ErrCalculatePriceQueryIsNotConstructed = errors.New(
	"CalculatePriceQuery must be created via NewCalculatePriceQuery constructor",
)

// CalculatePriceQuery computes the effective rental price for a toy under
// the currently active pricing rules. The calculation is read-only and
// writes no history.
type CalculatePriceQuery struct {
	toyID       kernel.UUID
	pricingType pricing.Type
	quantity    int
	at          time.Time

	guard guard.ConstructorGuard
}

// NewCalculatePriceQuery creates a price calculation query. A zero quantity
// defaults to one unit; a zero time defaults to now.
func NewCalculatePriceQuery(toyID kernel.UUID, pricingType pricing.Type, quantity int, at time.Time) (CalculatePriceQuery, error) {
	if err := toyID.Validate(); err != nil {
		return CalculatePriceQuery{}, err
	}
	if err := pricingType.Validate(); err != nil {
		return CalculatePriceQuery{}, err
	}
	if quantity < 0 {
		return CalculatePriceQuery{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}

	if quantity == 0 {
		quantity = 1
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	return CalculatePriceQuery{
		toyID:       toyID,
		pricingType: pricingType,
		quantity:    quantity,
		at:          at,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

// ToyID returns the toy the price is calculated for.
func (q CalculatePriceQuery) ToyID() kernel.UUID {
	return q.toyID
}

// PricingType returns the rental granularity.
func (q CalculatePriceQuery) PricingType() pricing.Type {
	return q.pricingType
}

// Quantity returns the number of units being rented.
func (q CalculatePriceQuery) Quantity() int {
	return q.quantity
}

// At returns the moment the rule validity windows are evaluated against.
func (q CalculatePriceQuery) At() time.Time {
	return q.at
}

// CalculatePriceQueryResponse carries the calculation breakdown.
type CalculatePriceQueryResponse = pricing.Calculation
