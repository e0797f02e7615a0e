package queries

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/pkg/guard"
)

var ErrGetPriceHistoryQueryIsNotConstructed = errors.New(
	"GetPriceHistoryQuery must be created via NewGetPriceHistoryQuery constructor",
)

// GetPriceHistoryQuery retrieves the price audit trail for a toy, newest
// change first, optionally filtered by rental granularity.
type GetPriceHistoryQuery struct {
	toyID       kernel.UUID
	pricingType *pricing.Type

	guard guard.ConstructorGuard
}

// NewGetPriceHistoryQuery creates a price history query.
func NewGetPriceHistoryQuery(toyID kernel.UUID, pricingType *pricing.Type) (GetPriceHistoryQuery, error) {
	if err := toyID.Validate(); err != nil {
		return GetPriceHistoryQuery{}, err
	}
	if pricingType != nil {
		if err := pricingType.Validate(); err != nil {
			return GetPriceHistoryQuery{}, err
		}
	}
	return GetPriceHistoryQuery{
		toyID:       toyID,
		pricingType: pricingType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriceHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceHistoryQueryIsNotConstructed)
}

// ToyID returns the toy whose audit trail is requested.
func (q GetPriceHistoryQuery) ToyID() kernel.UUID {
	return q.toyID
}

// PricingType returns the granularity filter, if set.
func (q GetPriceHistoryQuery) PricingType() *pricing.Type {
	return q.pricingType
}

// PriceChangeResponse represents one recorded price change.
type PriceChangeResponse struct {
	ID            kernel.UUID
	ToyID         kernel.UUID
	RuleID        *kernel.UUID
	PricingType   string
	OldPrice      float64
	NewPrice      float64
	Reason        string
	ChangedBy     string
	EffectiveDate time.Time
}

// GetPriceHistoryQueryResponse is the audit trail for one toy.
type GetPriceHistoryQueryResponse struct {
	Changes []PriceChangeResponse
}
