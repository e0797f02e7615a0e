package pricing

import (
	"errors"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"
)

// ErrHistoryIsNotConstructed is returned when a History row was not created
// through NewHistory or RestoreHistory.
var ErrHistoryIsNotConstructed = errors.New("History must be created via NewHistory or RestoreHistory constructor")

// History is one append-only audit row recording an effective price change.
// Rows are never edited or deleted; a correction is a new row.
type History struct {
	id            kernel.UUID
	toyID         kernel.UUID
	ruleID        *kernel.UUID
	pricingType   Type
	oldPrice      float64
	newPrice      float64
	reason        string
	changedBy     string
	effectiveDate time.Time

	isConstructed bool
}

// NewHistory records a price change taking effect now.
func NewHistory(
	id kernel.UUID,
	toyID kernel.UUID,
	ruleID *kernel.UUID,
	pricingType Type,
	oldPrice, newPrice float64,
	reason, changedBy string,
) (*History, error) {
	h := &History{
		ruleID:        ruleID,
		oldPrice:      oldPrice,
		newPrice:      newPrice,
		reason:        reason,
		effectiveDate: time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setToyID(toyID),
		h.setPricingType(pricingType),
		h.setChangedBy(changedBy),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHistory reconstructs an audit row from persistence.
func RestoreHistory(
	id kernel.UUID,
	toyID kernel.UUID,
	ruleID *kernel.UUID,
	pricingType Type,
	oldPrice, newPrice float64,
	reason, changedBy string,
	effectiveDate time.Time,
) (*History, error) {
	h, err := NewHistory(id, toyID, ruleID, pricingType, oldPrice, newPrice, reason, changedBy)
	if err != nil {
		return nil, err
	}

	h.effectiveDate = effectiveDate
	return h, nil
}

// Validate ensures the row was created through a constructor.
func (h *History) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryIsNotConstructed
	}
	return nil
}

// ID returns the row's unique identifier.
func (h *History) ID() kernel.UUID {
	return h.id
}

// ToyID returns the toy whose rate changed.
func (h *History) ToyID() kernel.UUID {
	return h.toyID
}

// RuleID returns the rule that triggered the change, if any.
func (h *History) RuleID() *kernel.UUID {
	return h.ruleID
}

// PricingType returns the granularity of the changed rate.
func (h *History) PricingType() Type {
	return h.pricingType
}

// OldPrice returns the rate before the change.
func (h *History) OldPrice() float64 {
	return h.oldPrice
}

// NewPrice returns the rate after the change.
func (h *History) NewPrice() float64 {
	return h.newPrice
}

// Reason returns the free-form justification supplied by the changer.
func (h *History) Reason() string {
	return h.reason
}

// ChangedBy identifies who made the change.
func (h *History) ChangedBy() string {
	return h.changedBy
}

// EffectiveDate returns when the change took effect.
func (h *History) EffectiveDate() time.Time {
	return h.effectiveDate
}

func (h *History) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *History) setToyID(toyID kernel.UUID) error {
	if err := toyID.Validate(); err != nil {
		return err
	}
	h.toyID = toyID
	return nil
}

func (h *History) setPricingType(pricingType Type) error {
	if err := pricingType.Validate(); err != nil {
		return err
	}
	h.pricingType = pricingType
	return nil
}

func (h *History) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}
	h.changedBy = changedBy
	return nil
}
