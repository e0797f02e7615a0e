package pricing

import (
	"errors"
	"fmt"
	"time"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"
)

// ErrRuleIsNotConstructed is returned when a Rule was not created through
// NewRule or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule constructor")

// Type is the pricing granularity a rate or rule applies to.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

// Validate checks that the granularity is one of the defined values.
func (t Type) Validate() error {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("pricingType", fmt.Errorf("%q is not a valid pricing type", string(t)))
	}
}

// RuleType classifies how a rule acts on the running price.
type RuleType string

const (
	// RuleTypeBasePrice replaces the running price with the rule's fixed price.
	RuleTypeBasePrice RuleType = "BASE_PRICE"

	// RuleTypeDiscount subtracts a percentage of the running price, or a
	// flat amount when no percentage is set.
	RuleTypeDiscount RuleType = "DISCOUNT"

	// RuleTypeSurcharge adds a percentage of the running price, or a flat
	// amount when no percentage is set.
	RuleTypeSurcharge RuleType = "SURCHARGE"

	// RuleTypeSeasonal and RuleTypeBulk are modeled refinements that the
	// calculation engine does not act on yet.
	RuleTypeSeasonal RuleType = "SEASONAL"
	RuleTypeBulk     RuleType = "BULK"
)

// Validate checks that the rule type is one of the defined values.
func (rt RuleType) Validate() error {
	switch rt {
	case RuleTypeBasePrice, RuleTypeDiscount, RuleTypeSurcharge, RuleTypeSeasonal, RuleTypeBulk:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("ruleType", fmt.Errorf("%q is not a valid rule type", string(rt)))
	}
}

// Rule is a named, prioritized price adjustment. A rule is scoped to one toy
// or global (nil toyID), optionally bounded by a validity window and a
// quantity window, and applies only to one pricing granularity.
type Rule struct {
	id                 kernel.UUID
	name               string
	ruleType           RuleType
	pricingType        Type
	price              *float64
	discountPercentage *float64
	discountAmount     *float64
	minQuantity        *int
	maxQuantity        *int
	validFrom          *time.Time
	validUntil         *time.Time
	toyID              *kernel.UUID
	priority           int
	isDefault          bool
	isActive           bool

	isConstructed bool
}

// NewRule creates an active pricing rule.
func NewRule(
	id kernel.UUID,
	name string,
	ruleType RuleType,
	pricingType Type,
	price, discountPercentage, discountAmount *float64,
	minQuantity, maxQuantity *int,
	validFrom, validUntil *time.Time,
	toyID *kernel.UUID,
	priority int,
	isDefault bool,
) (*Rule, error) {
	r := &Rule{
		price:              price,
		discountPercentage: discountPercentage,
		discountAmount:     discountAmount,
		minQuantity:        minQuantity,
		maxQuantity:        maxQuantity,
		validFrom:          validFrom,
		validUntil:         validUntil,
		toyID:              toyID,
		priority:           priority,
		isDefault:          isDefault,
		isActive:           true,
		isConstructed:      true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setRuleType(ruleType),
		r.setPricingType(pricingType),
		r.validateAmounts(),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRule reconstructs a rule from persistence, including inactive rules.
func RestoreRule(
	id kernel.UUID,
	name string,
	ruleType RuleType,
	pricingType Type,
	price, discountPercentage, discountAmount *float64,
	minQuantity, maxQuantity *int,
	validFrom, validUntil *time.Time,
	toyID *kernel.UUID,
	priority int,
	isDefault, isActive bool,
) (*Rule, error) {
	r, err := NewRule(id, name, ruleType, pricingType,
		price, discountPercentage, discountAmount,
		minQuantity, maxQuantity, validFrom, validUntil,
		toyID, priority, isDefault)
	if err != nil {
		return nil, err
	}

	r.isActive = isActive
	return r, nil
}

// Validate ensures the rule was created through a constructor.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// Name returns the rule's display name, reported in calculation results.
func (r *Rule) Name() string {
	return r.name
}

// RuleType returns how the rule acts on the running price.
func (r *Rule) RuleType() RuleType {
	return r.ruleType
}

// PricingType returns the granularity the rule applies to.
func (r *Rule) PricingType() Type {
	return r.pricingType
}

// Price returns the fixed price for BASE_PRICE rules, if set.
func (r *Rule) Price() *float64 {
	return r.price
}

// DiscountPercentage returns the percentage adjustment, if set.
func (r *Rule) DiscountPercentage() *float64 {
	return r.discountPercentage
}

// DiscountAmount returns the flat adjustment, if set.
func (r *Rule) DiscountAmount() *float64 {
	return r.discountAmount
}

// MinQuantity returns the lower bound of the quantity window, if set.
func (r *Rule) MinQuantity() *int {
	return r.minQuantity
}

// MaxQuantity returns the upper bound of the quantity window, if set.
func (r *Rule) MaxQuantity() *int {
	return r.maxQuantity
}

// ValidFrom returns the start of the validity window, if set.
func (r *Rule) ValidFrom() *time.Time {
	return r.validFrom
}

// ValidUntil returns the end of the validity window, if set.
func (r *Rule) ValidUntil() *time.Time {
	return r.validUntil
}

// ToyID returns the scoped toy id, or nil for a global rule.
func (r *Rule) ToyID() *kernel.UUID {
	return r.toyID
}

// Priority returns the rule's precedence. Higher priorities apply first.
func (r *Rule) Priority() int {
	return r.priority
}

// IsDefault reports whether the rule is a fallback default.
func (r *Rule) IsDefault() bool {
	return r.isDefault
}

// IsActive reports whether the rule participates in calculations.
func (r *Rule) IsActive() bool {
	return r.isActive
}

// AppliesTo reports whether the rule's windows admit the given quantity and
// reference date. Unset window bounds are unbounded.
func (r *Rule) AppliesTo(quantity int, at time.Time) bool {
	if !r.isActive {
		return false
	}
	if r.minQuantity != nil && quantity < *r.minQuantity {
		return false
	}
	if r.maxQuantity != nil && quantity > *r.maxQuantity {
		return false
	}
	if r.validFrom != nil && at.Before(*r.validFrom) {
		return false
	}
	if r.validUntil != nil && at.After(*r.validUntil) {
		return false
	}
	return true
}

// AppliesToToy reports whether the rule is global or scoped to the given toy.
func (r *Rule) AppliesToToy(toyID kernel.UUID) bool {
	return r.toyID == nil || r.toyID.IsEqual(toyID)
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("rule name")
	}
	r.name = name
	return nil
}

func (r *Rule) setRuleType(ruleType RuleType) error {
	if err := ruleType.Validate(); err != nil {
		return err
	}
	r.ruleType = ruleType
	return nil
}

func (r *Rule) setPricingType(pricingType Type) error {
	if err := pricingType.Validate(); err != nil {
		return err
	}
	r.pricingType = pricingType
	return nil
}

func (r *Rule) validateAmounts() error {
	if r.price != nil && *r.price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", *r.price))
	}
	if r.discountPercentage != nil && (*r.discountPercentage < 0 || *r.discountPercentage > 100) {
		return errs.NewValueIsOutOfRangeError("discountPercentage", *r.discountPercentage, 0, 100)
	}
	if r.discountAmount != nil && *r.discountAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discountAmount", fmt.Errorf("%f is negative", *r.discountAmount))
	}
	if r.minQuantity != nil && r.maxQuantity != nil && *r.minQuantity > *r.maxQuantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity window",
			fmt.Errorf("min %d is greater than max %d", *r.minQuantity, *r.maxQuantity))
	}
	if r.validFrom != nil && r.validUntil != nil && r.validFrom.After(*r.validUntil) {
		return errs.NewValueIsInvalidErrorWithCause("validity window",
			fmt.Errorf("validFrom %s is after validUntil %s", r.validFrom, r.validUntil))
	}
	return nil
}
