package services

import (
	"sort"
	"time"

	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/pkg/errs"
)

// PriceCalculator is a domain service resolving the effective rental price of
// a toy from its stored base rate and a set of prioritized pricing rules.
//
// Business rules:
//   - rules apply in descending priority; at equal priority, non-default
//     rules apply before defaults, then alphabetically by name
//   - BASE_PRICE replaces the running price; a default BASE_PRICE rule is a
//     fallback and is skipped when the toy carries its own positive rate
//   - DISCOUNT subtracts a percentage of the running price, or a flat amount
//     when no percentage is set; SURCHARGE adds the same way
//   - SEASONAL and BULK rules are carried in the model but not acted on
//   - the final price never drops below zero
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate resolves the price of renting quantity units of the toy at the
// given granularity, applying every matching rule against a running price.
// The rules slice may contain rules for other toys or granularities; they
// are filtered out here.
func (c PriceCalculator) Calculate(
	t *toy.Toy,
	pricingType pricing.Type,
	rules []*pricing.Rule,
	quantity int,
	at time.Time,
) (pricing.Calculation, error) {
	if err := t.Validate(); err != nil {
		return pricing.Calculation{}, err
	}
	if err := pricingType.Validate(); err != nil {
		return pricing.Calculation{}, err
	}
	if quantity < 1 {
		return pricing.Calculation{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}

	basePrice := baseRate(t, pricingType)

	candidates := make([]*pricing.Rule, 0, len(rules))
	for _, rule := range rules {
		if rule == nil || rule.Validate() != nil {
			continue
		}
		if rule.PricingType() != pricingType || !rule.AppliesToToy(t.ID()) {
			continue
		}
		if !rule.AppliesTo(quantity, at) {
			continue
		}
		candidates = append(candidates, rule)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority() != b.Priority() {
			return a.Priority() > b.Priority()
		}
		if a.IsDefault() != b.IsDefault() {
			return !a.IsDefault()
		}
		return a.Name() < b.Name()
	})

	runningPrice := basePrice
	totalDiscount := 0.0
	appliedRuleNames := make([]string, 0, len(candidates))

	for _, rule := range candidates {
		// Windows cannot shift mid-resolution, but the applicability check
		// stays here so every applied rule was verified at apply time.
		if !rule.AppliesTo(quantity, at) {
			continue
		}

		switch rule.RuleType() {
		case pricing.RuleTypeBasePrice:
			if rule.IsDefault() && basePrice > 0 {
				continue
			}
			if rule.Price() == nil {
				continue
			}
			runningPrice = *rule.Price()
		case pricing.RuleTypeDiscount:
			delta := adjustment(rule, runningPrice)
			runningPrice -= delta
			totalDiscount += delta
		case pricing.RuleTypeSurcharge:
			runningPrice += adjustment(rule, runningPrice)
		default:
			continue
		}

		appliedRuleNames = append(appliedRuleNames, rule.Name())
	}

	if runningPrice < 0 {
		runningPrice = 0
	}

	discountPercentage := 0.0
	if basePrice > 0 {
		discountPercentage = totalDiscount / basePrice
	}

	return pricing.Calculation{
		BasePrice:          basePrice,
		FinalPrice:         runningPrice,
		TotalDiscount:      totalDiscount,
		DiscountPercentage: discountPercentage,
		AppliedRuleNames:   appliedRuleNames,
		PricingType:        pricingType,
	}, nil
}

func baseRate(t *toy.Toy, pricingType pricing.Type) float64 {
	switch pricingType {
	case pricing.TypeDaily:
		return t.RentalPriceDaily()
	case pricing.TypeWeekly:
		return t.RentalPriceWeekly()
	case pricing.TypeMonthly:
		return t.RentalPriceMonthly()
	default:
		return 0
	}
}

func adjustment(rule *pricing.Rule, runningPrice float64) float64 {
	if pct := rule.DiscountPercentage(); pct != nil {
		return runningPrice * *pct / 100
	}
	if amount := rule.DiscountAmount(); amount != nil {
		return *amount
	}
	return 0
}
