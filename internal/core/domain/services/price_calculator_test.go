package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/core/domain/services"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func newTestToy(t *testing.T, daily, weekly, monthly float64) *toy.Toy {
	t.Helper()
	aggregate, err := toy.NewToy(kernel.NewUUID(), "wooden train set", daily, weekly, monthly, 5, toy.ConditionExcellent)
	require.NoError(t, err)
	return aggregate
}

func mustRule(
	t *testing.T,
	name string,
	ruleType pricing.RuleType,
	pricingType pricing.Type,
	price, pct, amount *float64,
	toyID *kernel.UUID,
	priority int,
	isDefault bool,
) *pricing.Rule {
	t.Helper()
	rule, err := pricing.NewRule(kernel.NewUUID(), name, ruleType, pricingType,
		price, pct, amount, nil, nil, nil, nil, toyID, priority, isDefault)
	require.NoError(t, err)
	return rule
}

func TestPriceCalculator_Calculate(t *testing.T) {
	calculator := services.NewPriceCalculator()
	now := time.Now()

	t.Run("should return base rate when no rules match", func(t *testing.T) {
		testToy := newTestToy(t, 10, 50, 150)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly, nil, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, result.BasePrice, 1e-9)
		assert.InDelta(t, 50.0, result.FinalPrice, 1e-9)
		assert.InDelta(t, 0.0, result.TotalDiscount, 1e-9)
		assert.Empty(t, result.AppliedRuleNames)
		assert.Equal(t, pricing.TypeWeekly, result.PricingType)
	})

	t.Run("should prefer scoped discount over global default base price", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)
		toyID := testToy.ID()

		discount := mustRule(t, "spring sale", pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(20), nil, &toyID, 10, false)
		defaultBase := mustRule(t, "standard weekly", pricing.RuleTypeBasePrice, pricing.TypeWeekly,
			ptrF(60), nil, nil, nil, 0, true)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{defaultBase, discount}, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 100.0, result.BasePrice, 1e-9)
		assert.InDelta(t, 80.0, result.FinalPrice, 1e-9)
		assert.InDelta(t, 20.0, result.TotalDiscount, 1e-9)
		assert.Equal(t, []string{"spring sale"}, result.AppliedRuleNames)
	})

	t.Run("should fall back to default base price when toy rate is unset", func(t *testing.T) {
		testToy := newTestToy(t, 10, 0, 300)

		defaultBase := mustRule(t, "standard weekly", pricing.RuleTypeBasePrice, pricing.TypeWeekly,
			ptrF(60), nil, nil, nil, 0, true)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{defaultBase}, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, result.BasePrice, 1e-9)
		assert.InDelta(t, 60.0, result.FinalPrice, 1e-9)
		assert.Equal(t, []string{"standard weekly"}, result.AppliedRuleNames)
	})

	t.Run("should apply rules in priority order against the running price", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)

		override := mustRule(t, "promo override", pricing.RuleTypeBasePrice, pricing.TypeWeekly,
			ptrF(200), nil, nil, nil, 20, false)
		discount := mustRule(t, "half off", pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(50), nil, nil, 10, false)
		surcharge := mustRule(t, "delivery fee", pricing.RuleTypeSurcharge, pricing.TypeWeekly,
			nil, nil, ptrF(15), nil, 5, false)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{surcharge, discount, override}, 1, now)

		require.NoError(t, err)
		// 100 -> 200 (override) -> 100 (50% off running) -> 115 (flat fee)
		assert.InDelta(t, 115.0, result.FinalPrice, 1e-9)
		assert.InDelta(t, 100.0, result.TotalDiscount, 1e-9)
		assert.Equal(t, []string{"promo override", "half off", "delivery fee"}, result.AppliedRuleNames)
	})

	t.Run("should break priority ties in favor of non-default rules", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)

		nonDefault := mustRule(t, "zz member discount", pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(10), nil, nil, 5, false)
		defaultRule := mustRule(t, "aa default discount", pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(20), nil, nil, 5, true)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{defaultRule, nonDefault}, 1, now)

		require.NoError(t, err)
		// 100 -> 90 (non-default 10%) -> 72 (default 20% of running)
		assert.InDelta(t, 72.0, result.FinalPrice, 1e-9)
		assert.Equal(t, []string{"zz member discount", "aa default discount"}, result.AppliedRuleNames)
	})

	t.Run("should ignore rules outside their quantity window", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)

		bulkOnly, err := pricing.NewRule(kernel.NewUUID(), "bulk discount",
			pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(30), nil, ptrI(3), nil, nil, nil, nil, 10, false)
		require.NoError(t, err)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{bulkOnly}, 2, now)

		require.NoError(t, err)
		assert.InDelta(t, 100.0, result.FinalPrice, 1e-9)
		assert.Empty(t, result.AppliedRuleNames)
	})

	t.Run("should ignore rules outside their validity dates", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)

		notYet := time.Now().Add(24 * time.Hour)
		future, err := pricing.NewRule(kernel.NewUUID(), "next week sale",
			pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(30), nil, nil, nil, &notYet, nil, nil, 10, false)
		require.NoError(t, err)

		over := time.Now().Add(-24 * time.Hour)
		expired, err := pricing.NewRule(kernel.NewUUID(), "last week sale",
			pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(30), nil, nil, nil, nil, &over, nil, 10, false)
		require.NoError(t, err)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{future, expired}, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 100.0, result.FinalPrice, 1e-9)
		assert.Empty(t, result.AppliedRuleNames)
	})

	t.Run("should ignore rules scoped to another toy or granularity", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)
		otherID := kernel.NewUUID()

		otherToy := mustRule(t, "other toy sale", pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, ptrF(50), nil, &otherID, 10, false)
		otherGranularity := mustRule(t, "daily sale", pricing.RuleTypeDiscount, pricing.TypeDaily,
			nil, ptrF(50), nil, nil, 10, false)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{otherToy, otherGranularity}, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 100.0, result.FinalPrice, 1e-9)
		assert.Empty(t, result.AppliedRuleNames)
	})

	t.Run("should clamp final price at zero", func(t *testing.T) {
		testToy := newTestToy(t, 10, 20, 300)

		flat := mustRule(t, "oversized voucher", pricing.RuleTypeDiscount, pricing.TypeWeekly,
			nil, nil, ptrF(50), nil, 10, false)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{flat}, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, result.FinalPrice, 1e-9)
		assert.InDelta(t, 50.0, result.TotalDiscount, 1e-9)
	})

	t.Run("should not act on seasonal or bulk refinement rules", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)

		seasonal := mustRule(t, "summer season", pricing.RuleTypeSeasonal, pricing.TypeWeekly,
			nil, ptrF(15), nil, nil, 10, false)

		result, err := calculator.Calculate(testToy, pricing.TypeWeekly,
			[]*pricing.Rule{seasonal}, 1, now)

		require.NoError(t, err)
		assert.InDelta(t, 100.0, result.FinalPrice, 1e-9)
		assert.Empty(t, result.AppliedRuleNames)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		testToy := newTestToy(t, 10, 100, 300)

		_, err := calculator.Calculate(testToy, pricing.TypeWeekly, nil, 0, now)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed toy", func(t *testing.T) {
		var blank toy.Toy

		_, err := calculator.Calculate(&blank, pricing.TypeWeekly, nil, 1, now)

		require.ErrorIs(t, err, toy.ErrToyIsNotConstructed)
	})
}
