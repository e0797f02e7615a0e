package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/core/domain/services"
	"toyrental/internal/pkg/errs"
)

// CalculatePriceQueryHandler loads the toy and its active pricing rules and
// runs the price calculator over them.
type CalculatePriceQueryHandler struct {
	db         *gorm.DB
	calculator services.PriceCalculator
}

// NewCalculatePriceQueryHandler creates a handler over the given database.
func NewCalculatePriceQueryHandler(db *gorm.DB) CalculatePriceQueryHandler {
	return CalculatePriceQueryHandler{
		db:         db,
		calculator: services.NewPriceCalculator(),
	}
}

type toyPriceRow struct {
	ID                 uuid.UUID
	Name               string
	RentalPriceDaily   float64
	RentalPriceWeekly  float64
	RentalPriceMonthly float64
	StockQuantity      int
	AvailableQuantity  int
	TimesRented        int
	Status             int
	Condition          string
}

type pricingRuleRow struct {
	ID                 uuid.UUID
	Name               string
	RuleType           string
	PricingType        string
	Price              *float64
	DiscountPercentage *float64
	DiscountAmount     *float64
	MinQuantity        *int
	MaxQuantity        *int
	ValidFrom          *time.Time
	ValidUntil         *time.Time
	ToyID              *uuid.UUID
	Priority           int
	IsDefault          bool
}

// Handle computes the effective price for the requested toy and granularity.
func (h CalculatePriceQueryHandler) Handle(ctx context.Context, query CalculatePriceQuery) (CalculatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	var toyRow toyPriceRow
	err := h.db.WithContext(ctx).Raw(
		`SELECT id, name, rental_price_daily, rental_price_weekly, rental_price_monthly,
			stock_quantity, available_quantity, times_rented, status, condition
		FROM toys WHERE id = ?`,
		query.ToyID().Bytes(),
	).First(&toyRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CalculatePriceQueryResponse{}, errs.NewObjectNotFoundError("toyID", query.ToyID())
		}
		return CalculatePriceQueryResponse{}, err
	}

	var ruleRows []pricingRuleRow
	err = h.db.WithContext(ctx).Raw(
		`SELECT id, name, rule_type, pricing_type, price, discount_percentage, discount_amount,
			min_quantity, max_quantity, valid_from, valid_until, toy_id, priority, is_default
		FROM pricing_rules
		WHERE is_active AND pricing_type = ? AND (toy_id IS NULL OR toy_id = ?)`,
		string(query.PricingType()), query.ToyID().Bytes(),
	).Scan(&ruleRows).Error
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	aggregate, err := restoreToyFromRow(toyRow)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}
	rules := make([]*pricing.Rule, 0, len(ruleRows))
	for _, row := range ruleRows {
		rule, err := restoreRuleFromRow(row)
		if err != nil {
			return CalculatePriceQueryResponse{}, err
		}
		rules = append(rules, rule)
	}

	return h.calculator.Calculate(aggregate, query.PricingType(), rules, query.Quantity(), query.At())
}

func restoreToyFromRow(row toyPriceRow) (*toy.Toy, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	return toy.RestoreToy(
		id,
		row.Name,
		row.RentalPriceDaily, row.RentalPriceWeekly, row.RentalPriceMonthly,
		row.StockQuantity, row.AvailableQuantity, row.TimesRented,
		toy.Status(row.Status),
		toy.Condition(row.Condition),
	)
}

func restoreRuleFromRow(row pricingRuleRow) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	var toyID *kernel.UUID
	if row.ToyID != nil {
		scoped, err := kernel.UUIDFromBytes(row.ToyID[:])
		if err != nil {
			return nil, err
		}
		toyID = &scoped
	}
	return pricing.RestoreRule(
		id,
		row.Name,
		pricing.RuleType(row.RuleType),
		pricing.Type(row.PricingType),
		row.Price, row.DiscountPercentage, row.DiscountAmount,
		row.MinQuantity, row.MaxQuantity,
		row.ValidFrom, row.ValidUntil,
		toyID,
		row.Priority,
		row.IsDefault,
		true,
	)
}
