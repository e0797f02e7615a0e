// Package pricingrepo provides data transfer objects and the repository for
// the pricing tables. Rules are created and edited out-of-band by
// administrators; this service appends to the price audit trail and reads
// rules on the query side.
package pricingrepo

import (
	"time"

	"toyrental/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// PricingRuleDTO represents the database structure for pricing rules.
// Nullable columns mirror the rule's optional fields: an unset bound means
// the corresponding window is open.
type PricingRuleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	RuleType           string `gorm:"index"`
	PricingType        string `gorm:"index"`
	Price              *float64
	DiscountPercentage *float64
	DiscountAmount     *float64
	MinQuantity        *int
	MaxQuantity        *int
	ValidFrom          *time.Time
	ValidUntil         *time.Time
	ToyID              *uuid.UUID `gorm:"type:uuid;index"`
	Priority           int
	IsDefault          bool
	IsActive           bool `gorm:"index"`
}

// TableName specifies the database table name for pricing rules.
func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

// PriceHistoryDTO represents one append-only price audit row.
type PriceHistoryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ToyID         uuid.UUID `gorm:"type:uuid;index"`
	RuleID        *uuid.UUID `gorm:"type:uuid"`
	PricingType   string
	OldPrice      float64
	NewPrice      float64
	Reason        string
	ChangedBy     string
	EffectiveDate time.Time `gorm:"index"`
}

// TableName specifies the database table name for the price audit trail.
func (PriceHistoryDTO) TableName() string {
	return "price_history"
}

// historyFromDomain converts a price change record to its database
// representation.
func historyFromDomain(record *pricing.History) PriceHistoryDTO {
	var ruleID *uuid.UUID
	if id := record.RuleID(); id != nil {
		raw := id.Bytes()
		ruleID = &raw
	}

	return PriceHistoryDTO{
		ID:            record.ID().Bytes(),
		ToyID:         record.ToyID().Bytes(),
		RuleID:        ruleID,
		PricingType:   string(record.PricingType()),
		OldPrice:      record.OldPrice(),
		NewPrice:      record.NewPrice(),
		Reason:        record.Reason(),
		ChangedBy:     record.ChangedBy(),
		EffectiveDate: record.EffectiveDate(),
	}
}
