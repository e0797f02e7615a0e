package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"toyrental/internal/core/domain/model/kernel"
)

// GetPriceHistoryQueryHandler reads the append-only price audit trail.
type GetPriceHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPriceHistoryQueryHandler creates a handler over the given database.
func NewGetPriceHistoryQueryHandler(db *gorm.DB) GetPriceHistoryQueryHandler {
	return GetPriceHistoryQueryHandler{db: db}
}

type priceHistoryRow struct {
	ID            uuid.UUID
	ToyID         uuid.UUID
	RuleID        *uuid.UUID
	PricingType   string
	OldPrice      float64
	NewPrice      float64
	Reason        string
	ChangedBy     string
	EffectiveDate time.Time
}

// Handle returns the toy's recorded price changes, newest first.
func (h GetPriceHistoryQueryHandler) Handle(ctx context.Context, query GetPriceHistoryQuery) (GetPriceHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceHistoryQueryResponse{}, err
	}

	sql := `SELECT id, toy_id, rule_id, pricing_type, old_price, new_price, reason, changed_by, effective_date
		FROM price_history WHERE toy_id = ?`
	args := []any{query.ToyID().Bytes()}
	if query.PricingType() != nil {
		sql += " AND pricing_type = ?"
		args = append(args, string(*query.PricingType()))
	}
	sql += " ORDER BY effective_date DESC, id"

	var rows []priceHistoryRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return GetPriceHistoryQueryResponse{}, err
	}

	response := GetPriceHistoryQueryResponse{Changes: make([]PriceChangeResponse, 0, len(rows))}
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return GetPriceHistoryQueryResponse{}, err
		}
		toyID, err := kernel.UUIDFromBytes(row.ToyID[:])
		if err != nil {
			return GetPriceHistoryQueryResponse{}, err
		}
		var ruleID *kernel.UUID
		if row.RuleID != nil {
			restored, err := kernel.UUIDFromBytes(row.RuleID[:])
			if err != nil {
				return GetPriceHistoryQueryResponse{}, err
			}
			ruleID = &restored
		}
		response.Changes = append(response.Changes, PriceChangeResponse{
			ID:            id,
			ToyID:         toyID,
			RuleID:        ruleID,
			PricingType:   row.PricingType,
			OldPrice:      row.OldPrice,
			NewPrice:      row.NewPrice,
			Reason:        row.Reason,
			ChangedBy:     row.ChangedBy,
			EffectiveDate: row.EffectiveDate,
		})
	}
	return response, nil
}
