package pricingrepo

import (
	"context"

	"toyrental/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormPricingRepository implements PricingRepository using GORM.
type GormPricingRepository struct {
	db *gorm.DB
}

// NewGormPricingRepository creates a new GORM pricing repository.
func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

// AppendHistory persists one price change record. The trail is append-only;
// there is no update or delete counterpart.
func (r *GormPricingRepository) AppendHistory(ctx context.Context, record *pricing.History) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
