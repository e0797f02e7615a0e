package customerrepo

import (
	"context"
	"errors"

	"toyrental/internal/core/domain/model/customer"
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerDirectory implements CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a new GORM customer directory.
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// Get retrieves a customer by ID.
func (r *GormCustomerDirectory) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
