package toyrepo

import (
	"context"
	"errors"
	"fmt"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormToyRepository implements ToyRepository using GORM.
//
// Counter movements (Reserve, Release, Unreserve) run as single guarded SQL
// statements so the availableQuantity check and the decrement are one atomic
// operation at the database, not a check-then-act in process.
type GormToyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormToyRepository creates a new GORM toy repository.
func NewGormToyRepository(db *gorm.DB, tracker aggregateTracker) *GormToyRepository {
	return &GormToyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new toy to the database.
func (r *GormToyRepository) Add(ctx context.Context, aggregate *toy.Toy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the toy's descriptive fields. Stock counters are deliberately
// excluded; they move only through Reserve, Release, and Unreserve.
func (r *GormToyRepository) Update(ctx context.Context, aggregate *toy.Toy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ToyDTO{}).
		Select("name", "rental_price_daily", "rental_price_weekly", "rental_price_monthly", "status", "condition").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("toy", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a toy by ID.
func (r *GormToyRepository) Get(ctx context.Context, id kernel.UUID) (*toy.Toy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ToyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("toy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve atomically holds quantity units of the toy. The guard condition
// lives in the WHERE clause: a concurrent reservation that would oversell
// matches zero rows and fails with ErrInsufficientStock.
func (r *GormToyRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not positive", quantity))
	}

	result := r.db.WithContext(ctx).Exec(
		`UPDATE toys
		 SET available_quantity = available_quantity - ?, times_rented = times_rented + ?
		 WHERE id = ? AND available_quantity >= ?`,
		quantity, quantity, id.Bytes(), quantity,
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("toy", id.String())
		}
		return toy.ErrInsufficientStock
	}

	return nil
}

// Release returns quantity units to the available pool, never exceeding the
// stock quantity.
func (r *GormToyRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not positive", quantity))
	}

	result := r.db.WithContext(ctx).Exec(
		`UPDATE toys
		 SET available_quantity = LEAST(available_quantity + ?, stock_quantity)
		 WHERE id = ?`,
		quantity, id.Bytes(),
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("toy", id.String())
	}

	return nil
}

// Unreserve undoes a reservation after a cancellation, releasing the units
// and rolling the rental counter back.
func (r *GormToyRepository) Unreserve(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not positive", quantity))
	}

	result := r.db.WithContext(ctx).Exec(
		`UPDATE toys
		 SET available_quantity = LEAST(available_quantity + ?, stock_quantity),
		     times_rented = GREATEST(times_rented - ?, 0)
		 WHERE id = ?`,
		quantity, quantity, id.Bytes(),
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("toy", id.String())
	}

	return nil
}

func (r *GormToyRepository) exists(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ToyDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
