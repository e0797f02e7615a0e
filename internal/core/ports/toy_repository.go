// Package ports defines repository interfaces for the toy rental domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/toy"
)

// ToyRepository defines the persistence contract for toy aggregates.
//
// Stock counters move only through Reserve, Release, and Unreserve, which the
// storage layer must implement as guarded atomic updates so that concurrent
// checkouts across service instances cannot oversell. Update persists the
// aggregate's descriptive fields (name, rates, status, condition) and never
// touches the counters.
type ToyRepository interface {
	// Add persists a new toy aggregate to storage.
	Add(ctx context.Context, aggregate *toy.Toy) error

	// Update persists changes to an existing toy's descriptive fields.
	Update(ctx context.Context, aggregate *toy.Toy) error

	// Get retrieves a toy aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*toy.Toy, error)

	// Reserve atomically decrements availableQuantity by quantity and
	// increments timesRented, only if availableQuantity >= quantity.
	// Returns toy.ErrInsufficientStock when the guard fails and the toy
	// exists, errs.ObjectNotFoundError when it does not.
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	// Release increments availableQuantity by quantity, bounded above by
	// stockQuantity.
	Release(ctx context.Context, id kernel.UUID, quantity int) error

	// Unreserve undoes a reservation: it releases quantity units and
	// decrements timesRented by the same amount, bounded below by zero.
	Unreserve(ctx context.Context, id kernel.UUID, quantity int) error
}
