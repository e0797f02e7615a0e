package ports

import (
	"context"

	"toyrental/internal/core/domain/model/customer"
	"toyrental/internal/core/domain/model/kernel"
)

// CustomerDirectory resolves customer accounts managed outside this service.
// It is read-only: checkout needs the customer's contact details for the
// delivery snapshot but never mutates the account.
type CustomerDirectory interface {
	// Get retrieves a customer by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
