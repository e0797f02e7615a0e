package ports

import (
	"context"

	"toyrental/internal/core/domain/model/pricing"
)

// PricingRepository defines the persistence contract for the price audit
// trail. The trail is append-only: rows are never updated or deleted, and
// reads go through the query side.
type PricingRepository interface {
	// AppendHistory persists one price change record.
	AppendHistory(ctx context.Context, record *pricing.History) error
}
