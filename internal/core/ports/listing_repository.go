package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
)

// ListingRepository defines the read-only persistence contract for catalog
// listings. The core consults listings only to snapshot price, currency and
// seller when an order is created.
type ListingRepository interface {
	// Get retrieves a listing by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
}
