package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
)

// CustomOrderRepository defines the persistence contract for custom order
// aggregates.
type CustomOrderRepository interface {
	// Add persists a new custom order aggregate to storage.
	Add(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Update persists changes to an existing custom order aggregate. The
	// write is conditional on the aggregate's loaded status still being the
	// stored status (compare-and-swap); a concurrent transition that already
	// superseded it surfaces as a ConflictError.
	Update(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Get retrieves a custom order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error)

	// Delete physically removes a custom order. Only callable for
	// aggregates whose status permits deletion; the workflow checks that
	// before calling.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingPastDeadline retrieves pending requests whose delivery
	// deadline lies at or before the given instant. Used by the expiry
	// sweep to cancel requests nobody answered in time.
	GetAllPendingPastDeadline(ctx context.Context, now time.Time) ([]*customorder.CustomOrder, error)
}
