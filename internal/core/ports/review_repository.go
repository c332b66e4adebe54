package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. At most one review may exist per order;
	// a duplicate surfaces as a ConflictError backed by the storage-level
	// uniqueness constraint.
	Add(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetByOrderID retrieves the review written for the given order, if any.
	// Returns an ObjectNotFoundError when none exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*review.Review, error)

	// GetAllForReviewee retrieves every review received by the given user.
	// The rating recomputation reads this inside the same transaction that
	// wrote or removed a review.
	GetAllForReviewee(ctx context.Context, revieweeID kernel.UUID) ([]*review.Review, error)

	// Delete physically removes a review.
	Delete(ctx context.Context, id kernel.UUID) error
}
