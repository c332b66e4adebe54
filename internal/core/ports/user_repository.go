package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// The core only reads users and rewrites their derived reputation fields;
// profile mutation lives outside the core.
type UserRepository interface {
	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetForUpdate retrieves a user aggregate and locks its row for the
	// remainder of the surrounding transaction. Rating recomputations for
	// the same reviewee serialize on this lock, so concurrent review
	// creation/deletion cannot lose an update to rating or review count.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error
}
