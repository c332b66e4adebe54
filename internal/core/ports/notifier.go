package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Notifier delivers transactional notifications to users after a state
// change has been committed. A notification failure must never roll back or
// fail the triggering transition; callers log the error and move on.
type Notifier interface {
	// OrderCompleted notifies the buyer that their order was completed.
	OrderCompleted(ctx context.Context, recipient string, orderID kernel.UUID) error

	// CustomOrderCompleted notifies the buyer that their custom order
	// request was completed by the seller.
	CustomOrderCompleted(ctx context.Context, recipient string, customOrderID kernel.UUID) error
}
