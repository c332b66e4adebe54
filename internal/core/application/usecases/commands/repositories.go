// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomOrderRepoFactory provides access to the custom order repository within a transaction.
	CustomOrderRepoFactory interface {
		CustomOrderRepository() ports.CustomOrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// CustomOrderUoW manages transactions for the custom order workflow.
	// Creation validates the referenced seller, and completion looks up the
	// buyer for notification, so the user repository rides along.
	CustomOrderUoW interface {
		TxManager
		CustomOrderRepoFactory
		UserRepoFactory
	}

	// CustomOrderUoWFactory creates new custom order unit of work instances.
	CustomOrderUoWFactory interface {
		Create() CustomOrderUoW
	}

	// OrderUoW manages transactions for the catalog order workflow.
	// Order creation snapshots from a listing or an accepted custom order,
	// and completion looks up the buyer for notification.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomOrderRepoFactory
		ListingRepoFactory
		UserRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for review creation/deletion together
	// with the dependent rating recomputation on the reviewed user.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
