package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// CreateCustomOrderCommandHandler handles the business logic for opening a
// custom order request. When the request is addressed to a specific seller,
// the referenced user must exist, hold the Seller role, and differ from the
// buyer.
type CreateCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
}

// NewCreateCustomOrderCommandHandler creates a handler for custom order creation.
func NewCreateCustomOrderCommandHandler(uowFactory CustomOrderUoWFactory) CreateCustomOrderCommandHandler {
	return CreateCustomOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the custom order creation command.
// Emits a Pending custom order, or fails without visible side effects.
func (h *CreateCustomOrderCommandHandler) Handle(ctx context.Context, cmd CreateCustomOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if sellerID := cmd.SellerID(); sellerID != nil {
		seller, err := uow.UserRepository().Get(ctx, *sellerID)
		if err != nil {
			return err
		}
		if seller.Role() != user.Seller {
			return errs.NewValueIsInvalidErrorWithCause(
				"sellerId",
				fmt.Errorf("user %s does not hold the Seller role", sellerID),
			)
		}
	}

	co, err := customorder.NewCustomOrder(
		cmd.CustomOrderID(),
		cmd.BuyerID(),
		cmd.SellerID(),
		cmd.Title(),
		cmd.Description(),
		cmd.MaxPrice(),
		cmd.DeliveryType(),
		cmd.Deadline(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Add(ctx, co); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
