package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteCustomOrderCommandHandler handles physical removal of custom orders.
// Only the requesting buyer (or an admin) may delete, and only while the
// request is Pending, Declined or Cancelled; anything that was accepted is
// part of the transaction history and stays.
type DeleteCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteCustomOrderCommandHandler creates a handler for custom order deletion.
func NewDeleteCustomOrderCommandHandler(uowFactory CustomOrderUoWFactory) DeleteCustomOrderCommandHandler {
	return DeleteCustomOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the deletion command.
func (h *DeleteCustomOrderCommandHandler) Handle(ctx context.Context, cmd DeleteCustomOrderCommand) error {
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

	co, err := uow.CustomOrderRepository().Get(ctx, cmd.CustomOrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDeleteCustomOrder(cmd.Actor(), co); err != nil {
		return err
	}

	if err = co.EnsureDeletable(); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Delete(ctx, co.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
