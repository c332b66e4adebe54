package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles seller-driven order progression.
//
// The handler loads the order, asks the access policy whether the actor may
// update it, advances the status along the fulfillment path, attaches the
// tracking number when one was supplied, and persists the change
// conditionally on the status the order was loaded with, so two racing
// updates cannot both apply.
//
// A completion additionally notifies the buyer after the commit; a
// notification failure is logged and never fails the update.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanUpdateOrder(cmd.Actor(), o); err != nil {
		return err
	}

	if err = o.UpdateStatus(cmd.Target()); err != nil {
		return err
	}

	if cmd.TrackingNumber() != "" {
		if err = o.SetTrackingNumber(cmd.TrackingNumber()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	var buyerEmail string
	if cmd.Target() == order.Completed {
		buyer, buyerErr := uow.UserRepository().Get(ctx, o.BuyerID())
		if buyerErr != nil {
			return buyerErr
		}
		buyerEmail = buyer.Email()
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if buyerEmail != "" {
		if notifyErr := h.notifier.OrderCompleted(ctx, buyerEmail, o.ID()); notifyErr != nil {
			h.logger.ErrorContext(ctx, "completion notification failed",
				"orderId", o.ID().String(), "error", notifyErr)
		}
	}

	return nil
}
