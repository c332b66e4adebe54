package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/customorder"
)

// ExpireCustomOrdersCommandHandler cancels pending custom orders whose
// delivery deadline lies in the past. It is driven by the background job,
// not by a user, so no access policy applies.
//
// Each overdue request is moved to Cancelled with the same conditional
// update the interactive transitions use, so a request a seller accepts
// while the sweep runs is never clobbered; the sweep loses the race for
// that record and the whole batch rolls back to retry on the next tick.
type ExpireCustomOrdersCommandHandler struct {
	uowFactory CustomOrderUoWFactory
	logger     *slog.Logger
}

// NewExpireCustomOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireCustomOrdersCommandHandler(
	uowFactory CustomOrderUoWFactory,
	logger *slog.Logger,
) ExpireCustomOrdersCommandHandler {
	return ExpireCustomOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "expire_custom_orders_handler"),
	}
}

// Handle processes the expiry sweep command.
func (h *ExpireCustomOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireCustomOrdersCommand) error {
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

	now := time.Now().UTC()
	overdue, err := uow.CustomOrderRepository().GetAllPendingPastDeadline(ctx, now)
	if err != nil {
		return err
	}

	for _, co := range overdue {
		if err = co.TransitionTo(customorder.Cancelled, now); err != nil {
			return err
		}
		if err = uow.CustomOrderRepository().Update(ctx, co); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(overdue) > 0 {
		h.logger.InfoContext(ctx, "expired overdue custom orders", "count", len(overdue))
	}
	return nil
}
