package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// TransitionCustomOrderCommandHandler handles custom order lifecycle moves.
//
// The handler loads the record, asks the access policy whether the actor may
// request the target status, validates reachability against the state graph,
// and persists the new status together with its timestamp in one
// transaction. The persisted write is conditional on the status the record
// was loaded with, so two racing transitions cannot both apply.
//
// A completion additionally notifies the buyer after the commit; a
// notification failure is logged and never fails the transition.
type TransitionCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
	policy     services.AccessPolicy
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewTransitionCustomOrderCommandHandler creates a handler for custom order transitions.
func NewTransitionCustomOrderCommandHandler(
	uowFactory CustomOrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) TransitionCustomOrderCommandHandler {
	return TransitionCustomOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		notifier:   notifier,
		logger:     logger.With("component", "transition_custom_order_handler"),
	}
}

// Handle processes the transition command.
func (h *TransitionCustomOrderCommandHandler) Handle(ctx context.Context, cmd TransitionCustomOrderCommand) error {
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

	if err = h.policy.CanTransitionCustomOrder(cmd.Actor(), co, cmd.Target()); err != nil {
		return err
	}

	if err = co.TransitionTo(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.CustomOrderRepository().Update(ctx, co); err != nil {
		return err
	}

	var buyerEmail string
	if cmd.Target() == customorder.Completed {
		buyer, buyerErr := uow.UserRepository().Get(ctx, co.BuyerID())
		if buyerErr != nil {
			return buyerErr
		}
		buyerEmail = buyer.Email()
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if buyerEmail != "" {
		if notifyErr := h.notifier.CustomOrderCompleted(ctx, buyerEmail, co.ID()); notifyErr != nil {
			h.logger.ErrorContext(ctx, "completion notification failed",
				"customOrderId", co.ID().String(), "error", notifyErr)
		}
	}

	return nil
}
