package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement from either source.
//
// For a catalog source the listing must exist and be available; seller,
// price and currency are snapshotted from it. For a custom order source the
// record must be Accepted and belong to the acting buyer; seller and price
// are snapshotted from it, with the caller's currency taking precedence when
// supplied. The snapshot is immutable afterwards: later changes to the
// listing or custom order never touch the order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Emits a Pending order holding the price snapshot, or fails without
// visible side effects.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	var (
		sellerID kernel.UUID
		price    kernel.Money
		err      error
	)

	switch {
	case cmd.ProductID() != nil:
		sellerID, price, err = h.snapshotFromListing(ctx, uow, cmd)
	default:
		sellerID, price, err = h.snapshotFromCustomOrder(ctx, uow, cmd)
	}
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Actor().ID,
		sellerID,
		cmd.ProductID(),
		cmd.CustomOrderID(),
		price,
		cmd.DeliveryAddress(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) snapshotFromListing(
	ctx context.Context,
	uow OrderUoW,
	cmd CreateOrderCommand,
) (kernel.UUID, kernel.Money, error) {
	l, err := uow.ListingRepository().Get(ctx, *cmd.ProductID())
	if err != nil {
		return kernel.UUID{}, kernel.Money{}, err
	}

	if !l.IsAvailable() {
		return kernel.UUID{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("listing %s is not available", l.ID()),
		)
	}

	return l.SellerID(), l.Price(), nil
}

func (h *CreateOrderCommandHandler) snapshotFromCustomOrder(
	ctx context.Context,
	uow OrderUoW,
	cmd CreateOrderCommand,
) (kernel.UUID, kernel.Money, error) {
	co, err := uow.CustomOrderRepository().Get(ctx, *cmd.CustomOrderID())
	if err != nil {
		return kernel.UUID{}, kernel.Money{}, err
	}

	if !co.BuyerID().IsEqual(cmd.Actor().ID) {
		return kernel.UUID{}, kernel.Money{}, errs.NewForbiddenError(
			"create order from custom order",
			"actor is not the requesting buyer",
		)
	}

	if co.Status() != customorder.Accepted {
		return kernel.UUID{}, kernel.Money{}, errs.NewInvalidTransitionErrorWithCause(
			co.Status().String(), "ordered",
			errors.New("only accepted custom orders can be converted to orders"),
		)
	}

	if co.SellerID() == nil {
		return kernel.UUID{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"customOrderId",
			fmt.Errorf("custom order %s has no assigned seller", co.ID()),
		)
	}

	currency := cmd.Currency()
	if currency == "" {
		currency = co.MaxPrice().Currency()
	}

	price, err := kernel.NewMoney(co.MaxPrice().Amount(), currency)
	if err != nil {
		return kernel.UUID{}, kernel.Money{}, err
	}

	return *co.SellerID(), price, nil
}
