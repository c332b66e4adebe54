package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents the seller's request to advance an
// order along the fulfillment path, optionally attaching a tracking number.
// Cancellation is not reachable through this command; buyers cancel through
// CancelOrderCommand.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor          services.Actor
	orderID        kernel.UUID
	target         order.Status
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's status.
// The tracking number is optional; an empty string leaves any existing
// number untouched. Reachability of the target from the current status is
// decided by the handler against the loaded record.
func NewUpdateOrderStatusCommand(
	actor services.Actor,
	orderID kernel.UUID,
	target order.Status,
	trackingNumber string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the identity the update is requested under.
func (c UpdateOrderStatusCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the order to advance.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// TrackingNumber returns the tracking number to attach, or an empty string.
func (c UpdateOrderStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *UpdateOrderStatusCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
