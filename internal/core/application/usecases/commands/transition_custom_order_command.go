package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrTransitionCustomOrderCommandIsNotConstructed = errors.New(
		"TransitionCustomOrderCommand must be created via NewTransitionCustomOrderCommand constructor",
	)
)

// TransitionCustomOrderCommand represents a request to move a custom order
// to a target lifecycle status on behalf of an actor: the seller accepting,
// declining or completing, or either party cancelling.
type TransitionCustomOrderCommand struct { //nolint:recvcheck //using for validation
	actor         services.Actor
	customOrderID kernel.UUID
	target        customorder.Status

	guard guard.ConstructorGuard
}

// NewTransitionCustomOrderCommand creates a command to transition a custom order.
// Validates the actor, the custom order identifier, and that the target is a
// valid status value; reachability from the current status is decided by the
// handler against the loaded record.
func NewTransitionCustomOrderCommand(
	actor services.Actor,
	customOrderID kernel.UUID,
	target customorder.Status,
) (TransitionCustomOrderCommand, error) {
	cmd := TransitionCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setCustomOrderID(customOrderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionCustomOrderCommandIsNotConstructed)
}

// Actor returns the identity the transition is requested under.
func (c TransitionCustomOrderCommand) Actor() services.Actor {
	return c.actor
}

// CustomOrderID returns the custom order to transition.
func (c TransitionCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

// Target returns the requested target status.
func (c TransitionCustomOrderCommand) Target() customorder.Status {
	return c.target
}

func (c *TransitionCustomOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionCustomOrderCommand) setCustomOrderID(customOrderID kernel.UUID) error {
	if err := customOrderID.Validate(); err != nil {
		return err
	}
	c.customOrderID = customOrderID
	return nil
}

func (c *TransitionCustomOrderCommand) setTarget(target customorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
