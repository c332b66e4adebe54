package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrDeleteCustomOrderCommandIsNotConstructed = errors.New(
		"DeleteCustomOrderCommand must be created via NewDeleteCustomOrderCommand constructor",
	)
)

// DeleteCustomOrderCommand represents a buyer's request to physically remove
// a custom order that never became part of the transaction history.
type DeleteCustomOrderCommand struct { //nolint:recvcheck //using for validation
	actor         services.Actor
	customOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCustomOrderCommand creates a command to delete a custom order.
func NewDeleteCustomOrderCommand(
	actor services.Actor,
	customOrderID kernel.UUID,
) (DeleteCustomOrderCommand, error) {
	cmd := DeleteCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setCustomOrderID(customOrderID),
	); err != nil {
		return DeleteCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomOrderCommandIsNotConstructed)
}

// Actor returns the identity the deletion is requested under.
func (c DeleteCustomOrderCommand) Actor() services.Actor {
	return c.actor
}

// CustomOrderID returns the custom order to delete.
func (c DeleteCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

func (c *DeleteCustomOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeleteCustomOrderCommand) setCustomOrderID(customOrderID kernel.UUID) error {
	if err := customOrderID.Validate(); err != nil {
		return err
	}
	c.customOrderID = customOrderID
	return nil
}
