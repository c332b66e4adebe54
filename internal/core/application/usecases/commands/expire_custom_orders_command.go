package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrExpireCustomOrdersCommandIsNotConstructed = errors.New(
		"ExpireCustomOrdersCommand must be created via NewExpireCustomOrdersCommand constructor",
	)
)

// ExpireCustomOrdersCommand represents a system sweep cancelling pending
// custom orders whose delivery deadline has passed without a seller
// answering. It carries no parameters; the sweep acts on the current time.
type ExpireCustomOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireCustomOrdersCommand creates a command to expire overdue custom orders.
func NewExpireCustomOrdersCommand() (ExpireCustomOrdersCommand, error) {
	return ExpireCustomOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireCustomOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireCustomOrdersCommandIsNotConstructed)
}
