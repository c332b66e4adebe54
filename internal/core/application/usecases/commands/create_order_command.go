package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a buyer's request to place an order, either
// against a catalog listing or against a custom order the seller accepted.
// Exactly one of productID and customOrderID must be given.
//
// The currency is consulted only on the custom order path, where the caller
// may override the currency of the snapshot; it is ignored for catalog
// orders, whose currency always comes from the listing.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           services.Actor
	productID       *kernel.UUID
	customOrderID   *kernel.UUID
	deliveryAddress string
	currency        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The acting user
// becomes the buyer. Currency is optional and only meaningful for custom
// order sources; pass an empty string to keep the custom order's currency.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor services.Actor,
	productID *kernel.UUID,
	customOrderID *kernel.UUID,
	deliveryAddress string,
	currency string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setSource(productID, customOrderID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity placing the order; it becomes the buyer.
func (c CreateOrderCommand) Actor() services.Actor {
	return c.actor
}

// ProductID returns the catalog listing to order, or nil for a custom order source.
func (c CreateOrderCommand) ProductID() *kernel.UUID {
	return c.productID
}

// CustomOrderID returns the accepted custom order to convert, or nil for a catalog source.
func (c CreateOrderCommand) CustomOrderID() *kernel.UUID {
	return c.customOrderID
}

// DeliveryAddress returns where the goods are to be delivered.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Currency returns the caller-supplied currency override, or an empty string.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setSource(productID, customOrderID *kernel.UUID) error {
	if productID == nil && customOrderID == nil {
		return errs.NewValueIsRequiredError("productId or customOrderId")
	}
	if productID != nil && customOrderID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"productId",
			errors.New("productId and customOrderId are mutually exclusive"),
		)
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return err
		}
		id := *productID
		c.productID = &id
		return nil
	}
	if err := customOrderID.Validate(); err != nil {
		return err
	}
	id := *customOrderID
	c.customOrderID = &id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
