package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateCustomOrderCommandIsNotConstructed = errors.New(
		"CreateCustomOrderCommand must be created via NewCreateCustomOrderCommand constructor",
	)
)

// CreateCustomOrderCommand represents a buyer's request to open a bespoke
// purchase negotiation, optionally addressed to a specific seller.
//
// Example:
//
//	cmd, err := NewCreateCustomOrderCommand(
//	    kernel.NewUUID(), buyerID, &sellerID,
//	    "Hand-carved chess set", "Walnut and maple, tournament size",
//	    maxPrice, customorder.ByDeadline, &deadline,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid custom order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create custom order: %w", err)
//	}
type CreateCustomOrderCommand struct { //nolint:recvcheck //using for validation
	customOrderID kernel.UUID
	buyerID       kernel.UUID
	sellerID      *kernel.UUID
	title         string
	description   string
	maxPrice      kernel.Money
	deliveryType  customorder.DeliveryType
	deadline      *time.Time

	guard guard.ConstructorGuard
}

// NewCreateCustomOrderCommand creates a command to open a custom order request.
// Validates identifiers, title, description, price ceiling and delivery
// settings. Whether the referenced seller exists and holds the Seller role is
// checked by the handler, which has repository access.
func NewCreateCustomOrderCommand(
	customOrderID kernel.UUID,
	buyerID kernel.UUID,
	sellerID *kernel.UUID,
	title string,
	description string,
	maxPrice kernel.Money,
	deliveryType customorder.DeliveryType,
	deadline *time.Time,
) (CreateCustomOrderCommand, error) {
	cmd := CreateCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomOrderID(customOrderID),
		cmd.setBuyerID(buyerID),
		cmd.setSellerID(sellerID),
		cmd.setTitle(title),
		cmd.setDescription(description),
		cmd.setMaxPrice(maxPrice),
		cmd.setDelivery(deliveryType, deadline),
	); err != nil {
		return CreateCustomOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomOrderCommandIsNotConstructed)
}

// CustomOrderID returns the identifier for the new custom order.
func (c CreateCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

// BuyerID returns the requesting buyer's identifier.
func (c CreateCustomOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the addressed seller's identifier, or nil for an open request.
func (c CreateCustomOrderCommand) SellerID() *kernel.UUID {
	return c.sellerID
}

// Title returns the request title.
func (c CreateCustomOrderCommand) Title() string {
	return c.title
}

// Description returns the request description.
func (c CreateCustomOrderCommand) Description() string {
	return c.description
}

// MaxPrice returns the buyer's price ceiling.
func (c CreateCustomOrderCommand) MaxPrice() kernel.Money {
	return c.maxPrice
}

// DeliveryType returns how the buyer wants the work delivered.
func (c CreateCustomOrderCommand) DeliveryType() customorder.DeliveryType {
	return c.deliveryType
}

// Deadline returns the delivery deadline, or nil for AsSoonAsPossible requests.
func (c CreateCustomOrderCommand) Deadline() *time.Time {
	return c.deadline
}

func (c *CreateCustomOrderCommand) setCustomOrderID(customOrderID kernel.UUID) error {
	if err := customOrderID.Validate(); err != nil {
		return err
	}
	c.customOrderID = customOrderID
	return nil
}

func (c *CreateCustomOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	c.buyerID = buyerID
	return nil
}

func (c *CreateCustomOrderCommand) setSellerID(sellerID *kernel.UUID) error {
	if sellerID == nil {
		return nil
	}
	if err := sellerID.Validate(); err != nil {
		return err
	}
	id := *sellerID
	c.sellerID = &id
	return nil
}

func (c *CreateCustomOrderCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateCustomOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateCustomOrderCommand) setMaxPrice(maxPrice kernel.Money) error {
	if err := maxPrice.Validate(); err != nil {
		return err
	}
	c.maxPrice = maxPrice
	return nil
}

func (c *CreateCustomOrderCommand) setDelivery(deliveryType customorder.DeliveryType, deadline *time.Time) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	if deadline != nil {
		d := *deadline
		c.deadline = &d
	}
	c.deliveryType = deliveryType
	return nil
}
