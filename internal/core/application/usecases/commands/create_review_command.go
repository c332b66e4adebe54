package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateReviewCommandIsNotConstructed = errors.New(
		"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
	)
)

// CreateReviewCommand represents a party's request to review the other
// party on a completed order. The acting user becomes the reviewer.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	actor      services.Actor
	orderID    kernel.UUID
	revieweeID kernel.UUID
	ratings    review.Ratings
	comment    string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review the counterparty on an
// order. The comment is optional. Whether the actor and reviewee are the two
// parties of the order, and whether the order is completed, is checked by
// the handler against the loaded record.
func NewCreateReviewCommand(
	reviewID kernel.UUID,
	actor services.Actor,
	orderID kernel.UUID,
	revieweeID kernel.UUID,
	ratings review.Ratings,
	comment string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setRevieweeID(revieweeID),
		cmd.setRatings(ratings),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Actor returns the identity writing the review; it becomes the reviewer.
func (c CreateReviewCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the order being reviewed.
func (c CreateReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RevieweeID returns the user the review is about.
func (c CreateReviewCommand) RevieweeID() kernel.UUID {
	return c.revieweeID
}

// Ratings returns the three-dimensional rating scores.
func (c CreateReviewCommand) Ratings() review.Ratings {
	return c.ratings
}

// Comment returns the free-text comment, or an empty string.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateReviewCommand) setRevieweeID(revieweeID kernel.UUID) error {
	if err := revieweeID.Validate(); err != nil {
		return err
	}
	c.revieweeID = revieweeID
	return nil
}

func (c *CreateReviewCommand) setRatings(ratings review.Ratings) error {
	if err := ratings.Validate(); err != nil {
		return err
	}
	c.ratings = ratings
	return nil
}
