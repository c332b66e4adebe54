package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrDeleteReviewCommandIsNotConstructed = errors.New(
		"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
	)
)

// DeleteReviewCommand represents a reviewer's request to remove a review
// they wrote.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to delete a review.
func NewDeleteReviewCommand(
	actor services.Actor,
	reviewID kernel.UUID,
) (DeleteReviewCommand, error) {
	cmd := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setReviewID(reviewID),
	); err != nil {
		return DeleteReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// Actor returns the identity the deletion is requested under.
func (c DeleteReviewCommand) Actor() services.Actor {
	return c.actor
}

// ReviewID returns the review to delete.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c *DeleteReviewCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeleteReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}
