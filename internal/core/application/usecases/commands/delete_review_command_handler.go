package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteReviewCommandHandler handles review removal together with the
// dependent rating recomputation, in one transaction. The reviewee's user
// row is locked before the delete, mirroring creation, so concurrent
// create/delete for the same reviewee serialize. When the last review
// disappears the reviewee returns to the unrated state.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.AccessPolicy
	calculator services.RatingCalculator
}

// NewDeleteReviewCommandHandler creates a handler for review deletion.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		calculator: services.NewRatingCalculator(),
	}
}

// Handle processes the review deletion command.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
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

	r, err := uow.ReviewRepository().Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDeleteReview(cmd.Actor(), r.ReviewerID()); err != nil {
		return err
	}

	reviewee, err := uow.UserRepository().GetForUpdate(ctx, r.RevieweeID())
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Delete(ctx, r.ID()); err != nil {
		return err
	}

	if err = recomputeRevieweeRating(ctx, uow, h.calculator, reviewee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
