package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// CreateReviewCommandHandler handles review creation together with the
// dependent rating recomputation, in one transaction.
//
// The reviewee's user row is locked before the insert, so two reviews
// arriving for the same user serialize and neither recomputation reads a
// stale set. At most one review may exist per order: a pre-check catches
// the common case early, and the storage-level uniqueness constraint
// catches the race, both surfacing as a ConflictError.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.AccessPolicy
	calculator services.RatingCalculator
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		calculator: services.NewRatingCalculator(),
	}
}

// Handle processes the review creation command.
func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanReviewOrder(cmd.Actor(), o, cmd.RevieweeID()); err != nil {
		return err
	}

	if _, err = uow.ReviewRepository().GetByOrderID(ctx, cmd.OrderID()); err == nil {
		return errs.NewConflictError("orderId", cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	reviewee, err := uow.UserRepository().GetForUpdate(ctx, cmd.RevieweeID())
	if err != nil {
		return err
	}

	r, err := review.NewReview(
		cmd.ReviewID(),
		cmd.OrderID(),
		cmd.Actor().ID,
		cmd.RevieweeID(),
		cmd.Ratings(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, r); err != nil {
		return err
	}

	if err = recomputeRevieweeRating(ctx, uow, h.calculator, reviewee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recomputeRevieweeRating rereads the reviewee's full review set inside the
// current transaction, recalculates the aggregate and persists it on the
// already-locked user row. Shared by review creation and deletion.
func recomputeRevieweeRating(
	ctx context.Context,
	uow ReviewUoW,
	calculator services.RatingCalculator,
	reviewee *user.User,
) error {
	reviews, err := uow.ReviewRepository().GetAllForReviewee(ctx, reviewee.ID())
	if err != nil {
		return err
	}

	overalls := make([]int, 0, len(reviews))
	for _, r := range reviews {
		overalls = append(overalls, r.Ratings().Overall())
	}

	rating, count := calculator.Aggregate(overalls)
	if err = reviewee.ApplyRating(rating, count); err != nil {
		return err
	}

	return uow.UserRepository().Update(ctx, reviewee)
}
