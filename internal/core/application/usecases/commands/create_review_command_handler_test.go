package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateReviewCommand(
	t *testing.T,
	actorID, orderID, revieweeID kernel.UUID,
	overall int,
) commands.CreateReviewCommand {
	t.Helper()
	ratings, err := review.NewRatings(overall, overall, overall)
	require.NoError(t, err)
	cmd, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), buyerActor(actorID), orderID, revieweeID, ratings, "great work",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateReviewCommandHandler_Handle_BuyerReviewsSeller(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	o := orderIn(t, buyerID, sellerID, order.Completed)
	reviewee := sellerUser(t, sellerID)

	cmd := newCreateReviewCommand(t, buyerID, o.ID(), sellerID, 5)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	var added *review.Review
	reviewRepo := new(MockReviewRepository)
	reviewRepo.On("GetByOrderID", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderId", o.ID().String())).Once()
	reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).
		Run(func(args mock.Arguments) {
			added = args.Get(1).(*review.Review)
		}).
		Return(nil).Once()
	reviewRepo.On("GetAllForReviewee", mock.Anything, sellerID).
		Return([]*review.Review{reviewFor(t, o.ID(), buyerID, sellerID, 5)}, nil).Once()

	userRepo := new(MockUserRepository)
	userRepo.On("GetForUpdate", mock.Anything, sellerID).Return(reviewee, nil).Once()
	userRepo.On("Update", mock.Anything, reviewee).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ReviewRepository").Return(reviewRepo).Times(3)
	uow.On("UserRepository").Return(userRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ReviewerID().IsEqual(buyerID))
	assert.True(t, added.RevieweeID().IsEqual(sellerID))
	require.NotNil(t, reviewee.Rating())
	assert.InDelta(t, 5.0, *reviewee.Rating(), 0.001)
	assert.Equal(t, 1, reviewee.ReviewCount())
	reviewRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_AggregatesExistingReviews(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	o := orderIn(t, buyerID, sellerID, order.Completed)
	reviewee := sellerUser(t, sellerID)

	cmd := newCreateReviewCommand(t, buyerID, o.ID(), sellerID, 4)

	existing := []*review.Review{
		reviewFor(t, kernel.NewUUID(), kernel.NewUUID(), sellerID, 5),
		reviewFor(t, kernel.NewUUID(), kernel.NewUUID(), sellerID, 5),
		reviewFor(t, o.ID(), buyerID, sellerID, 4),
	}

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	reviewRepo := new(MockReviewRepository)
	reviewRepo.On("GetByOrderID", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderId", o.ID().String())).Once()
	reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once()
	reviewRepo.On("GetAllForReviewee", mock.Anything, sellerID).Return(existing, nil).Once()

	userRepo := new(MockUserRepository)
	userRepo.On("GetForUpdate", mock.Anything, sellerID).Return(reviewee, nil).Once()
	userRepo.On("Update", mock.Anything, reviewee).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ReviewRepository").Return(reviewRepo).Times(3)
	uow.On("UserRepository").Return(userRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	// (5+5+4)/3 = 4.666..., rounded half-up to one decimal.
	require.NotNil(t, reviewee.Rating())
	assert.InDelta(t, 4.7, *reviewee.Rating(), 0.001)
	assert.Equal(t, 3, reviewee.ReviewCount())
}

func TestCreateReviewCommandHandler_Handle_DuplicateReviewForOrder(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	o := orderIn(t, buyerID, sellerID, order.Completed)

	cmd := newCreateReviewCommand(t, buyerID, o.ID(), sellerID, 5)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	reviewRepo := new(MockReviewRepository)
	reviewRepo.On("GetByOrderID", mock.Anything, o.ID()).
		Return(reviewFor(t, o.ID(), buyerID, sellerID, 5), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ReviewRepository").Return(reviewRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateReviewCommandHandler_Handle_OrderNotCompleted(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	o := orderIn(t, buyerID, sellerID, order.Delivered)

	cmd := newCreateReviewCommand(t, buyerID, o.ID(), sellerID, 5)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateReviewCommandHandler_Handle_StrangerMayNotReview(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	o := orderIn(t, buyerID, sellerID, order.Completed)

	cmd := newCreateReviewCommand(t, kernel.NewUUID(), o.ID(), sellerID, 5)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}
