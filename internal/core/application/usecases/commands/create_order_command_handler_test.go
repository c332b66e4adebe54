package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_CatalogOrder(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	l := availableListing(t, sellerID)
	productID := l.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerActor(buyerID), &productID, nil, "12 Main St", "",
	)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	listingRepo.On("Get", mock.Anything, productID).Return(l, nil).Once()

	var created *order.Order
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*order.Order)
		}).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ListingRepository").Return(listingRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.BuyerID().IsEqual(buyerID))
	assert.True(t, created.SellerID().IsEqual(sellerID))
	assert.True(t, created.Price().IsEqual(l.Price()))
	assert.Equal(t, order.Pending, created.Status())
	listingRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableListing(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	unavailable := unavailableListing(t, sellerID)
	productID := unavailable.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerActor(buyerID), &productID, nil, "12 Main St", "",
	)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	listingRepo.On("Get", mock.Anything, productID).Return(unavailable, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ListingRepository").Return(listingRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CustomOrderSource(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, &sellerID, customorder.Accepted)
	customOrderID := co.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerActor(buyerID), nil, &customOrderID, "12 Main St", "",
	)
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	customOrderRepo.On("Get", mock.Anything, customOrderID).Return(co, nil).Once()

	var created *order.Order
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*order.Order)
		}).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(customOrderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.SellerID().IsEqual(sellerID))
	// Price and currency snapshot from the custom order's ceiling.
	assert.InDelta(t, co.MaxPrice().Amount(), created.Price().Amount(), 0.001)
	assert.Equal(t, co.MaxPrice().Currency(), created.Price().Currency())
	require.NotNil(t, created.CustomOrderID())
	assert.True(t, created.CustomOrderID().IsEqual(customOrderID))
	assert.Nil(t, created.ProductID())
}

func TestCreateOrderCommandHandler_Handle_CustomOrderCurrencyOverride(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, &sellerID, customorder.Accepted)
	customOrderID := co.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerActor(buyerID), nil, &customOrderID, "12 Main St", "EUR",
	)
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	customOrderRepo.On("Get", mock.Anything, customOrderID).Return(co, nil).Once()

	var created *order.Order
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*order.Order)
		}).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(customOrderRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "EUR", created.Price().Currency())
}

func TestCreateOrderCommandHandler_Handle_CustomOrderNotOwnedByActor(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, &sellerID, customorder.Accepted)
	customOrderID := co.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerActor(kernel.NewUUID()), nil, &customOrderID, "12 Main St", "",
	)
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	customOrderRepo.On("Get", mock.Anything, customOrderID).Return(co, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(customOrderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateOrderCommandHandler_Handle_CustomOrderNotAccepted(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	for _, status := range []customorder.Status{
		customorder.Pending, customorder.Declined, customorder.Completed, customorder.Cancelled,
	} {
		co := customOrderIn(t, buyerID, &sellerID, status)
		customOrderID := co.ID()

		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), buyerActor(buyerID), nil, &customOrderID, "12 Main St", "",
		)
		require.NoError(t, err)

		customOrderRepo := new(MockCustomOrderRepository)
		customOrderRepo.On("Get", mock.Anything, customOrderID).Return(co, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomOrderRepository").Return(customOrderRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.Error(t, err, "status %s should not be orderable", status)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	}
}

func TestCreateOrderCommandHandler_Handle_CustomOrderWithoutSeller(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, nil, customorder.Accepted)
	customOrderID := co.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerActor(buyerID), nil, &customOrderID, "12 Main St", "",
	)
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	customOrderRepo.On("Get", mock.Anything, customOrderID).Return(co, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(customOrderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
