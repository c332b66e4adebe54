package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCustomOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, nil, customorder.Pending)

	cmd, err := commands.NewDeleteCustomOrderCommand(buyerActor(buyerID), co.ID())
	require.NoError(t, err)

	repo := new(MockCustomOrderRepository)
	repo.On("Get", mock.Anything, co.ID()).Return(co, nil).Once()
	repo.On("Delete", mock.Anything, co.ID()).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(repo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteCustomOrderCommandHandler_Handle_SellerMayNotDelete(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, &sellerID, customorder.Pending)

	cmd, err := commands.NewDeleteCustomOrderCommand(sellerActor(sellerID), co.ID())
	require.NoError(t, err)

	repo := new(MockCustomOrderRepository)
	repo.On("Get", mock.Anything, co.ID()).Return(co, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCustomOrderCommandHandler_Handle_AcceptedIsNotDeletable(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	co := customOrderIn(t, buyerID, &sellerID, customorder.Accepted)

	cmd, err := commands.NewDeleteCustomOrderCommand(buyerActor(buyerID), co.ID())
	require.NoError(t, err)

	repo := new(MockCustomOrderRepository)
	repo.On("Get", mock.Anything, co.ID()).Return(co, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCustomOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()

	cmd, err := commands.NewDeleteCustomOrderCommand(buyerActor(kernel.NewUUID()), missingID)
	require.NoError(t, err)

	repo := new(MockCustomOrderRepository)
	repo.On("Get", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("customOrderId", missingID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomOrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
