package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCustomOrderCommand(t *testing.T, sellerID *kernel.UUID) commands.CreateCustomOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateCustomOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), sellerID,
		"Hand-carved chess set", "Walnut and maple",
		money(t, 150, "USD"), customorder.AsSoonAsPossible, nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateCustomOrderCommandHandler_Handle_OpenRequest(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCustomOrderCommand(t, nil)

	repo := new(MockCustomOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customorder.CustomOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCustomOrderCommandHandler_Handle_AddressedSeller(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	cmd := newCreateCustomOrderCommand(t, &sellerID)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, sellerID).Return(sellerUser(t, sellerID), nil).Once()

	repo := new(MockCustomOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*customorder.CustomOrder")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("CustomOrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomOrderCommandHandler_Handle_AddresseeIsNotASeller(t *testing.T) {
	ctx := t.Context()
	addresseeID := kernel.NewUUID()
	cmd := newCreateCustomOrderCommand(t, &addresseeID)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, addresseeID).Return(buyerUser(t, addresseeID), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateCustomOrderCommandHandler_Handle_AddresseeNotFound(t *testing.T) {
	ctx := t.Context()
	addresseeID := kernel.NewUUID()
	cmd := newCreateCustomOrderCommand(t, &addresseeID)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, addresseeID).
		Return(nil, errs.NewObjectNotFoundError("userId", addresseeID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateCustomOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateCustomOrderCommand

	factory := new(MockCustomOrderUoWFactory)
	h := commands.NewCreateCustomOrderCommandHandler(factory)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCustomOrderCommand(t, nil)

	uow := new(MockUoW)
	factory := new(MockCustomOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateCustomOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateCustomOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCustomOrderCommand(t, nil)

	repo := new(MockCustomOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customorder.CustomOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
