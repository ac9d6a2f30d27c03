package commands_test

import (
	"testing"

	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	o := waitingOrder(t, kernel.NewUUID(), tenantID, kernel.NewUUID())
	actor := testActor(t, tenantID, kernel.RoleTenant)
	cmd, _ := commands.NewCancelOrderCommand(o.ID(), actor)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCancelOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Canceled, canceled.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotTenant(t *testing.T) {
	ctx := t.Context()
	o := waitingOrder(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	stranger := testActor(t, kernel.NewUUID(), kernel.RoleTenant)
	cmd, _ := commands.NewCancelOrderCommand(o.ID(), stranger)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCancelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.WaitingPayment, o.Status())
}

func TestCancelOrderCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	o := paidOrder(t, kernel.NewUUID(), tenantID, kernel.NewUUID())
	actor := testActor(t, tenantID, kernel.RoleTenant)
	cmd, _ := commands.NewCancelOrderCommand(o.ID(), actor)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCancelOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	// A paid order keeps its status; refund is the only way out.
	assert.Equal(t, order.PaidWaitingConfirm, o.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
