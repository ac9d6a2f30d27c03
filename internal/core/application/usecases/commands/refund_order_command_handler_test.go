package commands_test

import (
	"testing"

	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/ledger"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefundOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	landlordID := kernel.NewUUID()
	o := paidOrder(t, kernel.NewUUID(), tenantID, landlordID)
	actor := testActor(t, tenantID, kernel.RoleTenant)
	cmd, _ := commands.NewRefundOrderCommand(o.ID(), actor)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockSettlementUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("LedgerRepository").Return(ledgerRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()

	var entries []ledger.Entry
	ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("ledger.Entry")).
		Run(func(args mock.Arguments) {
			entries = append(entries, args.Get(1).(ledger.Entry))
		}).Return(nil).Twice()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundOrderCommandHandler(factory)
	refunded, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Refunded, refunded.Status())

	// The refund pair mirrors the payment pair: landlord pays, tenant receives.
	require.Len(t, entries, 2)
	expense, income := entries[0], entries[1]
	assert.Equal(t, ledger.Expense, expense.Direction())
	assert.Equal(t, landlordID, expense.UserID())
	assert.Equal(t, ledger.Income, income.Direction())
	assert.Equal(t, tenantID, income.UserID())
	assert.True(t, expense.Amount().Equal(income.Amount()))

	orderRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefundOrderCommandHandler_Handle_NotPaidYet(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	o := waitingOrder(t, kernel.NewUUID(), tenantID, kernel.NewUUID())
	actor := testActor(t, tenantID, kernel.RoleTenant)
	cmd, _ := commands.NewRefundOrderCommand(o.ID(), actor)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	// No money moved, so no ledger entries may appear.
	ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assert.Equal(t, order.WaitingPayment, o.Status())
}

func TestRefundOrderCommandHandler_Handle_NotTenant(t *testing.T) {
	ctx := t.Context()
	landlordID := kernel.NewUUID()
	o := paidOrder(t, kernel.NewUUID(), kernel.NewUUID(), landlordID)
	actor := testActor(t, landlordID, kernel.RoleLandlord)
	cmd, _ := commands.NewRefundOrderCommand(o.ID(), actor)

	orderRepo := new(MockOrderRepository)
	uow := new(MockSettlementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.PaidWaitingConfirm, o.Status())
}
