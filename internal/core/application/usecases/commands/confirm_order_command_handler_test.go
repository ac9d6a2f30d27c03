package commands_test

import (
	"errors"
	"testing"
	"time"

	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/core/domain/services"
	"renthub/internal/core/ports"
	"renthub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type confirmFixture struct {
	tenantID   kernel.UUID
	landlordID kernel.UUID
	unit       house.Unit
	order      *order.Order

	orderRepo *MockOrderRepository
	leaseRepo *MockLeaseRepository
	inventory *MockHouseInventory
	directory *MockUserDirectory
	renderer  *MockDocumentRenderer
	uow       *MockConfirmOrderUoW
	factory   *MockConfirmOrderUoWFactory
}

func newConfirmFixture(t *testing.T) *confirmFixture {
	t.Helper()
	f := &confirmFixture{
		tenantID:   kernel.NewUUID(),
		landlordID: kernel.NewUUID(),
		orderRepo:  new(MockOrderRepository),
		leaseRepo:  new(MockLeaseRepository),
		inventory:  new(MockHouseInventory),
		directory:  new(MockUserDirectory),
		renderer:   new(MockDocumentRenderer),
		uow:        new(MockConfirmOrderUoW),
		factory:    new(MockConfirmOrderUoWFactory),
	}
	f.unit = testUnit(t, f.landlordID, house.Available)
	f.order = paidOrder(t, f.unit.ID(), f.tenantID, f.landlordID)

	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("HouseInventory").Return(f.inventory)
	f.uow.On("LeaseRepository").Return(f.leaseRepo)
	f.uow.On("UserDirectory").Return(f.directory)
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func (f *confirmFixture) handler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(
		f.factory,
		services.NewLeaseFactory(services.DefaultLeaseTermMonths),
		f.renderer,
		time.Second,
		discardLogger(),
	)
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	actor := testActor(t, f.landlordID, kernel.RoleLandlord)
	cmd, _ := commands.NewConfirmOrderCommand(f.order.ID(), actor)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.inventory.On("GetUnit", mock.Anything, f.unit.ID()).Return(f.unit, nil).Once()
	f.inventory.On("SetUnitStatus", mock.Anything, f.unit.ID(), house.Rented).Return(nil).Once()
	f.directory.On("GetUser", mock.Anything, f.tenantID).
		Return(ports.UserSnapshot{ID: f.tenantID, Name: "Tenant T", Phone: "100"}, nil).Once()
	f.directory.On("GetUser", mock.Anything, f.landlordID).
		Return(ports.UserSnapshot{ID: f.landlordID, Name: "Landlord L", Phone: "200"}, nil).Once()
	f.renderer.On("Render", mock.Anything, mock.AnythingOfType("ports.LeaseSnapshot")).
		Return("contracts/abc.pdf", nil).Once()
	f.leaseRepo.On("Add", mock.Anything, mock.AnythingOfType("*lease.LeaseRecord")).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, f.order).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := f.handler()
	o, l, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Confirmed, o.Status())
	assert.Equal(t, lease.StatusActive, l.Status())
	assert.Equal(t, o.ID(), l.OrderID())
	assert.Equal(t, f.unit.ID(), l.HouseID())
	assert.Equal(t, f.tenantID, l.TenantID())
	assert.Equal(t, f.landlordID, l.LandlordID())
	assert.True(t, l.RentAmount().Equal(f.unit.Price()))
	assert.Equal(t, lease.CycleMonthly, l.PaymentCycle())
	assert.Equal(t, "contracts/abc.pdf", l.ContractLocator())
	assert.Equal(t, l.StartDate().AddDate(0, services.DefaultLeaseTermMonths, 0), l.EndDate())

	f.orderRepo.AssertExpectations(t)
	f.leaseRepo.AssertExpectations(t)
	f.inventory.AssertExpectations(t)
	f.renderer.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_AdminMayConfirm(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	admin := testActor(t, kernel.NewUUID(), kernel.RoleAdmin)
	cmd, _ := commands.NewConfirmOrderCommand(f.order.ID(), admin)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.inventory.On("GetUnit", mock.Anything, f.unit.ID()).Return(f.unit, nil).Once()
	f.inventory.On("SetUnitStatus", mock.Anything, f.unit.ID(), house.Rented).Return(nil).Once()
	f.directory.On("GetUser", mock.Anything, mock.Anything).
		Return(ports.UserSnapshot{ID: f.tenantID, Name: "User", Phone: "1"}, nil).Twice()
	f.renderer.On("Render", mock.Anything, mock.Anything).Return("contracts/x.pdf", nil).Once()
	f.leaseRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, f.order).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := f.handler()
	_, _, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestConfirmOrderCommandHandler_Handle_NotLandlord(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	tenant := testActor(t, f.tenantID, kernel.RoleTenant)
	cmd, _ := commands.NewConfirmOrderCommand(f.order.ID(), tenant)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()

	h := f.handler()
	_, _, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.PaidWaitingConfirm, f.order.Status())
	f.leaseRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_NotPaid(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	unpaid := waitingOrder(t, f.unit.ID(), f.tenantID, f.landlordID)
	actor := testActor(t, f.landlordID, kernel.RoleLandlord)
	cmd, _ := commands.NewConfirmOrderCommand(unpaid.ID(), actor)

	f.orderRepo.On("Get", mock.Anything, unpaid.ID()).Return(unpaid, nil).Once()

	h := f.handler()
	_, _, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_RenderFailureDegrades(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	actor := testActor(t, f.landlordID, kernel.RoleLandlord)
	cmd, _ := commands.NewConfirmOrderCommand(f.order.ID(), actor)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.inventory.On("GetUnit", mock.Anything, f.unit.ID()).Return(f.unit, nil).Once()
	f.inventory.On("SetUnitStatus", mock.Anything, f.unit.ID(), house.Rented).Return(nil).Once()
	f.directory.On("GetUser", mock.Anything, mock.Anything).
		Return(ports.UserSnapshot{ID: f.tenantID, Name: "User", Phone: "1"}, nil).Twice()
	f.renderer.On("Render", mock.Anything, mock.Anything).
		Return("", errors.New("renderer down")).Once()
	f.leaseRepo.On("Add", mock.Anything, mock.AnythingOfType("*lease.LeaseRecord")).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, f.order).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := f.handler()
	o, l, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The confirmation sticks; only the document is missing.
	assert.Equal(t, order.Confirmed, o.Status())
	assert.False(t, l.HasContract())
	f.uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_MissingUnitIsIntegrityFailure(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	actor := testActor(t, f.landlordID, kernel.RoleLandlord)
	cmd, _ := commands.NewConfirmOrderCommand(f.order.ID(), actor)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.inventory.On("GetUnit", mock.Anything, f.unit.ID()).
		Return(house.Unit{}, errs.NewObjectNotFoundError("house", f.unit.ID().String())).Once()

	h := f.handler()
	_, _, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDataIntegrity)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_MissingUserIsIntegrityFailure(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	actor := testActor(t, f.landlordID, kernel.RoleLandlord)
	cmd, _ := commands.NewConfirmOrderCommand(f.order.ID(), actor)

	f.orderRepo.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.inventory.On("GetUnit", mock.Anything, f.unit.ID()).Return(f.unit, nil).Once()
	f.inventory.On("SetUnitStatus", mock.Anything, f.unit.ID(), house.Rented).Return(nil).Once()
	f.directory.On("GetUser", mock.Anything, f.tenantID).
		Return(ports.UserSnapshot{}, errs.NewObjectNotFoundError("user", f.tenantID.String())).Once()

	h := f.handler()
	_, _, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDataIntegrity)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
