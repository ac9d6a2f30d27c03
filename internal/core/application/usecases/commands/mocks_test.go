package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/core/domain/model/ledger"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLeaseRepository struct{ mock.Mock }

func (m *MockLeaseRepository) Add(ctx context.Context, l *lease.LeaseRecord) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeaseRepository) Update(ctx context.Context, l *lease.LeaseRecord) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeaseRepository) Get(ctx context.Context, id kernel.UUID) (*lease.LeaseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lease.LeaseRecord), args.Error(1)
}

func (m *MockLeaseRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*lease.LeaseRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lease.LeaseRecord), args.Error(1)
}

func (m *MockLeaseRepository) GetAllActiveExpired(ctx context.Context, asOf time.Time) ([]*lease.LeaseRecord, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lease.LeaseRecord), args.Error(1)
}

func (m *MockLeaseRepository) GetAllMissingContract(ctx context.Context) ([]*lease.LeaseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lease.LeaseRecord), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, entry ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]ledger.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

type MockHouseInventory struct{ mock.Mock }

func (m *MockHouseInventory) GetUnit(ctx context.Context, id kernel.UUID) (house.Unit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(house.Unit), args.Error(1)
}

func (m *MockHouseInventory) SetUnitStatus(ctx context.Context, id kernel.UUID, status house.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.UserSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.UserSnapshot), args.Error(1)
}

type MockDocumentRenderer struct{ mock.Mock }

func (m *MockDocumentRenderer) Render(ctx context.Context, snapshot ports.LeaseSnapshot) (string, error) {
	args := m.Called(ctx, snapshot)
	return args.String(0), args.Error(1)
}

// txMock implements the transaction lifecycle shared by every UoW mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCreateOrderUoW struct{ txMock }

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) HouseInventory() ports.HouseInventory {
	args := m.Called()
	return args.Get(0).(ports.HouseInventory)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockSettlementUoW struct{ txMock }

func (m *MockSettlementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSettlementUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockCancelOrderUoW struct{ txMock }

func (m *MockCancelOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCancelOrderUoWFactory struct{ mock.Mock }

func (m *MockCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelOrderUoW)
}

type MockConfirmOrderUoW struct{ txMock }

func (m *MockConfirmOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockConfirmOrderUoW) HouseInventory() ports.HouseInventory {
	args := m.Called()
	return args.Get(0).(ports.HouseInventory)
}

func (m *MockConfirmOrderUoW) LeaseRepository() ports.LeaseRepository {
	args := m.Called()
	return args.Get(0).(ports.LeaseRepository)
}

func (m *MockConfirmOrderUoW) UserDirectory() ports.UserDirectory {
	args := m.Called()
	return args.Get(0).(ports.UserDirectory)
}

type MockConfirmOrderUoWFactory struct{ mock.Mock }

func (m *MockConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfirmOrderUoW)
}

type MockLeaseUoW struct{ txMock }

func (m *MockLeaseUoW) LeaseRepository() ports.LeaseRepository {
	args := m.Called()
	return args.Get(0).(ports.LeaseRepository)
}

type MockLeaseUoWFactory struct{ mock.Mock }

func (m *MockLeaseUoWFactory) Create() commands.LeaseUoW {
	args := m.Called()
	return args.Get(0).(commands.LeaseUoW)
}

type MockContractUoW struct{ txMock }

func (m *MockContractUoW) LeaseRepository() ports.LeaseRepository {
	args := m.Called()
	return args.Get(0).(ports.LeaseRepository)
}

func (m *MockContractUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockContractUoW) UserDirectory() ports.UserDirectory {
	args := m.Called()
	return args.Get(0).(ports.UserDirectory)
}

type MockContractUoWFactory struct{ mock.Mock }

func (m *MockContractUoWFactory) Create() commands.ContractUoW {
	args := m.Called()
	return args.Get(0).(commands.ContractUoW)
}

func testActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func testUnit(t *testing.T, ownerID kernel.UUID, status house.Status) house.Unit {
	t.Helper()
	unit, err := house.NewUnit(kernel.NewUUID(), ownerID, decimal.NewFromInt(1500), status)
	require.NoError(t, err)
	return unit
}

func waitingOrder(t *testing.T, houseID, tenantID, landlordID kernel.UUID) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewOrderNumber(now),
		houseID, tenantID, landlordID,
		decimal.NewFromInt(1500), decimal.NewFromInt(1500), now)
	require.NoError(t, err)
	return o
}

func paidOrder(t *testing.T, houseID, tenantID, landlordID kernel.UUID) *order.Order {
	t.Helper()
	o := waitingOrder(t, houseID, tenantID, landlordID)
	require.NoError(t, o.Pay("WECHAT", time.Now().UTC()))
	return o
}

func activeLease(t *testing.T, orderID, houseID, tenantID, landlordID kernel.UUID) *lease.LeaseRecord {
	t.Helper()
	now := time.Now().UTC()
	start := now.Truncate(24 * time.Hour)
	l, err := lease.NewLeaseRecord(
		kernel.NewUUID(), orderID, houseID, tenantID, landlordID,
		start, start.AddDate(0, 12, 0),
		decimal.NewFromInt(1500), lease.CycleMonthly, now)
	require.NoError(t, err)
	return l
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
