package commands_test

import (
	"testing"
	"time"

	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteExpiredLeasesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	asOf := time.Now().UTC()
	first := activeLease(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	second := activeLease(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewCompleteExpiredLeasesCommand(asOf)
	require.NoError(t, err)

	leaseRepo := new(MockLeaseRepository)
	uow := new(MockLeaseUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LeaseRepository").Return(leaseRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	leaseRepo.On("GetAllActiveExpired", mock.Anything, asOf).
		Return([]*lease.LeaseRecord{first, second}, nil).Once()
	leaseRepo.On("Update", mock.Anything, mock.AnythingOfType("*lease.LeaseRecord")).Return(nil).Twice()

	factory := new(MockLeaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteExpiredLeasesCommandHandler(factory, discardLogger())
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	assert.Equal(t, lease.StatusEnded, first.Status())
	assert.Equal(t, lease.StatusEnded, second.Status())
	require.NotNil(t, first.ActualEndDate())
	assert.Equal(t, asOf, *first.ActualEndDate())

	leaseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteExpiredLeasesCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()
	asOf := time.Now().UTC()
	cmd, err := commands.NewCompleteExpiredLeasesCommand(asOf)
	require.NoError(t, err)

	leaseRepo := new(MockLeaseRepository)
	uow := new(MockLeaseUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LeaseRepository").Return(leaseRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	leaseRepo.On("GetAllActiveExpired", mock.Anything, asOf).
		Return([]*lease.LeaseRecord{}, nil).Once()

	factory := new(MockLeaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteExpiredLeasesCommandHandler(factory, discardLogger())
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, completed)
	leaseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewCompleteExpiredLeasesCommand_ZeroTime(t *testing.T) {
	_, err := commands.NewCompleteExpiredLeasesCommand(time.Time{})
	require.Error(t, err)
}
