package house_test

import (
	"testing"

	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, house.OffMarket.Validate())
	require.NoError(t, house.Available.Validate())
	require.NoError(t, house.Rented.Validate())
	require.ErrorIs(t, house.Status(7).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Available", house.Available.String())
	assert.Equal(t, "Unknown", house.Status(-1).String())
}

func TestNewUnit(t *testing.T) {
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	price := decimal.NewFromInt(2500)

	t.Run("valid", func(t *testing.T) {
		unit, err := house.NewUnit(id, ownerID, price, house.Available)

		require.NoError(t, err)
		assert.True(t, unit.ID().IsEqual(id))
		assert.True(t, unit.OwnerID().IsEqual(ownerID))
		assert.True(t, unit.Price().Equal(price))
		assert.True(t, unit.IsAvailable())
	})

	t.Run("rented unit is not available", func(t *testing.T) {
		unit, err := house.NewUnit(id, ownerID, price, house.Rented)

		require.NoError(t, err)
		assert.False(t, unit.IsAvailable())
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := house.NewUnit(id, ownerID, decimal.NewFromInt(-1), house.Available)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero owner id", func(t *testing.T) {
		_, err := house.NewUnit(id, kernel.UUID{}, price, house.Available)
		require.Error(t, err)
	})
}
