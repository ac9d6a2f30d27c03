package order_test

import (
	"strings"
	"testing"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(now),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		decimal.NewFromInt(3000),
		decimal.NewFromInt(3000),
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts waiting for payment", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.WaitingPayment, o.Status())
		assert.Nil(t, o.PaymentTime())
		assert.Empty(t, o.PaymentMethod())
		assert.Equal(t, 0, o.Version())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(100), decimal.Zero, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD1", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(-100), decimal.Zero, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero party ids", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD1", kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(100), decimal.Zero, time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Pay(t *testing.T) {
	t.Run("records payment details", func(t *testing.T) {
		o := newTestOrder(t)
		paidAt := time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC)

		require.NoError(t, o.Pay("WECHAT", paidAt))

		assert.Equal(t, order.PaidWaitingConfirm, o.Status())
		require.NotNil(t, o.PaymentTime())
		assert.Equal(t, paidAt, *o.PaymentTime())
		assert.Equal(t, "WECHAT", o.PaymentMethod())
		assert.Equal(t, paidAt, o.UpdatedAt())
	})

	t.Run("requires a method", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.Pay("", time.Now()), errs.ErrValueIsRequired)
		assert.Equal(t, order.WaitingPayment, o.Status())
	})

	t.Run("rejects paying twice", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay("CARD", time.Now()))

		require.ErrorIs(t, o.Pay("CARD", time.Now()), errs.ErrInvalidState)
	})
}

func TestOrder_Confirm(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Pay("CARD", time.Now()))

	require.NoError(t, o.Confirm(time.Now()))
	assert.Equal(t, order.Confirmed, o.Status())

	require.ErrorIs(t, o.Confirm(time.Now()), errs.ErrInvalidState)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("only before payment", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("rejected after payment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay("CARD", time.Now()))

		require.ErrorIs(t, o.Cancel(time.Now()), errs.ErrInvalidState)
		assert.Equal(t, order.PaidWaitingConfirm, o.Status())
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("only after payment", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.Refund(time.Now()), errs.ErrInvalidState)
		assert.Equal(t, order.WaitingPayment, o.Status())
	})

	t.Run("reverses a paid order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pay("CARD", time.Now()))

		require.NoError(t, o.Refund(time.Now()))
		assert.Equal(t, order.Refunded, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()
	paidAt := now.Add(time.Hour)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD17416000000001a2b",
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(1800), decimal.NewFromInt(1800),
		order.PaidWaitingConfirm, &paidAt, "ALIPAY", now, paidAt, 3,
	)

	require.NoError(t, err)
	assert.Equal(t, order.PaidWaitingConfirm, o.Status())
	assert.Equal(t, "ALIPAY", o.PaymentMethod())
	assert.Equal(t, 3, o.Version())

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD1", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(1), decimal.Zero, order.Status(42), nil, "", now, now, 0,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	no := order.NewOrderNumber(now)

	assert.True(t, strings.HasPrefix(no, "ORD"))
	assert.Contains(t, no, "1741608000000")
	// prefix + 13-digit millisecond timestamp + 4-char suffix
	assert.Len(t, no, 3+13+4)
	assert.NotEqual(t, no, order.NewOrderNumber(now))
}
