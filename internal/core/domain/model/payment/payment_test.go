package payment_test

import (
	"testing"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/payment"
	"hotelpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	orderID := kernel.NewUUID()
	staffID := kernel.NewUUID()

	t.Run("should create a completed cash payment", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), orderID, 2484, payment.Cash, payment.Completed, staffID, time.Now())

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, kernel.Money(2484), p.Amount())
		assert.True(t, p.IsCompleted())
	})

	t.Run("should reject a zero amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), orderID, 0, payment.Cash, payment.Completed, staffID, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should collect every problem", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.UUID{}, kernel.UUID{}, 10, payment.UnknownMethod, payment.UnknownStatus, kernel.UUID{}, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "method is invalid")
		assert.Contains(t, err.Error(), "payment status is invalid")
		assert.Contains(t, err.Error(), "processed by")
	})

	t.Run("should keep reference and notes trimmed", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), orderID, 100, payment.Credit, payment.Pending, staffID, time.Now())
		require.NoError(t, err)

		p.SetTransactionReference(" TX-991 ")
		p.SetNotes("split later ")

		assert.Equal(t, "TX-991", p.TransactionReference())
		assert.Equal(t, "split later", p.Notes())
		assert.False(t, p.IsCompleted())
	})
}

func TestPayment_Settle(t *testing.T) {
	pending := func(t *testing.T) *payment.Payment {
		t.Helper()
		p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 1500, payment.Debit, payment.Pending, kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		return p
	}

	t.Run("should complete a pending payment", func(t *testing.T) {
		p := pending(t)

		require.NoError(t, p.Settle(payment.Completed))
		assert.True(t, p.IsCompleted())
	})

	t.Run("should fail a pending payment", func(t *testing.T) {
		p := pending(t)

		require.NoError(t, p.Settle(payment.Failed))
		assert.Equal(t, payment.Failed, p.Status())
	})

	t.Run("should not settle back to pending", func(t *testing.T) {
		p := pending(t)

		err := p.Settle(payment.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, payment.Pending, p.Status())
	})

	t.Run("should not settle twice", func(t *testing.T) {
		p := pending(t)
		require.NoError(t, p.Settle(payment.Failed))

		err := p.Settle(payment.Completed)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, payment.Failed, p.Status())
	})
}

func TestParseMethod(t *testing.T) {
	for _, m := range payment.AllMethods() {
		parsed, err := payment.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "room-charge", payment.RoomCharge.String())

	_, err := payment.ParseMethod("mpesa")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	for _, s := range payment.AllStatuses() {
		parsed, err := payment.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := payment.ParseStatus("refunded")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
