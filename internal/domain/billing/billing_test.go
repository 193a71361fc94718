package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBilling(t *testing.T) {
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates pending billing", func(t *testing.T) {
		b, err := NewBilling(uuid.New(), uuid.New(), decimal.NewFromInt(350), due)

		require.NoError(t, err)
		assert.Equal(t, BillingStatusPending, b.Status)
		assert.Nil(t, b.PaymentDate)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := NewBilling(uuid.New(), uuid.Nil, decimal.NewFromInt(350), due)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewBilling(uuid.New(), uuid.New(), decimal.Zero, due)
		assert.Error(t, err)
	})
}

func TestBillingLifecycle(t *testing.T) {
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pay sets payment date", func(t *testing.T) {
		b, err := NewBilling(uuid.New(), uuid.New(), decimal.NewFromInt(350), due)
		require.NoError(t, err)

		paid := due.AddDate(0, 0, -2)
		require.NoError(t, b.Pay(paid))
		assert.Equal(t, BillingStatusPaid, b.Status)
		assert.Equal(t, paid, *b.PaymentDate)

		assert.Error(t, b.Pay(paid))
	})

	t.Run("cancelled billing cannot be paid", func(t *testing.T) {
		b, err := NewBilling(uuid.New(), uuid.New(), decimal.NewFromInt(350), due)
		require.NoError(t, err)

		require.NoError(t, b.Cancel())
		assert.Error(t, b.Pay(due))
	})

	t.Run("only pending billings can be cancelled", func(t *testing.T) {
		b, err := NewBilling(uuid.New(), uuid.New(), decimal.NewFromInt(350), due)
		require.NoError(t, err)
		require.NoError(t, b.Pay(due))

		assert.Error(t, b.Cancel())
	})
}
