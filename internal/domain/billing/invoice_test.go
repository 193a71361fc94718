package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	issued := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates pending invoice", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), InvoiceTypeNFSE, "2026001", "1", issued, decimal.NewFromInt(5000))

		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusPending, inv.Status)
		assert.Nil(t, inv.CustomerID)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), InvoiceType("cte"), "1", "1", issued, decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), InvoiceTypeNFE, "", "1", issued, decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), InvoiceTypeNFE, "1", "1", issued, decimal.NewFromInt(-5))
		assert.Error(t, err)
	})
}

func TestInvoiceLifecycle(t *testing.T) {
	issued := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("approve pending invoice", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), InvoiceTypeNFE, "1", "1", issued, decimal.NewFromInt(100))
		require.NoError(t, err)

		require.NoError(t, inv.Approve())
		assert.Equal(t, InvoiceStatusApproved, inv.Status)

		assert.Error(t, inv.Approve())
	})

	t.Run("cancel is idempotent-rejecting", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), InvoiceTypeNFE, "1", "1", issued, decimal.NewFromInt(100))
		require.NoError(t, err)

		require.NoError(t, inv.Cancel())
		assert.Error(t, inv.Cancel())
	})
}
