package models

import (
	"strings"
	"testing"
	"time"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/domain/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monetary columns are decimal(15,2); the mappers round half-up so sqlite,
// where the column type is not enforced, stores the same centavo values
// postgres would.

func TestTransactionModelFromDomain_RoundsAmount(t *testing.T) {
	tx := &finance.Transaction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(uuid.New()),
		AccountID:           uuid.New(),
		Type:                finance.TransactionTypeIncome,
		Description:         "Consulting fee",
		Amount:              decimal.RequireFromString("10.005"),
		DueDate:             time.Now(),
		Status:              finance.TransactionStatusPending,
	}

	model := TransactionModelFromDomain(tx)

	assert.Equal(t, "10.01", model.Amount.String())
}

func TestAccountModelFromDomain_RoundsBalance(t *testing.T) {
	account := &finance.Account{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(uuid.New()),
		Name:                "Caixa",
		Type:                finance.AccountTypeCash,
		Balance:             decimal.RequireFromString("99.994"),
	}

	model := AccountModelFromDomain(account)

	assert.Equal(t, "99.99", model.Balance.String())
}

func TestBillingModelFromDomain_RoundsAmount(t *testing.T) {
	b := &billing.Billing{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(uuid.New()),
		CustomerID:          uuid.New(),
		Amount:              decimal.RequireFromString("250.555"),
		DueDate:             time.Now(),
		Status:              billing.BillingStatusPending,
	}

	model := BillingModelFromDomain(b)

	assert.Equal(t, "250.56", model.Amount.String())
}

func TestSimulationModelFromDomain_RoundsMonetaryColumns(t *testing.T) {
	sim, err := tax.NewSimulation(uuid.New(), decimal.NewFromInt(12345), tax.RegimeSimplesNacional)
	require.NoError(t, err)
	require.Equal(t, "61.725", sim.Result.MonthlyTax.String())

	model, err := SimulationModelFromDomain(sim)
	require.NoError(t, err)

	assert.Equal(t, "61.73", model.MonthlyTax.String())
	assert.True(t, model.TotalTax.Equal(decimal.RequireFromString("740.7")))
	assert.True(t, strings.Contains(model.Components, "740.7"))
	assert.False(t, strings.Contains(model.Components, "61.725"))
}
