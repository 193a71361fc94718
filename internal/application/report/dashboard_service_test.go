package report

import (
	"context"
	"testing"
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/fingestor/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) SumPaidByPaymentDate(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType, period report.Period) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, txType, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) SumPending(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, txType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) SumPendingDueBy(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType, deadline time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, txType, deadline)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) CountEntities(ctx context.Context, companyID uuid.UUID) (report.Counters, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(report.Counters), args.Error(1)
}

func TestDashboardService_KPIs(t *testing.T) {
	companyID := uuid.New()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	currentMonth := report.MonthOf(now)
	previousMonth := report.PreviousMonthOf(now)

	repo := new(MockDashboardRepository)
	service := NewDashboardService(repo)
	service.now = func() time.Time { return now }

	d := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeIncome, currentMonth).Return(d(10000), nil)
	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeIncome, previousMonth).Return(d(8000), nil)
	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeExpense, currentMonth).Return(d(6000), nil)
	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeExpense, previousMonth).Return(d(6000), nil)
	repo.On("SumPending", mock.Anything, companyID, finance.TransactionTypeIncome).Return(d(1200), nil)
	repo.On("SumPending", mock.Anything, companyID, finance.TransactionTypeExpense).Return(d(700), nil)
	repo.On("SumPendingDueBy", mock.Anything, companyID, finance.TransactionTypeIncome, now.Add(projectionWindow)).Return(d(900), nil)
	repo.On("SumPendingDueBy", mock.Anything, companyID, finance.TransactionTypeExpense, now.Add(projectionWindow)).Return(d(400), nil)
	repo.On("CountEntities", mock.Anything, companyID).Return(report.Counters{Customers: 3, Suppliers: 2, Invoices: 5, Billings: 4}, nil)

	resp, err := service.KPIs(context.Background(), companyID)
	require.NoError(t, err)

	assert.True(t, resp.FinancialKPIs.Revenue.Current.Equal(d(10000)))
	assert.True(t, resp.FinancialKPIs.Revenue.Variation.Equal(d(25)))
	assert.True(t, resp.FinancialKPIs.Expenses.Variation.IsZero())

	// profit 4000 vs 2000 -> +100%
	assert.True(t, resp.FinancialKPIs.Profit.Current.Equal(d(4000)))
	assert.True(t, resp.FinancialKPIs.Profit.Variation.Equal(d(100)))

	// margin 40% vs 25%, variation is the simple difference
	assert.True(t, resp.FinancialKPIs.Margin.Current.Equal(d(40)))
	assert.True(t, resp.FinancialKPIs.Margin.Previous.Equal(d(25)))
	assert.True(t, resp.FinancialKPIs.Margin.Variation.Equal(d(15)))

	assert.True(t, resp.FinancialKPIs.AccountsReceivable.Equal(d(1200)))
	assert.True(t, resp.FinancialKPIs.AccountsPayable.Equal(d(700)))
	assert.True(t, resp.FinancialKPIs.ProjectedCashFlow.Equal(d(500)))

	assert.Equal(t, int64(3), resp.Counters.Customers)
	assert.Equal(t, "2026-08", resp.Period.CurrentMonth)
	assert.Equal(t, "2026-07", resp.Period.PreviousMonth)
}

func TestDashboardService_KPIs_FirstMonthOfActivity(t *testing.T) {
	companyID := uuid.New()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	repo := new(MockDashboardRepository)
	service := NewDashboardService(repo)
	service.now = func() time.Time { return now }

	zero := decimal.Zero
	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeIncome, report.MonthOf(now)).Return(decimal.NewFromInt(5000), nil)
	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeIncome, report.PreviousMonthOf(now)).Return(zero, nil)
	repo.On("SumPaidByPaymentDate", mock.Anything, companyID, finance.TransactionTypeExpense, mock.Anything).Return(zero, nil)
	repo.On("SumPending", mock.Anything, companyID, mock.Anything).Return(zero, nil)
	repo.On("SumPendingDueBy", mock.Anything, companyID, mock.Anything, mock.Anything).Return(zero, nil)
	repo.On("CountEntities", mock.Anything, companyID).Return(report.Counters{}, nil)

	resp, err := service.KPIs(context.Background(), companyID)
	require.NoError(t, err)

	// no previous activity reads as full growth
	assert.True(t, resp.FinancialKPIs.Revenue.Variation.Equal(decimal.NewFromInt(100)))
	// zero previous expenses with zero current stays at zero
	assert.True(t, resp.FinancialKPIs.Expenses.Variation.IsZero())
	// margin 100% this month, variation is the difference from 0
	assert.True(t, resp.FinancialKPIs.Margin.Current.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.FinancialKPIs.Margin.Variation.Equal(decimal.NewFromInt(100)))
}
