package report

import (
	"context"
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period is a closed date interval used for dashboard windows
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the calendar-month period containing ref
func MonthOf(ref time.Time) Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// PreviousMonthOf returns the calendar-month period before the one
// containing ref
func PreviousMonthOf(ref time.Time) Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Period{
		Start: start.AddDate(0, -1, 0),
		End:   start.Add(-time.Nanosecond),
	}
}

// KPIValue pairs a current and previous period figure with the percent
// variation between them
type KPIValue struct {
	Current   decimal.Decimal
	Previous  decimal.Decimal
	Variation decimal.Decimal
}

// Counters holds entity counts for a company
type Counters struct {
	Customers int64
	Suppliers int64
	Invoices  int64
	Billings  int64
}

// DashboardRepository provides the aggregation queries the dashboard needs.
// All sums are scoped to a company; absent rows sum to zero.
type DashboardRepository interface {
	// SumPaidByPaymentDate sums paid transactions of the given type whose
	// payment date falls in the period
	SumPaidByPaymentDate(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType, period Period) (decimal.Decimal, error)

	// SumPending sums all pending transactions of the given type
	SumPending(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType) (decimal.Decimal, error)

	// SumPendingDueBy sums pending transactions of the given type due on or
	// before the deadline
	SumPendingDueBy(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType, deadline time.Time) (decimal.Decimal, error)

	// CountEntities counts customers, suppliers, invoices and billings
	CountEntities(ctx context.Context, companyID uuid.UUID) (Counters, error)
}

var hundred = decimal.NewFromInt(100)

// Variation computes the percent change from previous to current.
// A zero previous value yields 100 when the current value is positive and
// 0 otherwise, so a first month of activity reads as full growth.
func Variation(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// Margin computes profit over income as a percentage, 0 when there is no
// income
func Margin(profit, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(income).Mul(hundred)
}

// NewKPIValue builds a KPIValue with its variation filled in
func NewKPIValue(current, previous decimal.Decimal) KPIValue {
	return KPIValue{
		Current:   current,
		Previous:  previous,
		Variation: Variation(current, previous),
	}
}
