package report

import (
	"context"
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/fingestor/backend/internal/domain/report"
	"github.com/google/uuid"
)

const projectionWindow = 30 * 24 * time.Hour

// DashboardService aggregates the company dashboard. Month windows are
// calendar months around the injected clock, so figures are reproducible in
// tests.
type DashboardService struct {
	dashboardRepo report.DashboardRepository
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo report.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// KPIs computes the dashboard figures for the caller's company. Revenue and
// expenses compare the current calendar month against the previous one by
// payment date; margin variation is the difference of margins rather than a
// percent change.
func (s *DashboardService) KPIs(ctx context.Context, companyID uuid.UUID) (*DashboardResponse, error) {
	now := s.now()
	currentMonth := report.MonthOf(now)
	previousMonth := report.PreviousMonthOf(now)

	currentIncome, err := s.dashboardRepo.SumPaidByPaymentDate(ctx, companyID, finance.TransactionTypeIncome, currentMonth)
	if err != nil {
		return nil, err
	}
	previousIncome, err := s.dashboardRepo.SumPaidByPaymentDate(ctx, companyID, finance.TransactionTypeIncome, previousMonth)
	if err != nil {
		return nil, err
	}
	currentExpense, err := s.dashboardRepo.SumPaidByPaymentDate(ctx, companyID, finance.TransactionTypeExpense, currentMonth)
	if err != nil {
		return nil, err
	}
	previousExpense, err := s.dashboardRepo.SumPaidByPaymentDate(ctx, companyID, finance.TransactionTypeExpense, previousMonth)
	if err != nil {
		return nil, err
	}

	currentProfit := currentIncome.Sub(currentExpense)
	previousProfit := previousIncome.Sub(previousExpense)
	currentMargin := report.Margin(currentProfit, currentIncome)
	previousMargin := report.Margin(previousProfit, previousIncome)

	receivable, err := s.dashboardRepo.SumPending(ctx, companyID, finance.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	payable, err := s.dashboardRepo.SumPending(ctx, companyID, finance.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	deadline := now.Add(projectionWindow)
	projectedIn, err := s.dashboardRepo.SumPendingDueBy(ctx, companyID, finance.TransactionTypeIncome, deadline)
	if err != nil {
		return nil, err
	}
	projectedOut, err := s.dashboardRepo.SumPendingDueBy(ctx, companyID, finance.TransactionTypeExpense, deadline)
	if err != nil {
		return nil, err
	}

	counters, err := s.dashboardRepo.CountEntities(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		FinancialKPIs: FinancialKPIs{
			Revenue:  toKPIResponse(report.NewKPIValue(currentIncome, previousIncome)),
			Expenses: toKPIResponse(report.NewKPIValue(currentExpense, previousExpense)),
			Profit:   toKPIResponse(report.NewKPIValue(currentProfit, previousProfit)),
			Margin: KPIResponse{
				Current:   currentMargin.Round(2),
				Previous:  previousMargin.Round(2),
				Variation: currentMargin.Sub(previousMargin).Round(2),
			},
			AccountsReceivable: receivable.Round(2),
			AccountsPayable:    payable.Round(2),
			ProjectedCashFlow:  projectedIn.Sub(projectedOut).Round(2),
		},
		Counters: CountersResponse{
			Customers: counters.Customers,
			Suppliers: counters.Suppliers,
			Invoices:  counters.Invoices,
			Billings:  counters.Billings,
		},
		Period: PeriodResponse{
			CurrentMonth:  currentMonth.Start.Format("2006-01"),
			PreviousMonth: previousMonth.Start.Format("2006-01"),
		},
	}, nil
}
