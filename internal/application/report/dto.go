package report

import (
	"github.com/fingestor/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// KPIResponse pairs a current and previous period figure with the percent
// variation between them
type KPIResponse struct {
	Current   decimal.Decimal `json:"current"`
	Previous  decimal.Decimal `json:"previous"`
	Variation decimal.Decimal `json:"variation"`
}

// FinancialKPIs holds the money-side dashboard figures
type FinancialKPIs struct {
	Revenue            KPIResponse     `json:"revenue"`
	Expenses           KPIResponse     `json:"expenses"`
	Profit             KPIResponse     `json:"profit"`
	Margin             KPIResponse     `json:"margin"`
	AccountsReceivable decimal.Decimal `json:"accounts_receivable"`
	AccountsPayable    decimal.Decimal `json:"accounts_payable"`
	ProjectedCashFlow  decimal.Decimal `json:"projected_cash_flow"`
}

// CountersResponse holds entity counts for a company
type CountersResponse struct {
	Customers int64 `json:"customers"`
	Suppliers int64 `json:"suppliers"`
	Invoices  int64 `json:"invoices"`
	Billings  int64 `json:"billings"`
}

// PeriodResponse labels the month windows the KPIs were computed over,
// formatted as YYYY-MM
type PeriodResponse struct {
	CurrentMonth  string `json:"current_month"`
	PreviousMonth string `json:"previous_month"`
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	FinancialKPIs FinancialKPIs    `json:"financial_kpis"`
	Counters      CountersResponse `json:"counters"`
	Period        PeriodResponse   `json:"period"`
}

func toKPIResponse(v report.KPIValue) KPIResponse {
	return KPIResponse{
		Current:   v.Current.Round(2),
		Previous:  v.Previous.Round(2),
		Variation: v.Variation.Round(2),
	}
}
