package tax

import (
	"time"

	"github.com/fingestor/backend/internal/domain/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimulateRequest represents a tax simulation request
type SimulateRequest struct {
	AnnualRevenue decimal.Decimal
	Regime        string
}

// BreakdownResponse is the itemized tax result in API responses. Component
// amounts are keyed by tax name (e.g. "irpj", "cofins").
type BreakdownResponse struct {
	Regime         string                     `json:"regime"`
	RegimeName     string                     `json:"regime_name"`
	AnnualRevenue  decimal.Decimal            `json:"annual_revenue"`
	TaxRate        decimal.Decimal            `json:"tax_rate"`
	PresumedProfit decimal.Decimal            `json:"presumed_profit"`
	TotalTax       decimal.Decimal            `json:"total_tax"`
	NetIncome      decimal.Decimal            `json:"net_income"`
	MonthlyTax     decimal.Decimal            `json:"monthly_tax"`
	Components     map[string]decimal.Decimal `json:"components"`
}

// SimulationResponse represents a stored simulation in API responses
type SimulationResponse struct {
	ID            uuid.UUID         `json:"id"`
	CompanyID     uuid.UUID         `json:"company_id"`
	AnnualRevenue decimal.Decimal   `json:"annual_revenue"`
	Regime        string            `json:"regime"`
	Result        BreakdownResponse `json:"result"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ListFilter represents pagination parameters for simulation listings
type ListFilter struct {
	Page     int
	PageSize int
}

// ToBreakdownResponse converts a domain breakdown to its response form.
// Monetary amounts are rounded half-up to centavos; the rate keeps its
// full precision.
func ToBreakdownResponse(b *tax.Breakdown) BreakdownResponse {
	components := make(map[string]decimal.Decimal, len(b.Components))
	for name, amount := range b.Components {
		components[name] = amount.Round(2)
	}
	return BreakdownResponse{
		Regime:         string(b.Regime),
		RegimeName:     b.Regime.DisplayName(),
		AnnualRevenue:  b.AnnualRevenue.Round(2),
		TaxRate:        b.TaxRate,
		PresumedProfit: b.PresumedProfit.Round(2),
		TotalTax:       b.TotalTax.Round(2),
		NetIncome:      b.NetIncome.Round(2),
		MonthlyTax:     b.MonthlyTax.Round(2),
		Components:     components,
	}
}

// ToSimulationResponse converts a domain simulation to its response form
func ToSimulationResponse(s *tax.Simulation) SimulationResponse {
	return SimulationResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		AnnualRevenue: s.AnnualRevenue.Round(2),
		Regime:        string(s.Regime),
		Result:        ToBreakdownResponse(&s.Result),
		CreatedAt:     s.CreatedAt,
	}
}
