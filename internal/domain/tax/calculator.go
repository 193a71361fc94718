package tax

import (
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Breakdown component keys
const (
	ComponentSimplesNacional = "simples_nacional"
	ComponentIRPJ            = "irpj"
	ComponentCSLL            = "csll"
	ComponentPIS             = "pis"
	ComponentCOFINS          = "cofins"
)

// Lucro Presumido parameters. The 32% presumption is the services rate;
// the activity type is not configurable.
var (
	presumedProfitRate = decimal.NewFromFloat(0.32)
	irpjBaseCeiling    = decimal.NewFromInt(240000)
	irpjRate           = decimal.NewFromFloat(0.15)
	irpjSurtaxRate     = decimal.NewFromFloat(0.10)
	csllRate           = decimal.NewFromFloat(0.09)
	pisRate            = decimal.NewFromFloat(0.0065)
	cofinsRate         = decimal.NewFromFloat(0.03)
)

// simplesBracket is one row of the Simples Nacional revenue table.
type simplesBracket struct {
	upperBound decimal.Decimal // annual revenue ceiling, inclusive
	rate       decimal.Decimal
}

// Simplified Simples Nacional table. The selected rate applies to the whole
// revenue, not marginally per band. This reproduces the behavior of the
// official simplified table as used upstream; it is NOT true progressive
// banding, and changing it to marginal blending would change every result.
var simplesBrackets = []simplesBracket{
	{decimal.NewFromInt(180000), decimal.NewFromFloat(0.06)},
	{decimal.NewFromInt(360000), decimal.NewFromFloat(0.112)},
	{decimal.NewFromInt(720000), decimal.NewFromFloat(0.135)},
	{decimal.NewFromInt(1800000), decimal.NewFromFloat(0.16)},
	{decimal.NewFromInt(3600000), decimal.NewFromFloat(0.21)},
}

// Rate above the last bracket ceiling.
var simplesTopRate = decimal.NewFromFloat(0.33)

var twelve = decimal.NewFromInt(12)

// Breakdown is the itemized result of a tax simulation. All amounts are
// annual unless stated otherwise. Components always sum to TotalTax and
// NetIncome is exactly AnnualRevenue - TotalTax.
type Breakdown struct {
	Regime         Regime
	AnnualRevenue  decimal.Decimal
	TaxRate        decimal.Decimal // effective (Simples) or marginal IRPJ-base rate, in percent
	PresumedProfit decimal.Decimal // Lucro Presumido only, zero otherwise
	TotalTax       decimal.Decimal
	NetIncome      decimal.Decimal
	MonthlyTax     decimal.Decimal
	Components     map[string]decimal.Decimal
}

// Calculate computes the itemized tax breakdown for an annual revenue under
// the given regime. It is a pure function: no side effects, deterministic
// for identical input. Revenue must be strictly positive and the regime must
// be one of the two recognized values; both are rejected here even though
// callers validate first.
func Calculate(revenue decimal.Decimal, regime Regime) (*Breakdown, error) {
	if !revenue.IsPositive() {
		return nil, shared.NewDomainError("INVALID_REVENUE", "Annual revenue must be greater than zero")
	}

	switch regime {
	case RegimeSimplesNacional:
		return calculateSimplesNacional(revenue), nil
	case RegimeLucroPresumido:
		return calculateLucroPresumido(revenue), nil
	default:
		return nil, shared.NewDomainError("INVALID_REGIME", "Tax regime must be 'simples_nacional' or 'lucro_presumido'")
	}
}

// calculateSimplesNacional applies the single bracket rate to the whole
// revenue: the first bracket (ascending) whose ceiling covers the revenue
// wins, and revenue beyond the table falls into the top rate.
func calculateSimplesNacional(revenue decimal.Decimal) *Breakdown {
	rate := simplesTopRate
	for _, b := range simplesBrackets {
		if revenue.LessThanOrEqual(b.upperBound) {
			rate = b.rate
			break
		}
	}

	totalTax := revenue.Mul(rate)

	return &Breakdown{
		Regime:        RegimeSimplesNacional,
		AnnualRevenue: revenue,
		TaxRate:       rate.Mul(decimal.NewFromInt(100)),
		TotalTax:      totalTax,
		NetIncome:     revenue.Sub(totalTax),
		MonthlyTax:    totalTax.Div(twelve),
		Components: map[string]decimal.Decimal{
			ComponentSimplesNacional: totalTax,
		},
	}
}

// calculateLucroPresumido computes the four federal taxes over the presumed
// profit (IRPJ with its 10% surtax above the 240k base ceiling, CSLL) and
// over the gross revenue (PIS, COFINS).
func calculateLucroPresumido(revenue decimal.Decimal) *Breakdown {
	presumedProfit := revenue.Mul(presumedProfitRate)

	irpjBase := decimal.Min(presumedProfit, irpjBaseCeiling)
	irpj := irpjBase.Mul(irpjRate)
	if presumedProfit.GreaterThan(irpjBaseCeiling) {
		irpj = irpj.Add(presumedProfit.Sub(irpjBaseCeiling).Mul(irpjSurtaxRate))
	}

	csll := presumedProfit.Mul(csllRate)
	pis := revenue.Mul(pisRate)
	cofins := revenue.Mul(cofinsRate)

	totalTax := irpj.Add(csll).Add(pis).Add(cofins)

	return &Breakdown{
		Regime:         RegimeLucroPresumido,
		AnnualRevenue:  revenue,
		TaxRate:        irpjRate.Mul(decimal.NewFromInt(100)),
		PresumedProfit: presumedProfit,
		TotalTax:       totalTax,
		NetIncome:      revenue.Sub(totalTax),
		MonthlyTax:     totalTax.Div(twelve),
		Components: map[string]decimal.Decimal{
			ComponentIRPJ:   irpj,
			ComponentCSLL:   csll,
			ComponentPIS:    pis,
			ComponentCOFINS: cofins,
		},
	}
}
