package models

import (
	"encoding/json"
	"fmt"

	"github.com/fingestor/backend/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// SimulationModel is the persistence model for a tax Simulation.
// The itemized component map is stored as a JSON document because it is
// only ever read back whole, never queried by key.
type SimulationModel struct {
	TenantAggregateModel
	AnnualRevenue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Regime         string          `gorm:"type:varchar(30);not null"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	PresumedProfit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalTax       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetIncome      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyTax     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Components     string          `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (SimulationModel) TableName() string {
	return "tax_simulations"
}

// ToDomain converts the persistence model to a domain Simulation
func (m *SimulationModel) ToDomain() (*tax.Simulation, error) {
	components := map[string]decimal.Decimal{}
	if m.Components != "" {
		if err := json.Unmarshal([]byte(m.Components), &components); err != nil {
			return nil, fmt.Errorf("decode simulation components: %w", err)
		}
	}

	sim := &tax.Simulation{
		AnnualRevenue: m.AnnualRevenue,
		Regime:        tax.Regime(m.Regime),
		Result: tax.Breakdown{
			Regime:         tax.Regime(m.Regime),
			AnnualRevenue:  m.AnnualRevenue,
			TaxRate:        m.TaxRate,
			PresumedProfit: m.PresumedProfit,
			TotalTax:       m.TotalTax,
			NetIncome:      m.NetIncome,
			MonthlyTax:     m.MonthlyTax,
			Components:     components,
		},
	}
	m.PopulateTenantAggregateRoot(&sim.TenantAggregateRoot)
	return sim, nil
}

// SimulationModelFromDomain builds the persistence model from a domain Simulation
func SimulationModelFromDomain(s *tax.Simulation) (*SimulationModel, error) {
	// Monetary columns are stored rounded half-up to centavos; the rate
	// keeps the four decimals its column allows.
	rounded := make(map[string]decimal.Decimal, len(s.Result.Components))
	for name, amount := range s.Result.Components {
		rounded[name] = amount.Round(2)
	}
	components, err := json.Marshal(rounded)
	if err != nil {
		return nil, fmt.Errorf("encode simulation components: %w", err)
	}

	model := &SimulationModel{
		AnnualRevenue:  s.AnnualRevenue.Round(2),
		Regime:         string(s.Regime),
		TaxRate:        s.Result.TaxRate.Round(4),
		PresumedProfit: s.Result.PresumedProfit.Round(2),
		TotalTax:       s.Result.TotalTax.Round(2),
		NetIncome:      s.Result.NetIncome.Round(2),
		MonthlyTax:     s.Result.MonthlyTax.Round(2),
		Components:     string(components),
	}
	model.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	return model, nil
}
