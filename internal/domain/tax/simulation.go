package tax

import (
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulation is a persisted tax simulation. It records the revenue and
// regime a company asked about together with the computed breakdown, and is
// immutable once created: there is no update path, only creation and reads,
// so past simulations stay intact for auditing.
type Simulation struct {
	shared.TenantAggregateRoot
	AnnualRevenue decimal.Decimal
	Regime        Regime
	Result        Breakdown
}

// NewSimulation runs the calculator for the given revenue and regime and
// wraps the result in a company-scoped aggregate.
func NewSimulation(companyID uuid.UUID, revenue decimal.Decimal, regime Regime) (*Simulation, error) {
	result, err := Calculate(revenue, regime)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		AnnualRevenue:       revenue,
		Regime:              regime,
		Result:              *result,
	}, nil
}
