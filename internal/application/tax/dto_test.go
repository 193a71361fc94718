package tax

import (
	"testing"

	"github.com/fingestor/backend/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBreakdownResponse_RoundsToCentavos(t *testing.T) {
	// 12345 at 6% gives 740.70 annual and 61.725 monthly, so the monthly
	// figure carries a third decimal until the response boundary rounds it.
	b, err := tax.Calculate(decimal.NewFromInt(12345), tax.RegimeSimplesNacional)
	require.NoError(t, err)
	require.Equal(t, "61.725", b.MonthlyTax.String())

	resp := ToBreakdownResponse(b)

	assert.Equal(t, "61.73", resp.MonthlyTax.String())
	assert.True(t, resp.TotalTax.Equal(decimal.RequireFromString("740.7")))
	assert.True(t, resp.NetIncome.Equal(decimal.RequireFromString("11604.3")))
	assert.True(t, resp.Components[tax.ComponentSimplesNacional].Equal(decimal.RequireFromString("740.7")))

	// The domain breakdown keeps full precision; only the response rounds.
	assert.Equal(t, "61.725", b.MonthlyTax.String())
}

func TestToBreakdownResponse_HalfUp(t *testing.T) {
	b := &tax.Breakdown{
		Regime:     tax.RegimeSimplesNacional,
		TotalTax:   decimal.RequireFromString("10.005"),
		MonthlyTax: decimal.RequireFromString("0.125"),
		Components: map[string]decimal.Decimal{},
	}

	resp := ToBreakdownResponse(b)

	assert.Equal(t, "10.01", resp.TotalTax.String())
	assert.Equal(t, "0.13", resp.MonthlyTax.String())
}
