package tax

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulation(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates simulation with computed breakdown", func(t *testing.T) {
		sim, err := NewSimulation(companyID, d("100000"), RegimeSimplesNacional)

		require.NoError(t, err)
		assert.Equal(t, companyID, sim.CompanyID)
		assert.Equal(t, RegimeSimplesNacional, sim.Regime)
		assert.True(t, sim.AnnualRevenue.Equal(d("100000")))
		assert.True(t, sim.Result.TotalTax.Equal(d("6000")))
		assert.NotEqual(t, uuid.Nil, sim.ID)
	})

	t.Run("fails for non-positive revenue", func(t *testing.T) {
		sim, err := NewSimulation(companyID, d("0"), RegimeSimplesNacional)

		assert.Error(t, err)
		assert.Nil(t, sim)
	})

	t.Run("fails for unknown regime", func(t *testing.T) {
		sim, err := NewSimulation(companyID, d("100000"), Regime("mei"))

		assert.Error(t, err)
		assert.Nil(t, sim)
	})
}
