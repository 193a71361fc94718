package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVariation(t *testing.T) {
	t.Run("both zero yields zero", func(t *testing.T) {
		assert.True(t, Variation(decimal.Zero, decimal.Zero).IsZero())
	})

	t.Run("growth from zero yields one hundred", func(t *testing.T) {
		assert.True(t, Variation(d("500"), decimal.Zero).Equal(d("100")))
	})

	t.Run("regular percent change", func(t *testing.T) {
		assert.True(t, Variation(d("150"), d("100")).Equal(d("50")))
		assert.True(t, Variation(d("50"), d("100")).Equal(d("-50")))
	})
}

func TestMargin(t *testing.T) {
	t.Run("zero income yields zero margin", func(t *testing.T) {
		assert.True(t, Margin(d("100"), decimal.Zero).IsZero())
	})

	t.Run("profit over income", func(t *testing.T) {
		assert.True(t, Margin(d("25"), d("100")).Equal(d("25")))
	})

	t.Run("negative profit yields negative margin", func(t *testing.T) {
		assert.True(t, Margin(d("-50"), d("100")).Equal(d("-50")))
	})
}

func TestMonthOf(t *testing.T) {
	ref := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)

	current := MonthOf(ref)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), current.Start)
	assert.Equal(t, time.August, current.End.Month())
	assert.Equal(t, 31, current.End.Day())

	previous := PreviousMonthOf(ref)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, time.July, previous.End.Month())
	assert.Equal(t, 31, previous.End.Day())
}

func TestNewKPIValue(t *testing.T) {
	v := NewKPIValue(d("200"), d("100"))

	assert.True(t, v.Current.Equal(d("200")))
	assert.True(t, v.Previous.Equal(d("100")))
	assert.True(t, v.Variation.Equal(d("100")))
}
