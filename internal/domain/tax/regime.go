package tax

import (
	"github.com/fingestor/backend/internal/domain/shared"
)

// Regime represents a Brazilian corporate tax regime
type Regime string

const (
	RegimeSimplesNacional Regime = "simples_nacional"
	RegimeLucroPresumido  Regime = "lucro_presumido"
)

// DisplayName returns the human-readable regime name
func (r Regime) DisplayName() string {
	switch r {
	case RegimeSimplesNacional:
		return "Simples Nacional"
	case RegimeLucroPresumido:
		return "Lucro Presumido"
	default:
		return string(r)
	}
}

// IsValid reports whether the regime is one of the recognized values
func (r Regime) IsValid() bool {
	return r == RegimeSimplesNacional || r == RegimeLucroPresumido
}

// ParseRegime validates and converts a raw regime value.
// Membership is checked here, at the boundary, so the calculator only ever
// sees one of the two recognized regimes.
func ParseRegime(s string) (Regime, error) {
	r := Regime(s)
	if !r.IsValid() {
		return "", shared.NewDomainError("INVALID_REGIME", "Tax regime must be 'simples_nacional' or 'lucro_presumido'")
	}
	return r, nil
}
