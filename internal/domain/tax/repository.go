package tax

import (
	"context"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SimulationRepository defines the interface for tax simulation persistence.
// Simulations are append-only: there is deliberately no update or delete.
type SimulationRepository interface {
	// FindByIDForCompany finds a simulation by ID within a company
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Simulation, error)

	// FindAllForCompany finds all simulations for a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Simulation, error)

	// CountForCompany counts simulations for a company
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)

	// Save persists a new simulation
	Save(ctx context.Context, simulation *Simulation) error
}
