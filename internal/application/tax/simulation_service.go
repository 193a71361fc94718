package tax

import (
	"context"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/domain/tax"
	"github.com/google/uuid"
)

// SimulationService runs tax simulations and keeps their history. Every
// successful simulation is persisted so companies can compare regimes over
// time.
type SimulationService struct {
	simulationRepo tax.SimulationRepository
}

// NewSimulationService creates a new SimulationService
func NewSimulationService(simulationRepo tax.SimulationRepository) *SimulationService {
	return &SimulationService{simulationRepo: simulationRepo}
}

// Simulate computes the tax breakdown for the given revenue and regime and
// records the simulation
func (s *SimulationService) Simulate(ctx context.Context, companyID uuid.UUID, req SimulateRequest) (*SimulationResponse, error) {
	regime, err := tax.ParseRegime(req.Regime)
	if err != nil {
		return nil, err
	}

	simulation, err := tax.NewSimulation(companyID, req.AnnualRevenue, regime)
	if err != nil {
		return nil, err
	}

	if err := s.simulationRepo.Save(ctx, simulation); err != nil {
		return nil, err
	}

	response := ToSimulationResponse(simulation)
	return &response, nil
}

// GetByID retrieves a stored simulation within the caller's company
func (s *SimulationService) GetByID(ctx context.Context, companyID, simulationID uuid.UUID) (*SimulationResponse, error) {
	simulation, err := s.simulationRepo.FindByIDForCompany(ctx, companyID, simulationID)
	if err != nil {
		return nil, err
	}

	response := ToSimulationResponse(simulation)
	return &response, nil
}

// List retrieves the simulation history for the caller's company, newest
// first
func (s *SimulationService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]SimulationResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	simulations, err := s.simulationRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.simulationRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SimulationResponse, len(simulations))
	for i := range simulations {
		responses[i] = ToSimulationResponse(&simulations[i])
	}
	return responses, total, nil
}
