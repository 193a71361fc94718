package finance

import (
	"context"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// CostCenterService handles cost center operations
type CostCenterService struct {
	costCenterRepo finance.CostCenterRepository
}

// NewCostCenterService creates a new CostCenterService
func NewCostCenterService(costCenterRepo finance.CostCenterRepository) *CostCenterService {
	return &CostCenterService{costCenterRepo: costCenterRepo}
}

// Create creates a new cost center
func (s *CostCenterService) Create(ctx context.Context, companyID uuid.UUID, req CreateCostCenterRequest) (*CostCenterResponse, error) {
	costCenter, err := finance.NewCostCenter(companyID, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.costCenterRepo.Save(ctx, costCenter); err != nil {
		return nil, err
	}

	response := ToCostCenterResponse(costCenter)
	return &response, nil
}

// GetByID retrieves a cost center by ID within the caller's company
func (s *CostCenterService) GetByID(ctx context.Context, companyID, costCenterID uuid.UUID) (*CostCenterResponse, error) {
	costCenter, err := s.costCenterRepo.FindByIDForCompany(ctx, companyID, costCenterID)
	if err != nil {
		return nil, err
	}

	response := ToCostCenterResponse(costCenter)
	return &response, nil
}

// List retrieves all cost centers for the caller's company
func (s *CostCenterService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]CostCenterResponse, error) {
	costCenters, err := s.costCenterRepo.FindAllForCompany(ctx, companyID, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]CostCenterResponse, len(costCenters))
	for i := range costCenters {
		responses[i] = ToCostCenterResponse(&costCenters[i])
	}
	return responses, nil
}

// Update applies a partial update to a cost center
func (s *CostCenterService) Update(ctx context.Context, companyID, costCenterID uuid.UUID, req UpdateCostCenterRequest) (*CostCenterResponse, error) {
	costCenter, err := s.costCenterRepo.FindByIDForCompany(ctx, companyID, costCenterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := costCenter.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if err := s.costCenterRepo.Save(ctx, costCenter); err != nil {
		return nil, err
	}

	response := ToCostCenterResponse(costCenter)
	return &response, nil
}

// Delete removes a cost center within the caller's company (hard delete)
func (s *CostCenterService) Delete(ctx context.Context, companyID, costCenterID uuid.UUID) error {
	if _, err := s.costCenterRepo.FindByIDForCompany(ctx, companyID, costCenterID); err != nil {
		return err
	}
	return s.costCenterRepo.DeleteForCompany(ctx, companyID, costCenterID)
}
