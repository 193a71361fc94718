package persistence

import (
	"context"
	"errors"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/domain/tax"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSimulationRepository implements tax.SimulationRepository using GORM.
// Simulations are append-only, so there is no update or delete path.
type GormSimulationRepository struct {
	db *gorm.DB
}

// NewGormSimulationRepository creates a new GORM-based simulation repository
func NewGormSimulationRepository(db *gorm.DB) *GormSimulationRepository {
	return &GormSimulationRepository{db: db}
}

// FindByIDForCompany finds a simulation by ID within a company
func (r *GormSimulationRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*tax.Simulation, error) {
	var model models.SimulationModel
	err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAllForCompany finds all simulations for a company
func (r *GormSimulationRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]tax.Simulation, error) {
	var modelList []models.SimulationModel
	query := r.db.WithContext(ctx).
		Model(&models.SimulationModel{}).
		Scopes(tenant.CompanyScope(companyID))
	if err := applyFilter(query, filter).Find(&modelList).Error; err != nil {
		return nil, err
	}

	simulations := make([]tax.Simulation, len(modelList))
	for i := range modelList {
		sim, err := modelList[i].ToDomain()
		if err != nil {
			return nil, err
		}
		simulations[i] = *sim
	}
	return simulations, nil
}

// CountForCompany counts simulations for a company
func (r *GormSimulationRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SimulationModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// Save persists a new simulation
func (r *GormSimulationRepository) Save(ctx context.Context, simulation *tax.Simulation) error {
	model, err := models.SimulationModelFromDomain(simulation)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}
