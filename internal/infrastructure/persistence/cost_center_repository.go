package persistence

import (
	"context"
	"errors"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCostCenterRepository implements finance.CostCenterRepository using GORM
type GormCostCenterRepository struct {
	db *gorm.DB
}

// NewGormCostCenterRepository creates a new GORM-based cost center repository
func NewGormCostCenterRepository(db *gorm.DB) *GormCostCenterRepository {
	return &GormCostCenterRepository{db: db}
}

// FindByIDForCompany finds a cost center by ID within a company
func (r *GormCostCenterRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*finance.CostCenter, error) {
	var model models.CostCenterModel
	err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all cost centers for a company
func (r *GormCostCenterRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]finance.CostCenter, error) {
	var modelList []models.CostCenterModel
	query := r.db.WithContext(ctx).
		Model(&models.CostCenterModel{}).
		Scopes(tenant.CompanyScope(companyID))
	if err := applyFilter(query, filter, "name").Find(&modelList).Error; err != nil {
		return nil, err
	}

	costCenters := make([]finance.CostCenter, len(modelList))
	for i := range modelList {
		costCenters[i] = *modelList[i].ToDomain()
	}
	return costCenters, nil
}

// Save creates or updates a cost center
func (r *GormCostCenterRepository) Save(ctx context.Context, costCenter *finance.CostCenter) error {
	model := models.CostCenterModelFromDomain(costCenter)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes a cost center within a company
func (r *GormCostCenterRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.CostCenterModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
