package persistence

import (
	"context"
	"errors"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBillingRepository implements billing.BillingRepository using GORM
type GormBillingRepository struct {
	db *gorm.DB
}

// NewGormBillingRepository creates a new GORM-based billing repository
func NewGormBillingRepository(db *gorm.DB) *GormBillingRepository {
	return &GormBillingRepository{db: db}
}

// FindByIDForCompany finds a billing by ID within a company
func (r *GormBillingRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*billing.Billing, error) {
	var model models.BillingModel
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

// FindAllForCompany finds all billings for a company.
// Filter.Filters supports exact matches on status and customer_id.
func (r *GormBillingRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]billing.Billing, error) {
	var modelList []models.BillingModel
	query := r.db.WithContext(ctx).
		Model(&models.BillingModel{}).
		Scopes(tenant.CompanyScope(companyID))

	for _, column := range []string{"status", "customer_id"} {
		if value, ok := filter.Filters[column]; ok {
			query = query.Where(column+" = ?", value)
		}
	}

	if err := applyFilter(query, filter).Find(&modelList).Error; err != nil {
		return nil, err
	}

	billings := make([]billing.Billing, len(modelList))
	for i := range modelList {
		billings[i] = *modelList[i].ToDomain()
	}
	return billings, nil
}

// CountForCompany counts billings for a company
func (r *GormBillingRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BillingModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// Save creates or updates a billing
func (r *GormBillingRepository) Save(ctx context.Context, b *billing.Billing) error {
	model := models.BillingModelFromDomain(b)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes a billing within a company
func (r *GormBillingRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.BillingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
