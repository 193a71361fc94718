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

// GormCategoryRepository implements finance.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM-based category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByIDForCompany finds a category by ID within a company
func (r *GormCategoryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*finance.Category, error) {
	var model models.CategoryModel
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

// FindAllForCompany finds all categories for a company.
// Filter.Filters supports an exact match on type.
func (r *GormCategoryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]finance.Category, error) {
	var modelList []models.CategoryModel
	query := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Scopes(tenant.CompanyScope(companyID))
	if value, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", value)
	}
	if err := applyFilter(query, filter, "name").Find(&modelList).Error; err != nil {
		return nil, err
	}

	categories := make([]finance.Category, len(modelList))
	for i := range modelList {
		categories[i] = *modelList[i].ToDomain()
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *finance.Category) error {
	model := models.CategoryModelFromDomain(category)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes a category within a company
func (r *GormCategoryRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
