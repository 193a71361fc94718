package persistence

import (
	"context"
	"errors"

	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM-based supplier repository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByIDForCompany finds a supplier by ID within a company
func (r *GormSupplierRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
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

// FindByDocument finds a supplier by document within a company
func (r *GormSupplierRepository) FindByDocument(ctx context.Context, companyID uuid.UUID, doc string) (*partner.Supplier, error) {
	var model models.SupplierModel
	err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		First(&model, "document = ?", doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all suppliers for a company
func (r *GormSupplierRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]partner.Supplier, error) {
	var modelList []models.SupplierModel
	query := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Scopes(tenant.CompanyScope(companyID))
	if err := applyFilter(query, filter, "name", "document", "email").Find(&modelList).Error; err != nil {
		return nil, err
	}

	suppliers := make([]partner.Supplier, len(modelList))
	for i := range modelList {
		suppliers[i] = *modelList[i].ToDomain()
	}
	return suppliers, nil
}

// CountForCompany counts suppliers for a company
func (r *GormSupplierRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// ExistsByDocument checks if a supplier with the given document exists in
// the company, optionally excluding one supplier
func (r *GormSupplierRepository) ExistsByDocument(ctx context.Context, companyID uuid.UUID, doc string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("document = ?", doc)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	model := models.SupplierModelFromDomain(supplier)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes a supplier within a company
func (r *GormSupplierRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
