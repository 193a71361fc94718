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

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM-based customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDForCompany finds a customer by ID within a company
func (r *GormCustomerRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
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

// FindByDocument finds a customer by document within a company
func (r *GormCustomerRepository) FindByDocument(ctx context.Context, companyID uuid.UUID, doc string) (*partner.Customer, error) {
	var model models.CustomerModel
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

// FindAllForCompany finds all customers for a company
func (r *GormCustomerRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var modelList []models.CustomerModel
	query := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Scopes(tenant.CompanyScope(companyID))
	if err := applyFilter(query, filter, "name", "document", "email").Find(&modelList).Error; err != nil {
		return nil, err
	}

	customers := make([]partner.Customer, len(modelList))
	for i := range modelList {
		customers[i] = *modelList[i].ToDomain()
	}
	return customers, nil
}

// CountForCompany counts customers for a company
func (r *GormCustomerRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// ExistsByDocument checks if a customer with the given document exists in
// the company, optionally excluding one customer
func (r *GormCustomerRepository) ExistsByDocument(ctx context.Context, companyID uuid.UUID, doc string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
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

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes a customer within a company
func (r *GormCustomerRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
