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

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM-based invoice repository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByIDForCompany finds an invoice by ID within a company
func (r *GormInvoiceRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
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

// FindAllForCompany finds all invoices for a company.
// Filter.Filters supports exact matches on type and status.
func (r *GormInvoiceRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	var modelList []models.InvoiceModel
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Scopes(tenant.CompanyScope(companyID))

	for _, column := range []string{"type", "status"} {
		if value, ok := filter.Filters[column]; ok {
			query = query.Where(column+" = ?", value)
		}
	}

	if err := applyFilter(query, filter, "number").Find(&modelList).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(modelList))
	for i := range modelList {
		invoices[i] = *modelList[i].ToDomain()
	}
	return invoices, nil
}

// CountForCompany counts invoices for a company
func (r *GormInvoiceRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// ExistsByNumber checks number+series uniqueness in a company, optionally
// excluding one invoice
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, companyID uuid.UUID, number, series string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("number = ? AND series = ?", number, series)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes an invoice within a company
func (r *GormInvoiceRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
