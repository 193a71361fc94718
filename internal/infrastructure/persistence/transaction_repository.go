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

// GormTransactionRepository implements finance.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM-based transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByIDForCompany finds a transaction by ID within a company
func (r *GormTransactionRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*finance.Transaction, error) {
	var model models.TransactionModel
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

// FindAllForCompany finds all transactions for a company.
// Filter.Filters supports exact matches on type, status and account_id.
func (r *GormTransactionRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	var modelList []models.TransactionModel
	query := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Scopes(tenant.CompanyScope(companyID))

	for _, column := range []string{"type", "status", "account_id"} {
		if value, ok := filter.Filters[column]; ok {
			query = query.Where(column+" = ?", value)
		}
	}

	if err := applyFilter(query, filter, "description").Find(&modelList).Error; err != nil {
		return nil, err
	}

	transactions := make([]finance.Transaction, len(modelList))
	for i := range modelList {
		transactions[i] = *modelList[i].ToDomain()
	}
	return transactions, nil
}

// CountForCompany counts transactions for a company
func (r *GormTransactionRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, transaction *finance.Transaction) error {
	model := models.TransactionModelFromDomain(transaction)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes a transaction within a company
func (r *GormTransactionRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
