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

// GormAccountRepository implements finance.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM-based account repository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByIDForCompany finds an account by ID within a company
func (r *GormAccountRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*finance.Account, error) {
	var model models.AccountModel
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

// FindAllForCompany finds all accounts for a company
func (r *GormAccountRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]finance.Account, error) {
	var modelList []models.AccountModel
	query := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Scopes(tenant.CompanyScope(companyID))
	if err := applyFilter(query, filter, "name").Find(&modelList).Error; err != nil {
		return nil, err
	}

	accounts := make([]finance.Account, len(modelList))
	for i := range modelList {
		accounts[i] = *modelList[i].ToDomain()
	}
	return accounts, nil
}

// CountForCompany counts accounts for a company
func (r *GormAccountRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Count(&count).Error
	return count, err
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *finance.Account) error {
	model := models.AccountModelFromDomain(account)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForCompany deletes an account within a company
func (r *GormAccountRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&models.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
