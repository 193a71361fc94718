package finance

import (
	"context"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Account, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Account, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	Save(ctx context.Context, account *Account) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Category, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// CostCenterRepository defines the interface for cost center persistence
type CostCenterRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*CostCenter, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]CostCenter, error)
	Save(ctx context.Context, costCenter *CostCenter) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Transaction, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Transaction, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	Save(ctx context.Context, transaction *Transaction) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}
