package billing

import (
	"context"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillingRepository defines the interface for billing persistence
type BillingRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Billing, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Billing, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	Save(ctx context.Context, billing *Billing) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Invoice, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Invoice, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)

	// ExistsByNumber checks number+series uniqueness in a company,
	// optionally excluding one invoice (for updates)
	ExistsByNumber(ctx context.Context, companyID uuid.UUID, number, series string, excludeID uuid.UUID) (bool, error)

	Save(ctx context.Context, invoice *Invoice) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}
