package partner

import (
	"context"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByIDForCompany finds a customer by ID within a company
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Customer, error)

	// FindByDocument finds a customer by document within a company
	FindByDocument(ctx context.Context, companyID uuid.UUID, doc string) (*Customer, error)

	// FindAllForCompany finds all customers for a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Customer, error)

	// CountForCompany counts customers for a company
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)

	// ExistsByDocument checks if a customer with the given document exists
	// in the company, optionally excluding one customer (for updates)
	ExistsByDocument(ctx context.Context, companyID uuid.UUID, doc string, excludeID uuid.UUID) (bool, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// DeleteForCompany deletes a customer within a company
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}
