package partner

import (
	"context"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByIDForCompany finds a supplier by ID within a company
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Supplier, error)

	// FindByDocument finds a supplier by document within a company
	FindByDocument(ctx context.Context, companyID uuid.UUID, doc string) (*Supplier, error)

	// FindAllForCompany finds all suppliers for a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Supplier, error)

	// CountForCompany counts suppliers for a company
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)

	// ExistsByDocument checks if a supplier with the given document exists
	// in the company, optionally excluding one supplier (for updates)
	ExistsByDocument(ctx context.Context, companyID uuid.UUID, doc string, excludeID uuid.UUID) (bool, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// DeleteForCompany deletes a supplier within a company
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}
