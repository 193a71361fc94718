package identity

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// FindByID finds a company by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindByCNPJ finds a company by its CNPJ (digits only)
	FindByCNPJ(ctx context.Context, cnpj string) (*Company, error)

	// ExistsByCNPJ checks if a company with the given CNPJ exists
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)

	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error
}
