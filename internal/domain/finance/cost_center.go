package finance

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CostCenter groups transactions for internal cost allocation.
type CostCenter struct {
	shared.TenantAggregateRoot
	Name string
}

// NewCostCenter creates a new cost center
func NewCostCenter(companyID uuid.UUID, name string) (*CostCenter, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Cost center name cannot be empty")
	}

	return &CostCenter{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
	}, nil
}

// Rename updates the cost center name
func (c *CostCenter) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Cost center name cannot be empty")
	}

	c.Name = name
	c.Touch()
	c.IncrementVersion()

	return nil
}
