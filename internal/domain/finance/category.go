package finance

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryType represents the direction a category classifies
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// IsValid reports whether the category type is recognized
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category classifies transactions as a kind of income or expense.
type Category struct {
	shared.TenantAggregateRoot
	Name string
	Type CategoryType
}

// NewCategory creates a new financial category
func NewCategory(companyID uuid.UUID, name string, categoryType CategoryType) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if !categoryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Category type must be 'income' or 'expense'")
	}

	return &Category{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Type:                categoryType,
	}, nil
}

// Rename updates the category name
func (c *Category) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}

	c.Name = name
	c.Touch()
	c.IncrementVersion()

	return nil
}
