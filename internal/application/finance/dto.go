package finance

import (
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents a request to create a financial account
type CreateAccountRequest struct {
	Name string
	Type string
}

// UpdateAccountRequest represents a partial account update
type UpdateAccountRequest struct {
	Name    *string
	Balance *decimal.Decimal
}

// AccountResponse represents a financial account in API responses
type AccountResponse struct {
	ID        uuid.UUID       `json:"id"`
	CompanyID uuid.UUID       `json:"company_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string
	Type string
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name *string
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCostCenterRequest represents a request to create a cost center
type CreateCostCenterRequest struct {
	Name string
}

// UpdateCostCenterRequest represents a partial cost center update
type UpdateCostCenterRequest struct {
	Name *string
}

// CostCenterResponse represents a cost center in API responses
type CostCenterResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTransactionRequest represents a request to create a transaction
type CreateTransactionRequest struct {
	AccountID    uuid.UUID
	Type         string
	Description  string
	Amount       decimal.Decimal
	DueDate      time.Time
	CategoryID   *uuid.UUID
	CostCenterID *uuid.UUID
}

// UpdateTransactionRequest represents a partial transaction update.
// Reference fields distinguish "leave alone" (nil) from "clear" via
// ClearCategory / ClearCostCenter.
type UpdateTransactionRequest struct {
	Description     *string
	Amount          *decimal.Decimal
	DueDate         *time.Time
	CategoryID      *uuid.UUID
	ClearCategory   bool
	CostCenterID    *uuid.UUID
	ClearCostCenter bool
}

// PayTransactionRequest carries the settlement date for a payment. A nil
// date means "now".
type PayTransactionRequest struct {
	PaymentDate *time.Time
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID           uuid.UUID       `json:"id"`
	CompanyID    uuid.UUID       `json:"company_id"`
	AccountID    uuid.UUID       `json:"account_id"`
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"due_date"`
	PaymentDate  *time.Time      `json:"payment_date,omitempty"`
	Status       string          `json:"status"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CostCenterID *uuid.UUID      `json:"cost_center_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ListFilter represents pagination and filtering parameters for finance listings
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]interface{}
}

// ToAccountResponse converts a domain account to its response form
func ToAccountResponse(a *finance.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance.Round(2),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToCategoryResponse converts a domain category to its response form
func ToCategoryResponse(c *finance.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCostCenterResponse converts a domain cost center to its response form
func ToCostCenterResponse(c *finance.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToTransactionResponse converts a domain transaction to its response form
func ToTransactionResponse(t *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		CompanyID:    t.CompanyID,
		AccountID:    t.AccountID,
		Type:         string(t.Type),
		Description:  t.Description,
		Amount:       t.Amount.Round(2),
		DueDate:      t.DueDate,
		PaymentDate:  t.PaymentDate,
		Status:       string(t.Status),
		CategoryID:   t.CategoryID,
		CostCenterID: t.CostCenterID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (f ListFilter) normalized() (int, int) {
	page := f.Page
	if page <= 0 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	return page, pageSize
}
