package billing

import (
	"time"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBillingRequest represents a request to create a billing
type CreateBillingRequest struct {
	CustomerID    uuid.UUID
	Amount        decimal.Decimal
	DueDate       time.Time
	Barcode       string
	DigitableLine string
}

// UpdateBillingRequest represents a partial billing update
type UpdateBillingRequest struct {
	Barcode       *string
	DigitableLine *string
}

// PayBillingRequest carries the settlement date for a billing payment.
// A nil date means "now".
type PayBillingRequest struct {
	PaymentDate *time.Time
}

// BillingResponse represents a billing in API responses
type BillingResponse struct {
	ID            uuid.UUID       `json:"id"`
	CompanyID     uuid.UUID       `json:"company_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	Barcode       string          `json:"barcode"`
	DigitableLine string          `json:"digitable_line"`
	Status        string          `json:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	Type       string
	Number     string
	Series     string
	IssueDate  time.Time
	Amount     decimal.Decimal
	CustomerID *uuid.UUID
	SupplierID *uuid.UUID
}

// UpdateInvoiceRequest represents a partial invoice update
type UpdateInvoiceRequest struct {
	CustomerID    *uuid.UUID
	ClearCustomer bool
	SupplierID    *uuid.UUID
	ClearSupplier bool
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	CompanyID  uuid.UUID       `json:"company_id"`
	Type       string          `json:"type"`
	Number     string          `json:"number"`
	Series     string          `json:"series"`
	IssueDate  time.Time       `json:"issue_date"`
	Amount     decimal.Decimal `json:"amount"`
	CustomerID *uuid.UUID      `json:"customer_id,omitempty"`
	SupplierID *uuid.UUID      `json:"supplier_id,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ListFilter represents pagination and filtering parameters for billing listings
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]interface{}
}

// ToBillingResponse converts a domain billing to its response form
func ToBillingResponse(b *billing.Billing) BillingResponse {
	return BillingResponse{
		ID:            b.ID,
		CompanyID:     b.CompanyID,
		CustomerID:    b.CustomerID,
		Amount:        b.Amount.Round(2),
		DueDate:       b.DueDate,
		Barcode:       b.Barcode,
		DigitableLine: b.DigitableLine,
		Status:        string(b.Status),
		PaymentDate:   b.PaymentDate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToInvoiceResponse converts a domain invoice to its response form
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         i.ID,
		CompanyID:  i.CompanyID,
		Type:       string(i.Type),
		Number:     i.Number,
		Series:     i.Series,
		IssueDate:  i.IssueDate,
		Amount:     i.Amount.Round(2),
		CustomerID: i.CustomerID,
		SupplierID: i.SupplierID,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
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
