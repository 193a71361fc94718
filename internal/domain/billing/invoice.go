package billing

import (
	"strings"
	"time"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceType represents the fiscal document type
type InvoiceType string

const (
	InvoiceTypeNFE  InvoiceType = "nfe"  // goods
	InvoiceTypeNFSE InvoiceType = "nfse" // services
)

// IsValid reports whether the invoice type is recognized
func (t InvoiceType) IsValid() bool {
	return t == InvoiceTypeNFE || t == InvoiceTypeNFSE
}

// InvoiceStatus represents the processing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice represents a fiscal document (NF-e or NFS-e). Number and series
// together are unique within a company.
type Invoice struct {
	shared.TenantAggregateRoot
	Type       InvoiceType
	Number     string
	Series     string
	IssueDate  time.Time
	Amount     decimal.Decimal
	CustomerID *uuid.UUID
	SupplierID *uuid.UUID
	Status     InvoiceStatus
}

// NewInvoice creates a new pending invoice
func NewInvoice(companyID uuid.UUID, invoiceType InvoiceType, number, series string, issueDate time.Time, amount decimal.Decimal) (*Invoice, error) {
	if !invoiceType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invoice type must be 'nfe' or 'nfse'")
	}
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if strings.TrimSpace(series) == "" {
		return nil, shared.NewDomainError("INVALID_SERIES", "Invoice series cannot be empty")
	}
	if issueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ISSUE_DATE", "Invoice issue date is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be greater than zero")
	}

	return &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Type:                invoiceType,
		Number:              number,
		Series:              series,
		IssueDate:           issueDate,
		Amount:              amount,
		Status:              InvoiceStatusPending,
	}, nil
}

// SetCustomer links the invoice to a customer
func (i *Invoice) SetCustomer(customerID *uuid.UUID) {
	i.CustomerID = customerID
	i.Touch()
	i.IncrementVersion()
}

// SetSupplier links the invoice to a supplier
func (i *Invoice) SetSupplier(supplierID *uuid.UUID) {
	i.SupplierID = supplierID
	i.Touch()
	i.IncrementVersion()
}

// Approve marks a pending invoice as approved
func (i *Invoice) Approve() error {
	if i.Status != InvoiceStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending invoices can be approved")
	}

	i.Status = InvoiceStatusApproved
	i.Touch()
	i.IncrementVersion()

	return nil
}

// Cancel cancels the invoice
func (i *Invoice) Cancel() error {
	if i.Status == InvoiceStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Invoice is already cancelled")
	}

	i.Status = InvoiceStatusCancelled
	i.Touch()
	i.IncrementVersion()

	return nil
}
