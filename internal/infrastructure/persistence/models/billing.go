package models

import (
	"time"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingModel is the persistence model for the Billing aggregate
type BillingModel struct {
	TenantAggregateModel
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate       time.Time       `gorm:"not null;index"`
	Barcode       string          `gorm:"type:varchar(100)"`
	DigitableLine string          `gorm:"type:varchar(100)"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	PaymentDate   *time.Time
}

// TableName returns the table name for GORM
func (BillingModel) TableName() string {
	return "billings"
}

// ToDomain converts the persistence model to a domain Billing
func (m *BillingModel) ToDomain() *billing.Billing {
	b := &billing.Billing{
		CustomerID:    m.CustomerID,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		Barcode:       m.Barcode,
		DigitableLine: m.DigitableLine,
		Status:        billing.BillingStatus(m.Status),
		PaymentDate:   m.PaymentDate,
	}
	m.PopulateTenantAggregateRoot(&b.TenantAggregateRoot)
	return b
}

// BillingModelFromDomain builds the persistence model from a domain Billing
func BillingModelFromDomain(b *billing.Billing) *BillingModel {
	model := &BillingModel{
		CustomerID:    b.CustomerID,
		Amount:        b.Amount.Round(2),
		DueDate:       b.DueDate,
		Barcode:       b.Barcode,
		DigitableLine: b.DigitableLine,
		Status:        string(b.Status),
		PaymentDate:   b.PaymentDate,
	}
	model.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	return model
}

// InvoiceModel is the persistence model for the Invoice aggregate
type InvoiceModel struct {
	TenantAggregateModel
	Type       string          `gorm:"type:varchar(10);not null"`
	Number     string          `gorm:"type:varchar(50);not null;index:idx_invoices_company_number_series"`
	Series     string          `gorm:"type:varchar(20);not null;index:idx_invoices_company_number_series"`
	IssueDate  time.Time       `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CustomerID *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierID *uuid.UUID      `gorm:"type:uuid;index"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		Type:       billing.InvoiceType(m.Type),
		Number:     m.Number,
		Series:     m.Series,
		IssueDate:  m.IssueDate,
		Amount:     m.Amount,
		CustomerID: m.CustomerID,
		SupplierID: m.SupplierID,
		Status:     billing.InvoiceStatus(m.Status),
	}
	m.PopulateTenantAggregateRoot(&inv.TenantAggregateRoot)
	return inv
}

// InvoiceModelFromDomain builds the persistence model from a domain Invoice
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	model := &InvoiceModel{
		Type:       string(i.Type),
		Number:     i.Number,
		Series:     i.Series,
		IssueDate:  i.IssueDate,
		Amount:     i.Amount.Round(2),
		CustomerID: i.CustomerID,
		SupplierID: i.SupplierID,
		Status:     string(i.Status),
	}
	model.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	return model
}
