package billing

import (
	"time"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingStatus represents the payment state of a billing (boleto)
type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "pending"
	BillingStatusPaid      BillingStatus = "paid"
	BillingStatusCancelled BillingStatus = "cancelled"
)

// Billing represents a charge issued against a customer, typically a boleto
// with its bar code and digitable line.
type Billing struct {
	shared.TenantAggregateRoot
	CustomerID    uuid.UUID
	Amount        decimal.Decimal
	DueDate       time.Time
	Barcode       string
	DigitableLine string
	Status        BillingStatus
	PaymentDate   *time.Time
}

// NewBilling creates a new pending billing for a customer
func NewBilling(companyID, customerID uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*Billing, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Billing must reference a customer")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Billing amount must be greater than zero")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Billing due date is required")
	}

	return &Billing{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		CustomerID:          customerID,
		Amount:              amount,
		DueDate:             dueDate,
		Status:              BillingStatusPending,
	}, nil
}

// SetPaymentSlip attaches the generated bar code and digitable line
func (b *Billing) SetPaymentSlip(barcode, digitableLine string) {
	b.Barcode = barcode
	b.DigitableLine = digitableLine
	b.Touch()
	b.IncrementVersion()
}

// Pay marks the billing as paid on the given date
func (b *Billing) Pay(paymentDate time.Time) error {
	if b.Status == BillingStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Billing is already paid")
	}
	if b.Status == BillingStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled billing cannot be paid")
	}

	b.Status = BillingStatusPaid
	b.PaymentDate = &paymentDate
	b.Touch()
	b.IncrementVersion()

	return nil
}

// Cancel cancels a pending billing
func (b *Billing) Cancel() error {
	if b.Status != BillingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending billings can be cancelled")
	}

	b.Status = BillingStatusCancelled
	b.Touch()
	b.IncrementVersion()

	return nil
}
