package finance

import (
	"strings"
	"time"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is recognized
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// TransactionStatus represents the payment state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusOverdue TransactionStatus = "overdue"
)

// Transaction represents a single income or expense entry. The amount is
// strictly positive; the direction comes from Type. The only state change
// the system performs is paying a pending or overdue transaction.
type Transaction struct {
	shared.TenantAggregateRoot
	AccountID    uuid.UUID
	Type         TransactionType
	Description  string
	Amount       decimal.Decimal
	DueDate      time.Time
	PaymentDate  *time.Time
	Status       TransactionStatus
	CategoryID   *uuid.UUID
	CostCenterID *uuid.UUID
}

// NewTransaction creates a new pending transaction
func NewTransaction(companyID, accountID uuid.UUID, txType TransactionType, description string, amount decimal.Decimal, dueDate time.Time) (*Transaction, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Transaction must reference an account")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Transaction type must be 'income' or 'expense'")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be greater than zero")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Transaction due date is required")
	}

	return &Transaction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		AccountID:           accountID,
		Type:                txType,
		Description:         description,
		Amount:              amount,
		DueDate:             dueDate,
		Status:              TransactionStatusPending,
	}, nil
}

// Pay marks the transaction as paid on the given date. Paying an already
// paid transaction is rejected.
func (t *Transaction) Pay(paymentDate time.Time) error {
	if t.Status == TransactionStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Transaction is already paid")
	}

	t.Status = TransactionStatusPaid
	t.PaymentDate = &paymentDate
	t.Touch()
	t.IncrementVersion()

	return nil
}

// MarkOverdue flags a pending transaction whose due date has passed
func (t *Transaction) MarkOverdue(now time.Time) error {
	if t.Status != TransactionStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending transactions can become overdue")
	}
	if !t.DueDate.Before(now) {
		return shared.NewDomainError("INVALID_STATE", "Transaction is not past due")
	}

	t.Status = TransactionStatusOverdue
	t.Touch()
	t.IncrementVersion()

	return nil
}

// SetDescription updates the description
func (t *Transaction) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}

	t.Description = description
	t.Touch()
	t.IncrementVersion()

	return nil
}

// SetAmount updates the amount, keeping it strictly positive
func (t *Transaction) SetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be greater than zero")
	}

	t.Amount = amount
	t.Touch()
	t.IncrementVersion()

	return nil
}

// SetDueDate updates the due date
func (t *Transaction) SetDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return shared.NewDomainError("INVALID_DUE_DATE", "Transaction due date is required")
	}

	t.DueDate = dueDate
	t.Touch()
	t.IncrementVersion()

	return nil
}

// SetCategory assigns or clears the category reference
func (t *Transaction) SetCategory(categoryID *uuid.UUID) {
	t.CategoryID = categoryID
	t.Touch()
	t.IncrementVersion()
}

// SetCostCenter assigns or clears the cost center reference
func (t *Transaction) SetCostCenter(costCenterID *uuid.UUID) {
	t.CostCenterID = costCenterID
	t.Touch()
	t.IncrementVersion()
}

// IsPaid reports whether the transaction has been paid
func (t *Transaction) IsPaid() bool {
	return t.Status == TransactionStatusPaid
}
