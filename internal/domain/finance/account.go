package finance

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of financial account
type AccountType string

const (
	AccountTypeBank AccountType = "bank"
	AccountTypeCash AccountType = "cash"
)

// IsValid reports whether the account type is recognized
func (t AccountType) IsValid() bool {
	return t == AccountTypeBank || t == AccountTypeCash
}

// Account represents a financial account (bank account or cash drawer)
// holding a running balance.
type Account struct {
	shared.TenantAggregateRoot
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

// NewAccount creates a new financial account
func NewAccount(companyID uuid.UUID, name string, accountType AccountType) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 200 characters")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Account type must be 'bank' or 'cash'")
	}

	return &Account{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Type:                accountType,
		Balance:             decimal.Zero,
	}, nil
}

// Rename updates the account name
func (a *Account) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}

	a.Name = name
	a.Touch()
	a.IncrementVersion()

	return nil
}

// SetBalance replaces the account balance
func (a *Account) SetBalance(balance decimal.Decimal) {
	a.Balance = balance
	a.Touch()
	a.IncrementVersion()
}
