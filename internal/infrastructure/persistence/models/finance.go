package models

import (
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for the Account aggregate
type AccountModel struct {
	TenantAggregateModel
	Name    string          `gorm:"type:varchar(200);not null"`
	Type    string          `gorm:"type:varchar(20);not null"`
	Balance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "financial_accounts"
}

// ToDomain converts the persistence model to a domain Account
func (m *AccountModel) ToDomain() *finance.Account {
	account := &finance.Account{
		Name:    m.Name,
		Type:    finance.AccountType(m.Type),
		Balance: m.Balance,
	}
	m.PopulateTenantAggregateRoot(&account.TenantAggregateRoot)
	return account
}

// AccountModelFromDomain builds the persistence model from a domain Account
func AccountModelFromDomain(a *finance.Account) *AccountModel {
	model := &AccountModel{
		Name:    a.Name,
		Type:    string(a.Type),
		Balance: a.Balance.Round(2),
	}
	model.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	return model
}

// CategoryModel is the persistence model for the Category aggregate
type CategoryModel struct {
	TenantAggregateModel
	Name string `gorm:"type:varchar(200);not null"`
	Type string `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "financial_categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *finance.Category {
	category := &finance.Category{
		Name: m.Name,
		Type: finance.CategoryType(m.Type),
	}
	m.PopulateTenantAggregateRoot(&category.TenantAggregateRoot)
	return category
}

// CategoryModelFromDomain builds the persistence model from a domain Category
func CategoryModelFromDomain(c *finance.Category) *CategoryModel {
	model := &CategoryModel{
		Name: c.Name,
		Type: string(c.Type),
	}
	model.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return model
}

// CostCenterModel is the persistence model for the CostCenter aggregate
type CostCenterModel struct {
	TenantAggregateModel
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (CostCenterModel) TableName() string {
	return "cost_centers"
}

// ToDomain converts the persistence model to a domain CostCenter
func (m *CostCenterModel) ToDomain() *finance.CostCenter {
	costCenter := &finance.CostCenter{
		Name: m.Name,
	}
	m.PopulateTenantAggregateRoot(&costCenter.TenantAggregateRoot)
	return costCenter
}

// CostCenterModelFromDomain builds the persistence model from a domain CostCenter
func CostCenterModelFromDomain(c *finance.CostCenter) *CostCenterModel {
	model := &CostCenterModel{
		Name: c.Name,
	}
	model.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return model
}

// TransactionModel is the persistence model for the Transaction aggregate
type TransactionModel struct {
	TenantAggregateModel
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(20);not null;index"`
	Description  string          `gorm:"type:varchar(500);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate      time.Time       `gorm:"not null;index"`
	PaymentDate  *time.Time      `gorm:"index"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	CostCenterID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "financial_transactions"
}

// ToDomain converts the persistence model to a domain Transaction
func (m *TransactionModel) ToDomain() *finance.Transaction {
	tx := &finance.Transaction{
		AccountID:    m.AccountID,
		Type:         finance.TransactionType(m.Type),
		Description:  m.Description,
		Amount:       m.Amount,
		DueDate:      m.DueDate,
		PaymentDate:  m.PaymentDate,
		Status:       finance.TransactionStatus(m.Status),
		CategoryID:   m.CategoryID,
		CostCenterID: m.CostCenterID,
	}
	m.PopulateTenantAggregateRoot(&tx.TenantAggregateRoot)
	return tx
}

// TransactionModelFromDomain builds the persistence model from a domain Transaction
func TransactionModelFromDomain(t *finance.Transaction) *TransactionModel {
	model := &TransactionModel{
		AccountID:    t.AccountID,
		Type:         string(t.Type),
		Description:  t.Description,
		Amount:       t.Amount.Round(2),
		DueDate:      t.DueDate,
		PaymentDate:  t.PaymentDate,
		Status:       string(t.Status),
		CategoryID:   t.CategoryID,
		CostCenterID: t.CostCenterID,
	}
	model.FromDomainTenantAggregateRoot(t.TenantAggregateRoot)
	return model
}
