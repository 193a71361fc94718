package models

import (
	"github.com/fingestor/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CompanyModel is the persistence model for the Company aggregate
type CompanyModel struct {
	AggregateModel
	Name    string `gorm:"type:varchar(200);not null"`
	CNPJ    string `gorm:"type:varchar(14);not null;uniqueIndex"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(20)"`
	Email   string `gorm:"type:varchar(200)"`
	Active  bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *identity.Company {
	company := &identity.Company{
		Name:    m.Name,
		CNPJ:    m.CNPJ,
		Address: m.Address,
		Phone:   m.Phone,
		Email:   m.Email,
		Active:  m.Active,
	}
	m.PopulateAggregateRoot(&company.BaseAggregateRoot)
	return company
}

// CompanyModelFromDomain builds the persistence model from a domain Company
func CompanyModelFromDomain(c *identity.Company) *CompanyModel {
	model := &CompanyModel{
		Name:    c.Name,
		CNPJ:    c.CNPJ,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		Active:  c.Active,
	}
	model.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return model
}

// UserModel is the persistence model for the User aggregate
type UserModel struct {
	AggregateModel
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(200);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Active       bool      `gorm:"not null;default:true"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         identity.Role(m.Role),
		Active:       m.Active,
		CompanyID:    m.CompanyID,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// UserModelFromDomain builds the persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	model := &UserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		Active:       u.Active,
		CompanyID:    u.CompanyID,
	}
	model.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return model
}
