package models

import (
	"github.com/fingestor/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer aggregate
type CustomerModel struct {
	TenantAggregateModel
	Name     string `gorm:"type:varchar(200);not null;index"`
	Document string `gorm:"type:varchar(14);not null;index:idx_customers_company_document"`
	Address  string `gorm:"type:text"`
	Phone    string `gorm:"type:varchar(20)"`
	Email    string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	customer := &partner.Customer{
		Name:     m.Name,
		Document: m.Document,
		Address:  m.Address,
		Phone:    m.Phone,
		Email:    m.Email,
	}
	m.PopulateTenantAggregateRoot(&customer.TenantAggregateRoot)
	return customer
}

// CustomerModelFromDomain builds the persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	model := &CustomerModel{
		Name:     c.Name,
		Document: c.Document,
		Address:  c.Address,
		Phone:    c.Phone,
		Email:    c.Email,
	}
	model.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return model
}

// SupplierModel is the persistence model for the Supplier aggregate
type SupplierModel struct {
	TenantAggregateModel
	Name     string `gorm:"type:varchar(200);not null;index"`
	Document string `gorm:"type:varchar(14);not null;index:idx_suppliers_company_document"`
	Address  string `gorm:"type:text"`
	Phone    string `gorm:"type:varchar(20)"`
	Email    string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier
func (m *SupplierModel) ToDomain() *partner.Supplier {
	supplier := &partner.Supplier{
		Name:     m.Name,
		Document: m.Document,
		Address:  m.Address,
		Phone:    m.Phone,
		Email:    m.Email,
	}
	m.PopulateTenantAggregateRoot(&supplier.TenantAggregateRoot)
	return supplier
}

// SupplierModelFromDomain builds the persistence model from a domain Supplier
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	model := &SupplierModel{
		Name:     s.Name,
		Document: s.Document,
		Address:  s.Address,
		Phone:    s.Phone,
		Email:    s.Email,
	}
	model.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	return model
}
