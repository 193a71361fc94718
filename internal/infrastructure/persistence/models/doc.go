// Package models contains GORM persistence models mapping domain aggregates
// to database tables. Models are conversion boundaries: domain objects never
// carry GORM tags, and models never carry business rules.
package models

// AllModels lists every persistence model for schema migration
func AllModels() []interface{} {
	return []interface{}{
		&CompanyModel{},
		&UserModel{},
		&CustomerModel{},
		&SupplierModel{},
		&AccountModel{},
		&CategoryModel{},
		&CostCenterModel{},
		&TransactionModel{},
		&BillingModel{},
		&InvoiceModel{},
		&SimulationModel{},
	}
}
