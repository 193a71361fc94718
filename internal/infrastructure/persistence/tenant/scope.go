// Package tenant scopes GORM queries to a single company.
//
// Every business table carries a company_id column; repositories apply
// CompanyScope so cross-company reads and writes cannot happen by accident.
package tenant

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCompanyIDRequired is returned when a query is attempted without a company scope
var ErrCompanyIDRequired = errors.New("company_id is required for tenant-scoped queries")

// CompanyScope filters every query to the given company
func CompanyScope(companyID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if companyID == uuid.Nil {
			_ = db.AddError(ErrCompanyIDRequired)
			return db
		}
		return db.Where("company_id = ?", companyID)
	}
}
