package persistence

import (
	"context"
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/fingestor/backend/internal/domain/report"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDashboardRepository implements report.DashboardRepository using GORM.
// It aggregates in SQL rather than loading transactions into memory.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GORM-based dashboard repository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

type sumResult struct {
	Total decimal.Decimal
}

// SumPaidByPaymentDate sums paid transactions of the given type whose
// payment date falls in the period
func (r *GormDashboardRepository) SumPaidByPaymentDate(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType, period report.Period) (decimal.Decimal, error) {
	var result sumResult
	err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("type = ? AND status = ?", string(txType), string(finance.TransactionStatusPaid)).
		Where("payment_date >= ? AND payment_date <= ?", period.Start, period.End).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// SumPending sums all pending transactions of the given type
func (r *GormDashboardRepository) SumPending(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType) (decimal.Decimal, error) {
	var result sumResult
	err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("type = ? AND status = ?", string(txType), string(finance.TransactionStatusPending)).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// SumPendingDueBy sums pending transactions of the given type due on or
// before the deadline
func (r *GormDashboardRepository) SumPendingDueBy(ctx context.Context, companyID uuid.UUID, txType finance.TransactionType, deadline time.Time) (decimal.Decimal, error) {
	var result sumResult
	err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Scopes(tenant.CompanyScope(companyID)).
		Where("type = ? AND status = ?", string(txType), string(finance.TransactionStatusPending)).
		Where("due_date <= ?", deadline).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// CountEntities counts customers, suppliers, invoices and billings
func (r *GormDashboardRepository) CountEntities(ctx context.Context, companyID uuid.UUID) (report.Counters, error) {
	var counters report.Counters

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.CustomerModel{}, &counters.Customers},
		{&models.SupplierModel{}, &counters.Suppliers},
		{&models.InvoiceModel{}, &counters.Invoices},
		{&models.BillingModel{}, &counters.Billings},
	}

	for _, c := range counts {
		err := r.db.WithContext(ctx).
			Model(c.model).
			Scopes(tenant.CompanyScope(companyID)).
			Count(c.dest).Error
		if err != nil {
			return report.Counters{}, err
		}
	}
	return counters, nil
}
