package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*billing.Billing, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Billing), args.Error(1)
}

func (m *MockBillingRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]billing.Billing, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Billing), args.Error(1)
}

func (m *MockBillingRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingRepository) Save(ctx context.Context, b *billing.Billing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillingRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByDocument(ctx context.Context, companyID uuid.UUID, doc string) (*partner.Customer, error) {
	args := m.Called(ctx, companyID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByDocument(ctx context.Context, companyID uuid.UUID, doc string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, doc, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func TestBillingService_Create(t *testing.T) {
	companyID := uuid.New()
	dueDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates pending billing for existing customer", func(t *testing.T) {
		billingRepo := new(MockBillingRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewBillingService(billingRepo, customerRepo)

		customer, err := partner.NewCustomer(companyID, "Acme", "52998224725")
		require.NoError(t, err)

		customerRepo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		billingRepo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Billing")).Return(nil)

		resp, err := service.Create(context.Background(), companyID, CreateBillingRequest{
			CustomerID: customer.ID,
			Amount:     decimal.NewFromInt(250),
			DueDate:    dueDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, customer.ID, resp.CustomerID)
	})

	t.Run("unknown customer surfaces not found", func(t *testing.T) {
		billingRepo := new(MockBillingRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewBillingService(billingRepo, customerRepo)
		customerID := uuid.New()

		customerRepo.On("FindByIDForCompany", mock.Anything, companyID, customerID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), companyID, CreateBillingRequest{
			CustomerID: customerID,
			Amount:     decimal.NewFromInt(250),
			DueDate:    dueDate,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		billingRepo.AssertNotCalled(t, "Save")
	})
}

func TestBillingService_Pay(t *testing.T) {
	companyID := uuid.New()
	customerID := uuid.New()
	dueDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pays pending billing with default date", func(t *testing.T) {
		billingRepo := new(MockBillingRepository)
		service := NewBillingService(billingRepo, new(MockCustomerRepository))
		now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return now }

		b, err := billing.NewBilling(companyID, customerID, decimal.NewFromInt(250), dueDate)
		require.NoError(t, err)

		billingRepo.On("FindByIDForCompany", mock.Anything, companyID, b.ID).Return(b, nil)
		billingRepo.On("Save", mock.Anything, b).Return(nil)

		resp, err := service.Pay(context.Background(), companyID, b.ID, PayBillingRequest{})

		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)
		require.NotNil(t, resp.PaymentDate)
		assert.True(t, resp.PaymentDate.Equal(now))
	})

	t.Run("paying a cancelled billing fails", func(t *testing.T) {
		billingRepo := new(MockBillingRepository)
		service := NewBillingService(billingRepo, new(MockCustomerRepository))

		b, err := billing.NewBilling(companyID, customerID, decimal.NewFromInt(250), dueDate)
		require.NoError(t, err)
		require.NoError(t, b.Cancel())

		billingRepo.On("FindByIDForCompany", mock.Anything, companyID, b.ID).Return(b, nil)

		_, err = service.Pay(context.Background(), companyID, b.ID, PayBillingRequest{})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		billingRepo.AssertNotCalled(t, "Save")
	})
}
