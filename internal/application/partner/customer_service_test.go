package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestCustomerService_Create(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates customer with normalized document", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByDocument", mock.Anything, companyID, "52998224725", uuid.Nil).Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(context.Background(), companyID, CreatePartnerRequest{
			Name:     "Acme Ltda",
			Document: "529.982.247-25",
			Email:    "contact@acme.com.br",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Ltda", resp.Name)
		assert.Equal(t, "52998224725", resp.Document)
		assert.Equal(t, "529.982.247-25", resp.FormattedDocument)
		assert.Equal(t, companyID, resp.CompanyID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate document in same company", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByDocument", mock.Anything, companyID, "52998224725", uuid.Nil).Return(true, nil)

		_, err := service.Create(context.Background(), companyID, CreatePartnerRequest{
			Name:     "Acme Ltda",
			Document: "52998224725",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid document before touching the repository", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		_, err := service.Create(context.Background(), companyID, CreatePartnerRequest{
			Name:     "Acme Ltda",
			Document: "11111111111",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByDocument")
	})
}

func TestCustomerService_Update(t *testing.T) {
	companyID := uuid.New()

	newCustomer := func(t *testing.T) *partner.Customer {
		c, err := partner.NewCustomer(companyID, "Old Name", "52998224725")
		require.NoError(t, err)
		return c
	}

	t.Run("applies only provided fields", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := newCustomer(t)

		repo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		repo.On("Save", mock.Anything, customer).Return(nil)

		name := "New Name"
		resp, err := service.Update(context.Background(), companyID, customer.ID, UpdatePartnerRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
		assert.Equal(t, "52998224725", resp.Document)
		repo.AssertNotCalled(t, "ExistsByDocument")
	})

	t.Run("unchanged document skips uniqueness check", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := newCustomer(t)

		repo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		repo.On("Save", mock.Anything, customer).Return(nil)

		doc := "529.982.247-25"
		_, err := service.Update(context.Background(), companyID, customer.ID, UpdatePartnerRequest{Document: &doc})

		require.NoError(t, err)
		repo.AssertNotCalled(t, "ExistsByDocument")
	})

	t.Run("changed document re-checks uniqueness excluding itself", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := newCustomer(t)

		repo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		repo.On("ExistsByDocument", mock.Anything, companyID, "11144477735", customer.ID).Return(false, nil)
		repo.On("Save", mock.Anything, customer).Return(nil)

		doc := "111.444.777-35"
		resp, err := service.Update(context.Background(), companyID, customer.ID, UpdatePartnerRequest{Document: &doc})

		require.NoError(t, err)
		assert.Equal(t, "11144477735", resp.Document)
		repo.AssertExpectations(t)
	})

	t.Run("missing customer surfaces not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		id := uuid.New()

		repo.On("FindByIDForCompany", mock.Anything, companyID, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), companyID, id, UpdatePartnerRequest{})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerService_Delete(t *testing.T) {
	companyID := uuid.New()

	t.Run("deletes existing customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer, err := partner.NewCustomer(companyID, "Acme", "52998224725")
		require.NoError(t, err)

		repo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		repo.On("DeleteForCompany", mock.Anything, companyID, customer.ID).Return(nil)

		require.NoError(t, service.Delete(context.Background(), companyID, customer.ID))
		repo.AssertExpectations(t)
	})

	t.Run("delete of missing customer fails without touching delete", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		id := uuid.New()

		repo.On("FindByIDForCompany", mock.Anything, companyID, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(context.Background(), companyID, id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteForCompany")
	})
}

func TestCustomerService_List(t *testing.T) {
	companyID := uuid.New()

	t.Run("returns page and total", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		c1, err := partner.NewCustomer(companyID, "First", "52998224725")
		require.NoError(t, err)
		c2, err := partner.NewCustomer(companyID, "Second", "11144477735")
		require.NoError(t, err)

		repo.On("FindAllForCompany", mock.Anything, companyID, mock.AnythingOfType("shared.Filter")).
			Return([]partner.Customer{*c1, *c2}, nil)
		repo.On("CountForCompany", mock.Anything, companyID).Return(int64(2), nil)

		items, total, err := service.List(context.Background(), companyID, ListFilter{Page: 1, PageSize: 20})

		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(2), total)
	})

	t.Run("normalizes out-of-range pagination", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("FindAllForCompany", mock.Anything, companyID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20
		})).Return([]partner.Customer{}, nil)
		repo.On("CountForCompany", mock.Anything, companyID).Return(int64(0), nil)

		_, _, err := service.List(context.Background(), companyID, ListFilter{Page: -3, PageSize: 0})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
