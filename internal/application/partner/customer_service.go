package partner

import (
	"context"

	"github.com/fingestor/backend/internal/domain/document"
	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations. The company
// ID always comes from the authenticated caller, never from the payload.
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer, enforcing document uniqueness within the
// company
func (s *CustomerService) Create(ctx context.Context, companyID uuid.UUID, req CreatePartnerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(companyID, req.Name, req.Document)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByDocument(ctx, companyID, customer.Document, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this document already exists")
	}

	if req.Address != "" {
		if err := customer.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" || req.Email != "" {
		if err := customer.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID within the caller's company
func (s *CustomerService) GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves a paginated customer listing for the caller's company
func (s *CustomerService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]CustomerResponse, int64, error) {
	page, pageSize := filter.normalized()

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = page
	domainFilter.PageSize = pageSize
	domainFilter.Search = filter.Search

	customers, err := s.customerRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// Update applies a partial update. The document uniqueness check only runs
// when the document actually changes.
func (s *CustomerService) Update(ctx context.Context, companyID, customerID uuid.UUID, req UpdatePartnerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Document != nil {
		normalized := document.Normalize(*req.Document)
		if normalized != customer.Document {
			exists, err := s.customerRepo.ExistsByDocument(ctx, companyID, normalized, customerID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this document already exists")
			}
			if err := customer.SetDocument(*req.Document); err != nil {
				return nil, err
			}
		}
	}

	if req.Name != nil {
		if err := customer.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if err := customer.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil || req.Email != nil {
		phone := customer.Phone
		email := customer.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := customer.SetContact(phone, email); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer within the caller's company (hard delete)
func (s *CustomerService) Delete(ctx context.Context, companyID, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByIDForCompany(ctx, companyID, customerID); err != nil {
		return err
	}
	return s.customerRepo.DeleteForCompany(ctx, companyID, customerID)
}
