package partner

import (
	"context"

	"github.com/fingestor/backend/internal/domain/document"
	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier, enforcing document uniqueness within the
// company
func (s *SupplierService) Create(ctx context.Context, companyID uuid.UUID, req CreatePartnerRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(companyID, req.Name, req.Document)
	if err != nil {
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByDocument(ctx, companyID, supplier.Document, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this document already exists")
	}

	if req.Address != "" {
		if err := supplier.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" || req.Email != "" {
		if err := supplier.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID within the caller's company
func (s *SupplierService) GetByID(ctx context.Context, companyID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves a paginated supplier listing for the caller's company
func (s *SupplierService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]SupplierResponse, int64, error) {
	page, pageSize := filter.normalized()

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = page
	domainFilter.PageSize = pageSize
	domainFilter.Search = filter.Search

	suppliers, err := s.supplierRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses, total, nil
}

// Update applies a partial update. The document uniqueness check only runs
// when the document actually changes.
func (s *SupplierService) Update(ctx context.Context, companyID, supplierID uuid.UUID, req UpdatePartnerRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Document != nil {
		normalized := document.Normalize(*req.Document)
		if normalized != supplier.Document {
			exists, err := s.supplierRepo.ExistsByDocument(ctx, companyID, normalized, supplierID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this document already exists")
			}
			if err := supplier.SetDocument(*req.Document); err != nil {
				return nil, err
			}
		}
	}

	if req.Name != nil {
		if err := supplier.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if err := supplier.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil || req.Email != nil {
		phone := supplier.Phone
		email := supplier.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := supplier.SetContact(phone, email); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete removes a supplier within the caller's company (hard delete)
func (s *SupplierService) Delete(ctx context.Context, companyID, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID); err != nil {
		return err
	}
	return s.supplierRepo.DeleteForCompany(ctx, companyID, supplierID)
}
