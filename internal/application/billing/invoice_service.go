package billing

import (
	"context"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService handles fiscal invoice operations. Number+series must be
// unique within the company.
type InvoiceService struct {
	invoiceRepo  billing.InvoiceRepository
	customerRepo partner.CustomerRepository
	supplierRepo partner.SupplierRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, customerRepo partner.CustomerRepository, supplierRepo partner.SupplierRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// Create creates a new pending invoice
func (s *InvoiceService) Create(ctx context.Context, companyID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := billing.NewInvoice(companyID, billing.InvoiceType(req.Type), req.Number, req.Series, req.IssueDate, req.Amount)
	if err != nil {
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, companyID, invoice.Number, invoice.Series, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number and series already exists")
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByIDForCompany(ctx, companyID, *req.CustomerID); err != nil {
			return nil, err
		}
		invoice.SetCustomer(req.CustomerID)
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, *req.SupplierID); err != nil {
			return nil, err
		}
		invoice.SetSupplier(req.SupplierID)
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID within the caller's company
func (s *InvoiceService) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves a paginated invoice listing for the caller's company
func (s *InvoiceService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]InvoiceResponse, int64, error) {
	page, pageSize := filter.normalized()
	domainFilter := shared.DefaultFilter()
	domainFilter.Page = page
	domainFilter.PageSize = pageSize
	domainFilter.Search = filter.Search
	for key, value := range filter.Filters {
		domainFilter.Filters[key] = value
	}

	invoices, err := s.invoiceRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, total, nil
}

// Update applies a partial update to an invoice's partner links
func (s *InvoiceService) Update(ctx context.Context, companyID, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.ClearCustomer:
		invoice.SetCustomer(nil)
	case req.CustomerID != nil:
		if _, err := s.customerRepo.FindByIDForCompany(ctx, companyID, *req.CustomerID); err != nil {
			return nil, err
		}
		invoice.SetCustomer(req.CustomerID)
	}
	switch {
	case req.ClearSupplier:
		invoice.SetSupplier(nil)
	case req.SupplierID != nil:
		if _, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, *req.SupplierID); err != nil {
			return nil, err
		}
		invoice.SetSupplier(req.SupplierID)
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Approve moves a pending invoice to approved
func (s *InvoiceService) Approve(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.Approve(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Cancel cancels an invoice
func (s *InvoiceService) Cancel(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.Cancel(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice within the caller's company (hard delete)
func (s *InvoiceService) Delete(ctx context.Context, companyID, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.DeleteForCompany(ctx, companyID, invoiceID)
}
