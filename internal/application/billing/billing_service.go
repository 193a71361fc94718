package billing

import (
	"context"
	"time"

	"github.com/fingestor/backend/internal/domain/billing"
	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillingService handles billing (boleto) operations. The referenced
// customer is resolved within the caller's company.
type BillingService struct {
	billingRepo  billing.BillingRepository
	customerRepo partner.CustomerRepository
	now          func() time.Time
}

// NewBillingService creates a new BillingService
func NewBillingService(billingRepo billing.BillingRepository, customerRepo partner.CustomerRepository) *BillingService {
	return &BillingService{
		billingRepo:  billingRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// Create creates a new pending billing for an existing customer
func (s *BillingService) Create(ctx context.Context, companyID uuid.UUID, req CreateBillingRequest) (*BillingResponse, error) {
	if _, err := s.customerRepo.FindByIDForCompany(ctx, companyID, req.CustomerID); err != nil {
		return nil, err
	}

	b, err := billing.NewBilling(companyID, req.CustomerID, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}
	if req.Barcode != "" || req.DigitableLine != "" {
		b.SetPaymentSlip(req.Barcode, req.DigitableLine)
	}

	if err := s.billingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	response := ToBillingResponse(b)
	return &response, nil
}

// GetByID retrieves a billing by ID within the caller's company
func (s *BillingService) GetByID(ctx context.Context, companyID, billingID uuid.UUID) (*BillingResponse, error) {
	b, err := s.billingRepo.FindByIDForCompany(ctx, companyID, billingID)
	if err != nil {
		return nil, err
	}

	response := ToBillingResponse(b)
	return &response, nil
}

// List retrieves a paginated billing listing for the caller's company
func (s *BillingService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]BillingResponse, int64, error) {
	page, pageSize := filter.normalized()
	domainFilter := shared.DefaultFilter()
	domainFilter.Page = page
	domainFilter.PageSize = pageSize
	domainFilter.Search = filter.Search
	for key, value := range filter.Filters {
		domainFilter.Filters[key] = value
	}

	billings, err := s.billingRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.billingRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BillingResponse, len(billings))
	for i := range billings {
		responses[i] = ToBillingResponse(&billings[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a billing's payment slip data
func (s *BillingService) Update(ctx context.Context, companyID, billingID uuid.UUID, req UpdateBillingRequest) (*BillingResponse, error) {
	b, err := s.billingRepo.FindByIDForCompany(ctx, companyID, billingID)
	if err != nil {
		return nil, err
	}

	if req.Barcode != nil || req.DigitableLine != nil {
		barcode := b.Barcode
		digitableLine := b.DigitableLine
		if req.Barcode != nil {
			barcode = *req.Barcode
		}
		if req.DigitableLine != nil {
			digitableLine = *req.DigitableLine
		}
		b.SetPaymentSlip(barcode, digitableLine)
	}

	if err := s.billingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	response := ToBillingResponse(b)
	return &response, nil
}

// Pay settles a billing. A missing payment date defaults to now.
func (s *BillingService) Pay(ctx context.Context, companyID, billingID uuid.UUID, req PayBillingRequest) (*BillingResponse, error) {
	b, err := s.billingRepo.FindByIDForCompany(ctx, companyID, billingID)
	if err != nil {
		return nil, err
	}

	paymentDate := s.now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}
	if err := b.Pay(paymentDate); err != nil {
		return nil, err
	}

	if err := s.billingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	response := ToBillingResponse(b)
	return &response, nil
}

// Cancel cancels a pending billing
func (s *BillingService) Cancel(ctx context.Context, companyID, billingID uuid.UUID) (*BillingResponse, error) {
	b, err := s.billingRepo.FindByIDForCompany(ctx, companyID, billingID)
	if err != nil {
		return nil, err
	}

	if err := b.Cancel(); err != nil {
		return nil, err
	}

	if err := s.billingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	response := ToBillingResponse(b)
	return &response, nil
}

// Delete removes a billing within the caller's company (hard delete)
func (s *BillingService) Delete(ctx context.Context, companyID, billingID uuid.UUID) error {
	if _, err := s.billingRepo.FindByIDForCompany(ctx, companyID, billingID); err != nil {
		return err
	}
	return s.billingRepo.DeleteForCompany(ctx, companyID, billingID)
}
