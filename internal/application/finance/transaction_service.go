package finance

import (
	"context"
	"time"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// TransactionService handles financial transaction operations. Referenced
// accounts, categories and cost centers are resolved within the caller's
// company, so a foreign reference surfaces as not found.
type TransactionService struct {
	transactionRepo finance.TransactionRepository
	accountRepo     finance.AccountRepository
	categoryRepo    finance.CategoryRepository
	costCenterRepo  finance.CostCenterRepository
	now             func() time.Time
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo finance.TransactionRepository,
	accountRepo finance.AccountRepository,
	categoryRepo finance.CategoryRepository,
	costCenterRepo finance.CostCenterRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		costCenterRepo:  costCenterRepo,
		now:             time.Now,
	}
}

// Create creates a new pending transaction
func (s *TransactionService) Create(ctx context.Context, companyID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	if _, err := s.accountRepo.FindByIDForCompany(ctx, companyID, req.AccountID); err != nil {
		return nil, err
	}

	transaction, err := finance.NewTransaction(companyID, req.AccountID, finance.TransactionType(req.Type), req.Description, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
		transaction.SetCategory(req.CategoryID)
	}
	if req.CostCenterID != nil {
		if _, err := s.costCenterRepo.FindByIDForCompany(ctx, companyID, *req.CostCenterID); err != nil {
			return nil, err
		}
		transaction.SetCostCenter(req.CostCenterID)
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// GetByID retrieves a transaction by ID within the caller's company
func (s *TransactionService) GetByID(ctx context.Context, companyID, transactionID uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForCompany(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// List retrieves a paginated transaction listing for the caller's company
func (s *TransactionService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]TransactionResponse, int64, error) {
	transactions, err := s.transactionRepo.FindAllForCompany(ctx, companyID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a transaction
func (s *TransactionService) Update(ctx context.Context, companyID, transactionID uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForCompany(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if err := transaction.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if err := transaction.SetAmount(*req.Amount); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if err := transaction.SetDueDate(*req.DueDate); err != nil {
			return nil, err
		}
	}
	switch {
	case req.ClearCategory:
		transaction.SetCategory(nil)
	case req.CategoryID != nil:
		if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
		transaction.SetCategory(req.CategoryID)
	}
	switch {
	case req.ClearCostCenter:
		transaction.SetCostCenter(nil)
	case req.CostCenterID != nil:
		if _, err := s.costCenterRepo.FindByIDForCompany(ctx, companyID, *req.CostCenterID); err != nil {
			return nil, err
		}
		transaction.SetCostCenter(req.CostCenterID)
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// Pay settles a transaction. A missing payment date defaults to now.
func (s *TransactionService) Pay(ctx context.Context, companyID, transactionID uuid.UUID, req PayTransactionRequest) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForCompany(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}

	paymentDate := s.now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}
	if err := transaction.Pay(paymentDate); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// Delete removes a transaction within the caller's company (hard delete)
func (s *TransactionService) Delete(ctx context.Context, companyID, transactionID uuid.UUID) error {
	if _, err := s.transactionRepo.FindByIDForCompany(ctx, companyID, transactionID); err != nil {
		return err
	}
	return s.transactionRepo.DeleteForCompany(ctx, companyID, transactionID)
}
