package finance

import (
	"context"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// AccountService handles financial account operations
type AccountService struct {
	accountRepo finance.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo finance.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// Create creates a new financial account with a zero balance
func (s *AccountService) Create(ctx context.Context, companyID uuid.UUID, req CreateAccountRequest) (*AccountResponse, error) {
	account, err := finance.NewAccount(companyID, req.Name, finance.AccountType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// GetByID retrieves an account by ID within the caller's company
func (s *AccountService) GetByID(ctx context.Context, companyID, accountID uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByIDForCompany(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// List retrieves a paginated account listing for the caller's company
func (s *AccountService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]AccountResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	accounts, err := s.accountRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.accountRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses, total, nil
}

// Update applies a partial update to an account
func (s *AccountService) Update(ctx context.Context, companyID, accountID uuid.UUID, req UpdateAccountRequest) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByIDForCompany(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := account.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Balance != nil {
		account.SetBalance(*req.Balance)
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// Delete removes an account within the caller's company (hard delete)
func (s *AccountService) Delete(ctx context.Context, companyID, accountID uuid.UUID) error {
	if _, err := s.accountRepo.FindByIDForCompany(ctx, companyID, accountID); err != nil {
		return err
	}
	return s.accountRepo.DeleteForCompany(ctx, companyID, accountID)
}
