package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fingestor/backend/internal/domain/identity"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/infrastructure/auth"
	"github.com/fingestor/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCNPJ(ctx context.Context, cnpj string) (*identity.Company, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	args := m.Called(ctx, cnpj)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

const validCNPJ = "11222333000181"

func newAuthService() (*AuthService, *MockUserRepository, *MockCompanyRepository) {
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "test",
		MaxRefreshCount:        10,
	})
	service := NewAuthService(userRepo, companyRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
	return service, userRepo, companyRepo
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates company and admin user", func(t *testing.T) {
		service, userRepo, companyRepo := newAuthService()

		companyRepo.On("ExistsByCNPJ", mock.Anything, validCNPJ).Return(false, nil)
		userRepo.On("ExistsByEmail", mock.Anything, "owner@acme.com.br").Return(false, nil)
		companyRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.Company")).Return(nil)
		userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Register(context.Background(), RegisterRequest{
			CompanyName: "Acme Ltda",
			CNPJ:        "11.222.333/0001-81",
			Email:       "owner@acme.com.br",
			Password:    "s3cret-pass",
			FirstName:   "Ana",
			LastName:    "Souza",
		})

		require.NoError(t, err)
		assert.Equal(t, validCNPJ, resp.Company.CNPJ)
		assert.Equal(t, "admin", resp.User.Role)
		assert.Equal(t, resp.Company.ID, resp.User.CompanyID)
		companyRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate CNPJ", func(t *testing.T) {
		service, userRepo, companyRepo := newAuthService()

		companyRepo.On("ExistsByCNPJ", mock.Anything, validCNPJ).Return(true, nil)

		_, err := service.Register(context.Background(), RegisterRequest{
			CompanyName: "Acme Ltda",
			CNPJ:        validCNPJ,
			Email:       "owner@acme.com.br",
			Password:    "s3cret-pass",
			FirstName:   "Ana",
			LastName:    "Souza",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		service, userRepo, companyRepo := newAuthService()

		companyRepo.On("ExistsByCNPJ", mock.Anything, validCNPJ).Return(false, nil)
		userRepo.On("ExistsByEmail", mock.Anything, "owner@acme.com.br").Return(true, nil)

		_, err := service.Register(context.Background(), RegisterRequest{
			CompanyName: "Acme Ltda",
			CNPJ:        validCNPJ,
			Email:       "owner@acme.com.br",
			Password:    "s3cret-pass",
			FirstName:   "Ana",
			LastName:    "Souza",
		})

		require.Error(t, err)
		companyRepo.AssertNotCalled(t, "Save")
	})
}

func TestAuthService_Login(t *testing.T) {
	companyID := uuid.New()

	newUser := func(t *testing.T) *identity.User {
		user, err := identity.NewUser(companyID, "ana@acme.com.br", "s3cret-pass", "Ana", "Souza", identity.RoleAdmin)
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		service, userRepo, _ := newAuthService()
		user := newUser(t)

		userRepo.On("FindByEmail", mock.Anything, "ana@acme.com.br").Return(user, nil)

		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "ana@acme.com.br",
			Password: "s3cret-pass",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.Equal(t, "Bearer", resp.Tokens.TokenType)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("unknown email and bad password yield the same error", func(t *testing.T) {
		service, userRepo, _ := newAuthService()
		user := newUser(t)

		userRepo.On("FindByEmail", mock.Anything, "ghost@acme.com.br").Return(nil, shared.ErrNotFound)
		userRepo.On("FindByEmail", mock.Anything, "ana@acme.com.br").Return(user, nil)

		_, errUnknown := service.Login(context.Background(), LoginRequest{Email: "ghost@acme.com.br", Password: "whatever"})
		_, errBadPass := service.Login(context.Background(), LoginRequest{Email: "ana@acme.com.br", Password: "wrong"})

		var e1, e2 *shared.DomainError
		require.True(t, errors.As(errUnknown, &e1))
		require.True(t, errors.As(errBadPass, &e2))
		assert.Equal(t, "INVALID_CREDENTIALS", e1.Code)
		assert.Equal(t, e1.Code, e2.Code)
		assert.Equal(t, e1.Message, e2.Message)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		service, userRepo, _ := newAuthService()
		user := newUser(t)
		user.Deactivate()

		userRepo.On("FindByEmail", mock.Anything, "ana@acme.com.br").Return(user, nil)

		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "ana@acme.com.br",
			Password: "s3cret-pass",
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	companyID := uuid.New()

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		service, userRepo, _ := newAuthService()
		user, err := identity.NewUser(companyID, "ana@acme.com.br", "s3cret-pass", "Ana", "Souza", identity.RoleAdmin)
		require.NoError(t, err)

		userRepo.On("FindByEmail", mock.Anything, "ana@acme.com.br").Return(user, nil)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		login, err := service.Login(context.Background(), LoginRequest{Email: "ana@acme.com.br", Password: "s3cret-pass"})
		require.NoError(t, err)

		refreshed, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.RefreshToken)
	})

	t.Run("garbage refresh token is rejected", func(t *testing.T) {
		service, _, _ := newAuthService()

		_, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: "garbage"})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	service, _, _ := newAuthService()

	require.NoError(t, service.Logout(context.Background(), LogoutRequest{
		JTI:       "some-jti",
		RemainTTL: time.Minute,
	}))

	revoked, err := service.blacklist.IsRevoked(context.Background(), "some-jti")
	require.NoError(t, err)
	assert.True(t, revoked)
}
