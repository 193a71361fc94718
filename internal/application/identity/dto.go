package identity

import (
	"time"

	"github.com/fingestor/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterRequest creates a company together with its first admin user
type RegisterRequest struct {
	CompanyName string
	CNPJ        string
	Email       string
	Password    string
	FirstName   string
	LastName    string
}

// LoginRequest contains user credentials
type LoginRequest struct {
	Email    string
	Password string
}

// RefreshRequest contains the refresh token to exchange
type RefreshRequest struct {
	RefreshToken string
}

// LogoutRequest identifies the access token to revoke
type LogoutRequest struct {
	JTI       string
	RemainTTL time.Duration
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CNPJ          string    `json:"cnpj"`
	FormattedCNPJ string    `json:"formatted_cnpj"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LoginResponse pairs the issued tokens with the user they belong to
type LoginResponse struct {
	Tokens TokenResponse `json:"tokens"`
	User   UserResponse  `json:"user"`
}

// ToUserResponse converts a domain user to its response form
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ToCompanyResponse converts a domain company to its response form
func ToCompanyResponse(c *identity.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		CNPJ:          c.CNPJ,
		FormattedCNPJ: c.FormattedCNPJ(),
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}
