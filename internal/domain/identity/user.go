package identity

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/document"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Role represents a user's role within their company
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCompanyUser Role = "company_user"
	RoleAccountant  Role = "accountant"
)

// IsValid reports whether the role is one of the recognized values
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompanyUser, RoleAccountant:
		return true
	default:
		return false
	}
}

// User represents an authenticated principal. A user always belongs to a
// company; the company ID in their token is what scopes every request.
type User struct {
	shared.BaseAggregateRoot
	Email        string // lowercased, unique across the system
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Active       bool
	CompanyID    uuid.UUID
}

// NewUser creates a new user with a hashed password
func NewUser(companyID uuid.UUID, email, password, firstName, lastName string, role Role) (*User, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "User must belong to a company")
	}
	if !document.ValidEmail(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be 'admin', 'company_user', or 'accountant'")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(email),
		FirstName:         firstName,
		LastName:          lastName,
		Role:              role,
		Active:            true,
		CompanyID:         companyID,
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	return user, nil
}

// SetPassword hashes and sets a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	u.PasswordHash = string(hash)
	u.Touch()
	u.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanLogin reports whether the user is allowed to authenticate
func (u *User) CanLogin() bool {
	return u.Active
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Activate activates the user
func (u *User) Activate() {
	u.Active = true
	u.Touch()
	u.IncrementVersion()
}

// Deactivate deactivates the user, blocking future logins
func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
	u.IncrementVersion()
}
