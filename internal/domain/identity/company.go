package identity

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/document"
	"github.com/fingestor/backend/internal/domain/shared"
)

// Company is the tenant of the system. Every business record belongs to
// exactly one company and is invisible to every other one.
type Company struct {
	shared.BaseAggregateRoot
	Name    string
	CNPJ    string // digits only, unique across the system
	Address string
	Phone   string
	Email   string
	Active  bool
}

// NewCompany creates a new company with a validated CNPJ
func NewCompany(name, cnpj string) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	if !document.ValidCNPJ(cnpj) {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Invalid CNPJ")
	}

	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		CNPJ:              document.Normalize(cnpj),
		Active:            true,
	}, nil
}

// SetContact sets the company's contact information
func (c *Company) SetContact(address, phone, email string) error {
	if phone != "" && !document.ValidPhone(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	if email != "" && !document.ValidEmail(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	c.Address = address
	c.Phone = phone
	c.Email = strings.ToLower(email)
	c.Touch()
	c.IncrementVersion()

	return nil
}

// Deactivate deactivates the company, blocking logins for its users
func (c *Company) Deactivate() {
	c.Active = false
	c.Touch()
	c.IncrementVersion()
}

// Activate reactivates the company
func (c *Company) Activate() {
	c.Active = true
	c.Touch()
	c.IncrementVersion()
}

// FormattedCNPJ returns the CNPJ in display format
func (c *Company) FormattedCNPJ() string {
	return document.FormatDocument(c.CNPJ)
}
