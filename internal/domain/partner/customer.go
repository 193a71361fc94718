package partner

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/document"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a customer in the partner context. Customers are
// identified within their company by their CPF/CNPJ document, which must be
// unique per company (enforced by the application service on create and on
// document change).
type Customer struct {
	shared.TenantAggregateRoot
	Name     string
	Document string // CPF or CNPJ, digits only
	Address  string
	Phone    string
	Email    string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(companyID uuid.UUID, name, doc string) (*Customer, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if !document.ValidDocument(doc) {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Document must be a valid CPF or CNPJ")
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Document:            document.Normalize(doc),
	}, nil
}

// Rename updates the customer's name
func (c *Customer) Rename(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	c.Name = name
	c.Touch()
	c.IncrementVersion()

	return nil
}

// SetDocument replaces the customer's document. Callers must re-check
// uniqueness within the company before saving.
func (c *Customer) SetDocument(doc string) error {
	if !document.ValidDocument(doc) {
		return shared.NewDomainError("INVALID_DOCUMENT", "Document must be a valid CPF or CNPJ")
	}

	c.Document = document.Normalize(doc)
	c.Touch()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the customer's address
func (c *Customer) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Address = address
	c.Touch()
	c.IncrementVersion()

	return nil
}

// SetContact sets the customer's phone and email
func (c *Customer) SetContact(phone, email string) error {
	if phone != "" && !document.ValidPhone(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	if email != "" && !document.ValidEmail(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	c.Phone = document.Normalize(phone)
	c.Email = strings.ToLower(email)
	c.Touch()
	c.IncrementVersion()

	return nil
}

// FormattedDocument returns the document in display format
func (c *Customer) FormattedDocument() string {
	return document.FormatDocument(c.Document)
}

// IsIndividual reports whether the customer holds a CPF (11 digits)
func (c *Customer) IsIndividual() bool {
	return len(c.Document) == 11
}

func validatePartnerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
