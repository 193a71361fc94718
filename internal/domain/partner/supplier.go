package partner

import (
	"strings"

	"github.com/fingestor/backend/internal/domain/document"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Supplier represents a supplier in the partner context. Like customers,
// suppliers are identified by a per-company-unique CPF/CNPJ document.
type Supplier struct {
	shared.TenantAggregateRoot
	Name     string
	Document string // CPF or CNPJ, digits only
	Address  string
	Phone    string
	Email    string
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(companyID uuid.UUID, name, doc string) (*Supplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if !document.ValidDocument(doc) {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "Document must be a valid CPF or CNPJ")
	}

	return &Supplier{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Document:            document.Normalize(doc),
	}, nil
}

// Rename updates the supplier's name
func (s *Supplier) Rename(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	s.Name = name
	s.Touch()
	s.IncrementVersion()

	return nil
}

// SetDocument replaces the supplier's document. Callers must re-check
// uniqueness within the company before saving.
func (s *Supplier) SetDocument(doc string) error {
	if !document.ValidDocument(doc) {
		return shared.NewDomainError("INVALID_DOCUMENT", "Document must be a valid CPF or CNPJ")
	}

	s.Document = document.Normalize(doc)
	s.Touch()
	s.IncrementVersion()

	return nil
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	s.Address = address
	s.Touch()
	s.IncrementVersion()

	return nil
}

// SetContact sets the supplier's phone and email
func (s *Supplier) SetContact(phone, email string) error {
	if phone != "" && !document.ValidPhone(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	if email != "" && !document.ValidEmail(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	s.Phone = document.Normalize(phone)
	s.Email = strings.ToLower(email)
	s.Touch()
	s.IncrementVersion()

	return nil
}

// FormattedDocument returns the document in display format
func (s *Supplier) FormattedDocument() string {
	return document.FormatDocument(s.Document)
}
