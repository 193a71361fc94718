package partner

import (
	"time"

	"github.com/fingestor/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreatePartnerRequest represents a request to create a customer or supplier
type CreatePartnerRequest struct {
	Name     string
	Document string
	Address  string
	Phone    string
	Email    string
}

// UpdatePartnerRequest represents a partial update. Nil fields are left
// untouched; non-nil fields are applied, including empty strings for the
// optional contact fields.
type UpdatePartnerRequest struct {
	Name     *string
	Document *string
	Address  *string
	Phone    *string
	Email    *string
}

// ListFilter represents pagination parameters for partner listings
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyID         uuid.UUID `json:"company_id"`
	Name              string    `json:"name"`
	Document          string    `json:"document"`
	FormattedDocument string    `json:"formatted_document"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyID         uuid.UUID `json:"company_id"`
	Name              string    `json:"name"`
	Document          string    `json:"document"`
	FormattedDocument string    `json:"formatted_document"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to its response form
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID,
		CompanyID:         c.CompanyID,
		Name:              c.Name,
		Document:          c.Document,
		FormattedDocument: c.FormattedDocument(),
		Address:           c.Address,
		Phone:             c.Phone,
		Email:             c.Email,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ToSupplierResponse converts a domain supplier to its response form
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                s.ID,
		CompanyID:         s.CompanyID,
		Name:              s.Name,
		Document:          s.Document,
		FormattedDocument: s.FormattedDocument(),
		Address:           s.Address,
		Phone:             s.Phone,
		Email:             s.Email,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (f ListFilter) normalized() (int, int) {
	page := f.Page
	if page <= 0 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	return page, pageSize
}
