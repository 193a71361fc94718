package handler

import (
	"github.com/fingestor/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler serves customer CRUD endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partner.CustomerService
}

// NewCustomerHandler creates a customer handler
func NewCustomerHandler(customerService *partner.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     NewBaseHandler(logger),
		customerService: customerService,
	}
}

// RegisterRoutes registers the customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

type createPartnerRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Document string `json:"document" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type updatePartnerRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200"`
	Document *string `json:"document"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

func (r createPartnerRequest) toApplication() partner.CreatePartnerRequest {
	return partner.CreatePartnerRequest{
		Name:     r.Name,
		Document: r.Document,
		Address:  r.Address,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

func (r updatePartnerRequest) toApplication() partner.UpdatePartnerRequest {
	return partner.UpdatePartnerRequest{
		Name:     r.Name,
		Document: r.Document,
		Address:  r.Address,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

// Create creates a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.customerService.Create(c.Request.Context(), companyID, req.toApplication())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns a page of customers
func (h *CustomerHandler) List(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	customers, total, err := h.customerService.List(c.Request.Context(), companyID, partner.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, customers, total, params.Page, params.PageSize)
}

// Get returns a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	customerID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.customerService.GetByID(c.Request.Context(), companyID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update applies a partial update to a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	customerID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.customerService.Update(c.Request.Context(), companyID, customerID, req.toApplication())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	customerID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), companyID, customerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Customer")
}
