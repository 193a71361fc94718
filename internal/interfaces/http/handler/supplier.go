package handler

import (
	"github.com/fingestor/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SupplierHandler serves supplier CRUD endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partner.SupplierService
}

// NewSupplierHandler creates a supplier handler
func NewSupplierHandler(supplierService *partner.SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		BaseHandler:     NewBaseHandler(logger),
		supplierService: supplierService,
	}
}

// RegisterRoutes registers the supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/:id", h.Get)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

// Create creates a supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.supplierService.Create(c.Request.Context(), companyID, req.toApplication())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns a page of suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	suppliers, total, err := h.supplierService.List(c.Request.Context(), companyID, partner.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, suppliers, total, params.Page, params.PageSize)
}

// Get returns a single supplier
func (h *SupplierHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	supplierID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.supplierService.GetByID(c.Request.Context(), companyID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update applies a partial update to a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	supplierID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.supplierService.Update(c.Request.Context(), companyID, supplierID, req.toApplication())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	supplierID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), companyID, supplierID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Supplier")
}
