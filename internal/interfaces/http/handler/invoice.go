package handler

import (
	"github.com/fingestor/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InvoiceHandler serves fiscal invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billing.InvoiceService
}

// NewInvoiceHandler creates an invoice handler
func NewInvoiceHandler(invoiceService *billing.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    NewBaseHandler(logger),
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers the invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.PUT("/:id", h.Update)
		invoices.POST("/:id/approve", h.Approve)
		invoices.POST("/:id/cancel", h.Cancel)
		invoices.DELETE("/:id", h.Delete)
	}
}

type createInvoiceRequest struct {
	Type       string          `json:"type" binding:"required,oneof=nfe nfse"`
	Number     string          `json:"number" binding:"required"`
	Series     string          `json:"series" binding:"required"`
	IssueDate  apiDate         `json:"issue_date" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	CustomerID *uuid.UUID      `json:"customer_id"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
}

type updateInvoiceRequest struct {
	CustomerID    *uuid.UUID `json:"customer_id"`
	ClearCustomer bool       `json:"clear_customer"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	ClearSupplier bool       `json:"clear_supplier"`
}

// Create registers an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.invoiceService.Create(c.Request.Context(), companyID, billing.CreateInvoiceRequest{
		Type:       req.Type,
		Number:     req.Number,
		Series:     req.Series,
		IssueDate:  req.IssueDate.Time,
		Amount:     req.Amount,
		CustomerID: req.CustomerID,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns a page of invoices, filterable by type and status
func (h *InvoiceHandler) List(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	filter := billing.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
		Filters:  map[string]interface{}{},
	}
	for _, key := range []string{"type", "status"} {
		if value := c.Query(key); value != "" {
			filter.Filters[key] = value
		}
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, total, params.Page, params.PageSize)
}

// Get returns a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	invoiceID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.invoiceService.GetByID(c.Request.Context(), companyID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update changes the partner references of an issued invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	invoiceID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.invoiceService.Update(c.Request.Context(), companyID, invoiceID, billing.UpdateInvoiceRequest{
		CustomerID:    req.CustomerID,
		ClearCustomer: req.ClearCustomer,
		SupplierID:    req.SupplierID,
		ClearSupplier: req.ClearSupplier,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Approve approves an issued invoice
func (h *InvoiceHandler) Approve(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	invoiceID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.invoiceService.Approve(c.Request.Context(), companyID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Cancel cancels an invoice
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	invoiceID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.invoiceService.Cancel(c.Request.Context(), companyID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	invoiceID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), companyID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Invoice")
}
