package handler

import (
	"github.com/fingestor/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BillingHandler serves billing (payment slip) endpoints
type BillingHandler struct {
	BaseHandler
	billingService *billing.BillingService
}

// NewBillingHandler creates a billing handler
func NewBillingHandler(billingService *billing.BillingService, logger *zap.Logger) *BillingHandler {
	return &BillingHandler{
		BaseHandler:    NewBaseHandler(logger),
		billingService: billingService,
	}
}

// RegisterRoutes registers the billing routes
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billings := rg.Group("/billings")
	{
		billings.POST("", h.Create)
		billings.GET("", h.List)
		billings.GET("/:id", h.Get)
		billings.PUT("/:id", h.Update)
		billings.POST("/:id/pay", h.Pay)
		billings.POST("/:id/cancel", h.Cancel)
		billings.DELETE("/:id", h.Delete)
	}
}

type createBillingRequest struct {
	CustomerID    uuid.UUID       `json:"customer_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DueDate       apiDate         `json:"due_date" binding:"required"`
	Barcode       string          `json:"barcode"`
	DigitableLine string          `json:"digitable_line"`
}

type updateBillingRequest struct {
	Barcode       *string `json:"barcode"`
	DigitableLine *string `json:"digitable_line"`
}

type payBillingRequest struct {
	PaymentDate *apiDate `json:"payment_date"`
}

// Create creates a billing for a customer
func (h *BillingHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.billingService.Create(c.Request.Context(), companyID, billing.CreateBillingRequest{
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		DueDate:       req.DueDate.Time,
		Barcode:       req.Barcode,
		DigitableLine: req.DigitableLine,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns a page of billings, filterable by status and customer
func (h *BillingHandler) List(c *gin.Context) {
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
	for _, key := range []string{"status", "customer_id"} {
		if value := c.Query(key); value != "" {
			filter.Filters[key] = value
		}
	}

	billings, total, err := h.billingService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, billings, total, params.Page, params.PageSize)
}

// Get returns a single billing
func (h *BillingHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	billingID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.billingService.GetByID(c.Request.Context(), companyID, billingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update changes the payment slip data of a pending billing
func (h *BillingHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	billingID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.billingService.Update(c.Request.Context(), companyID, billingID, billing.UpdateBillingRequest{
		Barcode:       req.Barcode,
		DigitableLine: req.DigitableLine,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Pay settles a pending billing
func (h *BillingHandler) Pay(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	billingID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req payBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, err)
		return
	}

	response, err := h.billingService.Pay(c.Request.Context(), companyID, billingID, billing.PayBillingRequest{
		PaymentDate: req.PaymentDate.timeOrNil(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Cancel cancels a pending billing
func (h *BillingHandler) Cancel(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	billingID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.billingService.Cancel(c.Request.Context(), companyID, billingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a billing
func (h *BillingHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	billingID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.billingService.Delete(c.Request.Context(), companyID, billingID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Billing")
}
