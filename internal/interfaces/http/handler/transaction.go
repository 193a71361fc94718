package handler

import (
	"github.com/fingestor/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionHandler serves financial transaction endpoints, including the
// payment operation
type TransactionHandler struct {
	BaseHandler
	transactionService *finance.TransactionService
}

// NewTransactionHandler creates a transaction handler
func NewTransactionHandler(transactionService *finance.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler:        NewBaseHandler(logger),
		transactionService: transactionService,
	}
}

// RegisterRoutes registers the transaction routes under /financial
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/financial/transactions")
	{
		transactions.POST("", h.Create)
		transactions.GET("", h.List)
		transactions.GET("/:id", h.Get)
		transactions.PUT("/:id", h.Update)
		transactions.POST("/:id/pay", h.Pay)
		transactions.DELETE("/:id", h.Delete)
	}
}

type createTransactionRequest struct {
	AccountID    uuid.UUID       `json:"account_id" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=income expense"`
	Description  string          `json:"description" binding:"required,max=500"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DueDate      apiDate         `json:"due_date" binding:"required"`
	CategoryID   *uuid.UUID      `json:"category_id"`
	CostCenterID *uuid.UUID      `json:"cost_center_id"`
}

// updateTransactionRequest distinguishes absent reference fields from
// explicit nulls so a PUT can clear a category or cost center.
type updateTransactionRequest struct {
	Description     *string          `json:"description" binding:"omitempty,max=500"`
	Amount          *decimal.Decimal `json:"amount"`
	DueDate         *apiDate         `json:"due_date"`
	CategoryID      *uuid.UUID       `json:"category_id"`
	ClearCategory   bool             `json:"clear_category"`
	CostCenterID    *uuid.UUID       `json:"cost_center_id"`
	ClearCostCenter bool             `json:"clear_cost_center"`
}

type payTransactionRequest struct {
	PaymentDate *apiDate `json:"payment_date"`
}

// Create creates a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.transactionService.Create(c.Request.Context(), companyID, finance.CreateTransactionRequest{
		AccountID:    req.AccountID,
		Type:         req.Type,
		Description:  req.Description,
		Amount:       req.Amount,
		DueDate:      req.DueDate.Time,
		CategoryID:   req.CategoryID,
		CostCenterID: req.CostCenterID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns a page of transactions, filterable by type, status and
// account
func (h *TransactionHandler) List(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	filter := finance.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
		Filters:  map[string]interface{}{},
	}
	for _, key := range []string{"type", "status", "account_id"} {
		if value := c.Query(key); value != "" {
			filter.Filters[key] = value
		}
	}

	transactions, total, err := h.transactionService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, transactions, total, params.Page, params.PageSize)
}

// Get returns a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	transactionID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.transactionService.GetByID(c.Request.Context(), companyID, transactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update applies a partial update to a pending transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	transactionID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	update := finance.UpdateTransactionRequest{
		Description:     req.Description,
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		ClearCategory:   req.ClearCategory,
		CostCenterID:    req.CostCenterID,
		ClearCostCenter: req.ClearCostCenter,
	}
	if req.DueDate != nil {
		update.DueDate = req.DueDate.timeOrNil()
	}

	response, err := h.transactionService.Update(c.Request.Context(), companyID, transactionID, update)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Pay settles a pending transaction
func (h *TransactionHandler) Pay(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	transactionID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req payTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, err)
		return
	}

	response, err := h.transactionService.Pay(c.Request.Context(), companyID, transactionID, finance.PayTransactionRequest{
		PaymentDate: req.PaymentDate.timeOrNil(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	transactionID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), companyID, transactionID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Transaction")
}
