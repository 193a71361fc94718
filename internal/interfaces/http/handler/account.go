package handler

import (
	"github.com/fingestor/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountHandler serves financial account CRUD endpoints
type AccountHandler struct {
	BaseHandler
	accountService *finance.AccountService
}

// NewAccountHandler creates an account handler
func NewAccountHandler(accountService *finance.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
	}
}

// RegisterRoutes registers the account routes under /financial
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/financial/accounts")
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.GET("/:id", h.Get)
		accounts.PUT("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)
	}
}

type createAccountRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	Type string `json:"type" binding:"required,oneof=bank cash"`
}

type updateAccountRequest struct {
	Name    *string          `json:"name" binding:"omitempty,max=200"`
	Balance *decimal.Decimal `json:"balance"`
}

// Create creates a financial account
func (h *AccountHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.accountService.Create(c.Request.Context(), companyID, finance.CreateAccountRequest{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns a page of accounts
func (h *AccountHandler) List(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	accounts, total, err := h.accountService.List(c.Request.Context(), companyID, finance.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, accounts, total, params.Page, params.PageSize)
}

// Get returns a single account
func (h *AccountHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	accountID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.accountService.GetByID(c.Request.Context(), companyID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update applies a partial update to an account
func (h *AccountHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	accountID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.accountService.Update(c.Request.Context(), companyID, accountID, finance.UpdateAccountRequest{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes an account
func (h *AccountHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	accountID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), companyID, accountID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Account")
}
