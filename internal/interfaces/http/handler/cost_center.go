package handler

import (
	"github.com/fingestor/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CostCenterHandler serves cost center CRUD endpoints
type CostCenterHandler struct {
	BaseHandler
	costCenterService *finance.CostCenterService
}

// NewCostCenterHandler creates a cost center handler
func NewCostCenterHandler(costCenterService *finance.CostCenterService, logger *zap.Logger) *CostCenterHandler {
	return &CostCenterHandler{
		BaseHandler:       NewBaseHandler(logger),
		costCenterService: costCenterService,
	}
}

// RegisterRoutes registers the cost center routes under /financial
func (h *CostCenterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	costCenters := rg.Group("/financial/cost_centers")
	{
		costCenters.POST("", h.Create)
		costCenters.GET("", h.List)
		costCenters.GET("/:id", h.Get)
		costCenters.PUT("/:id", h.Update)
		costCenters.DELETE("/:id", h.Delete)
	}
}

type createCostCenterRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type updateCostCenterRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// Create creates a cost center
func (h *CostCenterHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.costCenterService.Create(c.Request.Context(), companyID, finance.CreateCostCenterRequest{
		Name: req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns the company's cost centers
func (h *CostCenterHandler) List(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	costCenters, err := h.costCenterService.List(c.Request.Context(), companyID, finance.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Search:   params.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, costCenters)
}

// Get returns a single cost center
func (h *CostCenterHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	costCenterID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.costCenterService.GetByID(c.Request.Context(), companyID, costCenterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update renames a cost center
func (h *CostCenterHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	costCenterID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.costCenterService.Update(c.Request.Context(), companyID, costCenterID, finance.UpdateCostCenterRequest{
		Name: req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a cost center
func (h *CostCenterHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	costCenterID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.costCenterService.Delete(c.Request.Context(), companyID, costCenterID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Cost center")
}
