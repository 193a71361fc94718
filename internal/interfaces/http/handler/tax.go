package handler

import (
	"github.com/fingestor/backend/internal/application/tax"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TaxHandler serves tax simulation endpoints
type TaxHandler struct {
	BaseHandler
	simulationService *tax.SimulationService
}

// NewTaxHandler creates a tax handler
func NewTaxHandler(simulationService *tax.SimulationService, logger *zap.Logger) *TaxHandler {
	return &TaxHandler{
		BaseHandler:       NewBaseHandler(logger),
		simulationService: simulationService,
	}
}

// RegisterRoutes registers the tax routes under /financial
func (h *TaxHandler) RegisterRoutes(rg *gin.RouterGroup) {
	taxes := rg.Group("/financial/taxes")
	{
		taxes.POST("/simulate", h.Simulate)
		taxes.GET("/simulations", h.ListSimulations)
		taxes.GET("/simulations/:id", h.GetSimulation)
	}
}

type simulateRequest struct {
	AnnualRevenue decimal.Decimal `json:"annual_revenue" binding:"required"`
	Regime        string          `json:"regime" binding:"required,oneof=simples_nacional lucro_presumido"`
}

// Simulate computes and stores a tax simulation
func (h *TaxHandler) Simulate(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.simulationService.Simulate(c.Request.Context(), companyID, tax.SimulateRequest{
		AnnualRevenue: req.AnnualRevenue,
		Regime:        req.Regime,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// ListSimulations returns a page of stored simulations
func (h *TaxHandler) ListSimulations(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	params, ok := h.ListParams(c)
	if !ok {
		return
	}

	simulations, total, err := h.simulationService.List(c.Request.Context(), companyID, tax.ListFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, simulations, total, params.Page, params.PageSize)
}

// GetSimulation returns a single stored simulation
func (h *TaxHandler) GetSimulation(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	simulationID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.simulationService.GetByID(c.Request.Context(), companyID, simulationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
