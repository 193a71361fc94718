package handler

import (
	"github.com/fingestor/backend/internal/application/report"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard KPI endpoint
type DashboardHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(dashboardService *report.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/kpis", h.KPIs)
}

// KPIs returns the month-over-month financial KPIs and entity counters
func (h *DashboardHandler) KPIs(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}

	response, err := h.dashboardService.KPIs(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
