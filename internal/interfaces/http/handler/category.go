package handler

import (
	"github.com/fingestor/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler serves financial category CRUD endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *finance.CategoryService
}

// NewCategoryHandler creates a category handler
func NewCategoryHandler(categoryService *finance.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     NewBaseHandler(logger),
		categoryService: categoryService,
	}
}

// RegisterRoutes registers the category routes under /financial
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/financial/categories")
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// Create creates a category
func (h *CategoryHandler) Create(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.categoryService.Create(c.Request.Context(), companyID, finance.CreateCategoryRequest{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns the company's categories, optionally filtered by type
func (h *CategoryHandler) List(c *gin.Context) {
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
	if categoryType := c.Query("type"); categoryType != "" {
		filter.Filters["type"] = categoryType
	}

	categories, err := h.categoryService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Get returns a single category
func (h *CategoryHandler) Get(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	categoryID, ok := h.PathID(c)
	if !ok {
		return
	}

	response, err := h.categoryService.GetByID(c.Request.Context(), companyID, categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update renames a category
func (h *CategoryHandler) Update(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	categoryID, ok := h.PathID(c)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	response, err := h.categoryService.Update(c.Request.Context(), companyID, categoryID, finance.UpdateCategoryRequest{
		Name: req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	companyID, ok := h.CompanyID(c)
	if !ok {
		return
	}
	categoryID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), companyID, categoryID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Category")
}
