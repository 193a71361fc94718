// Package handler contains the HTTP handlers for the API. Each handler
// binds requests, resolves the tenant from the JWT claims, delegates to an
// application service, and maps domain errors to HTTP statuses.
package handler

import (
	"errors"
	"net/http"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/fingestor/backend/internal/interfaces/http/dto"
	"github.com/fingestor/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides the response and error helpers shared by all handlers
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a base handler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseHandler{logger: logger}
}

// Success writes a 200 response with the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta writes a 200 response with pagination metadata
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created writes a 201 response
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Deleted writes the 200 confirmation body used by delete endpoints
func (h *BaseHandler) Deleted(c *gin.Context, resource string) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{
		Message: resource + " deleted successfully",
	}))
}

// Error writes an error response with an explicit status
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	response := dto.NewErrorResponseWithRequestID(code, message, c.GetString("request_id"))
	c.JSON(status, response)
}

// BadRequest writes a 400 for malformed or invalid request payloads
func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, err.Error())
}

// HandleError maps a service error to an HTTP response. Domain errors keep
// their code and get the status dto.GetHTTPStatus assigns; anything else is
// logged and reported as a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	h.logger.Error("Unhandled error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// CompanyID resolves the tenant from the JWT claims. It aborts with a 401
// when the claims are missing or malformed and returns false.
func (h *BaseHandler) CompanyID(c *gin.Context) (uuid.UUID, bool) {
	companyID, err := uuid.Parse(middleware.GetJWTCompanyID(c))
	if err != nil || companyID == uuid.Nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing or invalid authentication")
		return uuid.Nil, false
	}
	return companyID, true
}

// UserID resolves the authenticated user from the JWT claims
func (h *BaseHandler) UserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(middleware.GetJWTUserID(c))
	if err != nil || userID == uuid.Nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing or invalid authentication")
		return uuid.Nil, false
	}
	return userID, true
}

// PathID binds and validates the :id path parameter
func (h *BaseHandler) PathID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// ListParams binds the common pagination query parameters
func (h *BaseHandler) ListParams(c *gin.Context) (dto.ListRequest, bool) {
	req := dto.ListRequest{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Invalid pagination parameters")
		return req, false
	}
	return req, true
}
