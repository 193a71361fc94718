package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewBaseHandler(nil)

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestBaseHandler_HandleError(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		w := performError(t, shared.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("uniqueness conflict maps to 400", func(t *testing.T) {
		w := performError(t, shared.NewDomainError("ALREADY_EXISTS", "Document already registered"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ALREADY_EXISTS")
	})

	t.Run("invalid state maps to 400", func(t *testing.T) {
		w := performError(t, shared.ErrInvalidState)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation code maps to 400", func(t *testing.T) {
		w := performError(t, shared.NewDomainError("INVALID_DOCUMENT", "Invalid CPF or CNPJ"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_DOCUMENT")
	})

	t.Run("unknown error maps to 500 without leaking details", func(t *testing.T) {
		w := performError(t, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestBaseHandler_Deleted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewBaseHandler(nil)

	router := gin.New()
	router.DELETE("/", func(c *gin.Context) {
		h.Deleted(c, "Customer")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Customer deleted successfully")
}
