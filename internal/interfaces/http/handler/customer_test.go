package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fingestor/backend/internal/application/partner"
	"github.com/fingestor/backend/internal/infrastructure/persistence"
	"github.com/fingestor/backend/internal/infrastructure/persistence/models"
	"github.com/fingestor/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const validCPF = "11144477735"

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

// newCustomerEngine wires a real repository and service on the given
// database behind the customer handler, authenticated as the given company.
func newCustomerEngine(t *testing.T, db *gorm.DB, companyID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := partner.NewCustomerService(persistence.NewGormCustomerRepository(db))
	h := NewCustomerHandler(service, zap.NewNop())

	engine := gin.New()
	api := engine.Group("/api/v1", middleware.DevAuthBypass(companyID, uuid.New()))
	h.RegisterRoutes(api)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestCustomerHandler_CRUD(t *testing.T) {
	companyID := uuid.New()
	engine := newCustomerEngine(t, newHandlerTestDB(t), companyID)

	create := postJSON(t, engine, "/api/v1/customers", gin.H{
		"name":     "João Silva",
		"document": validCPF,
		"email":    "joao@example.com",
	})
	require.Equal(t, http.StatusCreated, create.Code)

	var envelope struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &envelope))
	customerID := envelope.Data.ID
	require.NotEqual(t, uuid.Nil, customerID)

	t.Run("rejects duplicate document", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/customers", gin.H{
			"name":     "Outro Cliente",
			"document": validCPF,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ALREADY_EXISTS")
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/customers", gin.H{"document": validCPF})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "BAD_REQUEST")
	})

	t.Run("gets created customer", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+customerID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "João Silva")
	})

	t.Run("returns 404 for unknown customer", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists with search and meta", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers?search=joão", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Data []json.RawMessage `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list.Data, 1)
	})

	t.Run("updates contact fields", func(t *testing.T) {
		payload, err := json.Marshal(gin.H{"phone": "11987654321"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/customers/"+customerID.String(), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "11987654321")
	})

	t.Run("deletes with confirmation message", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/customers/"+customerID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Customer deleted successfully")

		again := httptest.NewRecorder()
		engine.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/api/v1/customers/"+customerID.String(), nil))
		assert.Equal(t, http.StatusNotFound, again.Code)
	})
}

func TestCustomerHandler_TenantIsolation(t *testing.T) {
	db := newHandlerTestDB(t)
	engine := newCustomerEngine(t, db, uuid.New())

	create := postJSON(t, engine, "/api/v1/customers", gin.H{
		"name":     "Cliente A",
		"document": validCPF,
	})
	require.Equal(t, http.StatusCreated, create.Code)

	var envelope struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &envelope))

	// Same database, different tenant: the record must be invisible.
	otherEngine := newCustomerEngine(t, db, uuid.New())
	w := httptest.NewRecorder()
	otherEngine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+envelope.Data.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
