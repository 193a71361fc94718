package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fingestor/backend/internal/application/finance"
	"github.com/fingestor/backend/internal/infrastructure/persistence"
	"github.com/fingestor/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newFinanceEngine(t *testing.T, db *gorm.DB, companyID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accountRepo := persistence.NewGormAccountRepository(db)
	transactionService := finance.NewTransactionService(
		persistence.NewGormTransactionRepository(db),
		accountRepo,
		persistence.NewGormCategoryRepository(db),
		persistence.NewGormCostCenterRepository(db),
	)
	accountService := finance.NewAccountService(accountRepo)

	engine := gin.New()
	api := engine.Group("/api/v1", middleware.DevAuthBypass(companyID, uuid.New()))
	NewAccountHandler(accountService, zap.NewNop()).RegisterRoutes(api)
	NewTransactionHandler(transactionService, zap.NewNop()).RegisterRoutes(api)
	return engine
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) uuid.UUID {
	t.Helper()
	var envelope struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEqual(t, uuid.Nil, envelope.Data.ID)
	return envelope.Data.ID
}

func TestTransactionHandler_PayFlow(t *testing.T) {
	companyID := uuid.New()
	engine := newFinanceEngine(t, newHandlerTestDB(t), companyID)

	account := postJSON(t, engine, "/api/v1/financial/accounts", gin.H{
		"name": "Conta Corrente",
		"type": "bank",
	})
	require.Equal(t, http.StatusCreated, account.Code)
	accountID := createdID(t, account)

	create := postJSON(t, engine, "/api/v1/financial/transactions", gin.H{
		"account_id":  accountID,
		"type":        "income",
		"description": "Consultoria",
		"amount":      "1500.00",
		"due_date":    "2026-09-15",
	})
	require.Equal(t, http.StatusCreated, create.Code)
	assert.Contains(t, create.Body.String(), `"status":"pending"`)
	transactionID := createdID(t, create)

	t.Run("rejects transaction on unknown account", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/financial/transactions", gin.H{
			"account_id":  uuid.New(),
			"type":        "expense",
			"description": "Aluguel",
			"amount":      "2000.00",
			"due_date":    "2026-09-01",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("pays a pending transaction", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/financial/transactions/"+transactionID.String()+"/pay", gin.H{
			"payment_date": "2026-09-10",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"paid"`)
	})

	t.Run("rejects paying twice", func(t *testing.T) {
		w := postJSON(t, engine, "/api/v1/financial/transactions/"+transactionID.String()+"/pay", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("filters list by status", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/financial/transactions?status=paid", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Data []struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list.Data, 1)
		assert.Equal(t, "paid", list.Data[0].Status)
	})
}
