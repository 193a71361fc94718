package middleware

import (
	"github.com/fingestor/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DevAuthBypass authenticates every request as a fixed development user.
// It replaces the JWT middleware when app.dev_auth_bypass is set; config
// validation refuses that flag in production.
func DevAuthBypass(companyID, userID uuid.UUID) gin.HandlerFunc {
	claims := &auth.Claims{
		CompanyID: companyID.String(),
		UserID:    userID.String(),
		Email:     "dev@localhost",
		Role:      "admin",
	}
	return func(c *gin.Context) {
		setClaims(c, claims)
		c.Next()
	}
}
