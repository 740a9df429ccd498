package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextTenantIDKey = "tenant_id"
	ContextEmailKey    = "email"
)

// Middleware guards routes that require a valid access token. Refresh tokens
// are not accepted here.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearer(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		claims, err := ParseJWT(token, secret, TokenTypeAccess)
		if err != nil || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextTenantIDKey, claims.TenantID)
		c.Set(ContextEmailKey, claims.Subject)
		c.Next()
	}
}
