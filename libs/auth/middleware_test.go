package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware([]byte("secret")))
	r.GET("/me", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotUserID int64
	var gotTenantID int64
	var gotEmail string

	r := gin.New()
	r.Use(Middleware([]byte("secret")))
	r.GET("/me", func(c *gin.Context) {
		gotUserID = c.GetInt64(ContextUserIDKey)
		gotTenantID = c.GetInt64(ContextTenantIDKey)
		gotEmail = c.GetString(ContextEmailKey)
		c.JSON(200, gin.H{"ok": true})
	})

	signed := signToken(t, "secret", TokenTypeAccess, time.Now().Add(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != 1 || gotTenantID != 1 || gotEmail != "admin@clinicore.com" {
		t.Fatalf("context not populated: user=%d tenant=%d email=%q", gotUserID, gotTenantID, gotEmail)
	}
}

func TestMiddlewareRejectsRefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware([]byte("secret")))
	r.GET("/me", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	signed := signToken(t, "secret", TokenTypeRefresh, time.Now().Add(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
