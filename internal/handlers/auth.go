package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/clinicore/auth/internal/roles"
	"github.com/clinicore/auth/internal/service"
	"github.com/clinicore/auth/internal/storage"
	"github.com/clinicore/auth/libs/auth"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"log/slog"
)

type UserReader interface {
	GetUserByID(ctx context.Context, id int64) (*storage.User, error)
}

type AuthHandler struct {
	Auth      *service.AuthService
	Users     UserReader
	Logger    *slog.Logger
	JWTSecret []byte
	Resolver  roles.Resolver
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type meResponse struct {
	ID       int64      `json:"id"`
	Email    string     `json:"email"`
	TenantID int64      `json:"tenant_id"`
	Role     roles.Role `json:"user_role"`
	UserType roles.Kind `json:"user_type"`
	IsActive bool       `json:"is_active"`
}

// detailResponse matches the error body shape external clients already parse.
type detailResponse struct {
	Detail string `json:"detail"`
}

func NewAuthHandler(svc *service.AuthService, users UserReader, logger *slog.Logger, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		Auth:      svc,
		Users:     users,
		Logger:    logger,
		JWTSecret: []byte(jwtSecret),
		Resolver:  roles.Heuristic{},
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	protected := r.Group("/", auth.Middleware(h.JWTSecret))
	protected.GET("/me", h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid payload"})
		return
	}

	pair, err := h.Auth.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, detailResponse{Detail: "Invalid credentials"})
		case errors.Is(err, service.ErrAccountDeactivated):
			c.JSON(http.StatusUnauthorized, detailResponse{Detail: "Account is deactivated"})
		default:
			h.Logger.Error("login failed", "error", err)
			c.JSON(http.StatusInternalServerError, detailResponse{Detail: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Logout is stateless: tokens stay valid until they expire on their own.
// There is no server-side session or revocation list to clear.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, detailResponse{Detail: "Could not validate credentials"})
		return
	}

	user, err := h.Users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, detailResponse{Detail: "Could not validate credentials"})
			return
		}
		h.Logger.Error("me lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, detailResponse{Detail: "Internal server error"})
		return
	}

	role := h.Resolver.Resolve(user.IsSuperuser, user.Email)
	c.JSON(http.StatusOK, meResponse{
		ID:       user.ID,
		Email:    user.Email,
		TenantID: user.TenantID,
		Role:     role,
		UserType: roles.KindFor(role),
		IsActive: user.IsActive,
	})
}

func userIDFromContext(c *gin.Context) (int64, bool) {
	val, ok := c.Get(auth.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok
}
