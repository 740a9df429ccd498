package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims mirrors the claims minted by the auth service. The subject is the
// account email; user_id and tenant_id identify the account and its tenant.
type Claims struct {
	UserID    int64  `json:"user_id"`
	TenantID  int64  `json:"tenant_id"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// ParseJWT validates signature, expiry and token type. A refresh token
// presented where an access token is expected is rejected, and vice versa.
func ParseJWT(tokenString string, secret []byte, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func ExtractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
