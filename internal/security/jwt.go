package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carries the identity and tenant of the authenticated account.
// Subject is the account email. Both token kinds share the schema; only
// the type and expiry differ.
type Claims struct {
	UserID    int64  `json:"user_id"`
	TenantID  int64  `json:"tenant_id"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenIssuer signs access and refresh tokens with a process-wide symmetric
// key. It is built once at startup and never mutated.
type TokenIssuer struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret, algorithm string, accessTTL, refreshTTL time.Duration) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenIssuer{
		secret:     []byte(secret),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func (i *TokenIssuer) Issue(email string, userID, tenantID int64, typ TokenType, now time.Time) (string, error) {
	claims := Claims{
		UserID:    userID,
		TenantID:  tenantID,
		TokenType: string(typ),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.TTL(typ))),
		},
	}

	token := jwt.NewWithClaims(i.method, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) TTL(typ TokenType) time.Duration {
	if typ == TokenTypeRefresh {
		return i.refreshTTL
	}
	return i.accessTTL
}

func (i *TokenIssuer) AccessTTL() time.Duration { return i.accessTTL }
