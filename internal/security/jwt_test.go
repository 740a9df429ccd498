package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func parseClaims(t *testing.T, signed, secret string) *Claims {
	t.Helper()
	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		t.Fatalf("expected valid claims")
	}
	return claims
}

func TestIssueRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "HS256", 30*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)

	access, err := issuer.Issue("admin@clinicore.com", 1, 7, TokenTypeAccess, now)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	refresh, err := issuer.Issue("admin@clinicore.com", 1, 7, TokenTypeRefresh, now)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	accessClaims := parseClaims(t, access, "test-secret")
	refreshClaims := parseClaims(t, refresh, "test-secret")

	if accessClaims.Subject != "admin@clinicore.com" || refreshClaims.Subject != "admin@clinicore.com" {
		t.Fatalf("subject mismatch: %q vs %q", accessClaims.Subject, refreshClaims.Subject)
	}
	if accessClaims.UserID != 1 || refreshClaims.UserID != 1 {
		t.Fatalf("user_id mismatch")
	}
	if accessClaims.TenantID != 7 || refreshClaims.TenantID != 7 {
		t.Fatalf("tenant_id mismatch")
	}
	if accessClaims.TokenType != "access" {
		t.Fatalf("expected access type, got %q", accessClaims.TokenType)
	}
	if refreshClaims.TokenType != "refresh" {
		t.Fatalf("expected refresh type, got %q", refreshClaims.TokenType)
	}

	wantAccessExp := now.Add(30 * time.Minute)
	if !accessClaims.ExpiresAt.Time.Equal(wantAccessExp) {
		t.Fatalf("access exp = %v, want %v", accessClaims.ExpiresAt.Time, wantAccessExp)
	}
	wantRefreshExp := now.Add(7 * 24 * time.Hour)
	if !refreshClaims.ExpiresAt.Time.Equal(wantRefreshExp) {
		t.Fatalf("refresh exp = %v, want %v", refreshClaims.ExpiresAt.Time, wantRefreshExp)
	}
	if !accessClaims.ExpiresAt.Time.Before(refreshClaims.ExpiresAt.Time) {
		t.Fatalf("access token must expire before refresh token")
	}
}

func TestNewTokenIssuerRejectsNonHMAC(t *testing.T) {
	if _, err := NewTokenIssuer("secret", "RS256", time.Minute, time.Hour); err == nil {
		t.Fatalf("expected error for RS256")
	}
	if _, err := NewTokenIssuer("secret", "none", time.Minute, time.Hour); err == nil {
		t.Fatalf("expected error for none")
	}
	if _, err := NewTokenIssuer("secret", "bogus", time.Minute, time.Hour); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
