package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/auth/internal/roles"
	"github.com/clinicore/auth/internal/security"
	"github.com/clinicore/auth/internal/storage"
	"github.com/jackc/pgx/v5"
	"log/slog"
)

// Expected, user-facing outcomes. Everything else returned by Authenticate
// is an internal fault (store unreachable, signing failure, timeout) and
// maps to a server error, never to a credential rejection.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Store interface {
	GetUserByIdentifier(ctx context.Context, identifier string) (*storage.User, error)
}

// TokenPair is the issuance result handed back to the caller. It is never
// persisted; both tokens are self-contained.
type TokenPair struct {
	AccessToken       string     `json:"access_token"`
	RefreshToken      string     `json:"refresh_token"`
	ExpiresIn         int64      `json:"expires_in"`
	UserID            int64      `json:"user_id"`
	Role              roles.Role `json:"user_role"`
	UserType          roles.Kind `json:"user_type"`
	Requires2FA       bool       `json:"requires_2fa"`
	MustResetPassword bool       `json:"must_reset_password"`
}

type AuthService struct {
	Store         Store
	Issuer        *security.TokenIssuer
	Resolver      roles.Resolver
	Logger        *slog.Logger
	Metrics       *Metrics
	Clock         Clock
	LookupTimeout time.Duration
	VerifyTimeout time.Duration
}

func NewAuthService(store Store, issuer *security.TokenIssuer, logger *slog.Logger, metrics *Metrics, lookupTimeout, verifyTimeout time.Duration) *AuthService {
	return &AuthService{
		Store:         store,
		Issuer:        issuer,
		Resolver:      roles.Heuristic{},
		Logger:        logger,
		Metrics:       metrics,
		Clock:         systemClock{},
		LookupTimeout: lookupTimeout,
		VerifyTimeout: verifyTimeout,
	}
}

// Authenticate runs the full credential check and issues a token pair.
// Check order is fixed: lookup, active flag, password. An unknown identifier
// and a wrong password both return ErrInvalidCredentials; a deactivated
// account returns ErrAccountDeactivated after the lookup but before the
// password is ever compared.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*TokenPair, error) {
	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.Metrics.LoginAttempts.WithLabelValues("not_found").Inc()
			return nil, ErrInvalidCredentials
		}
		s.Metrics.LoginAttempts.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !user.IsActive {
		s.Metrics.LoginAttempts.WithLabelValues("deactivated").Inc()
		return nil, ErrAccountDeactivated
	}

	ok, err := s.verify(ctx, password, user.PasswordHash)
	if err != nil {
		s.Metrics.LoginAttempts.WithLabelValues("verify_error").Inc()
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.Metrics.LoginAttempts.WithLabelValues("bad_password").Inc()
		return nil, ErrInvalidCredentials
	}

	role := s.Resolver.Resolve(user.IsSuperuser, user.Email)

	now := s.Clock.Now()
	access, err := s.Issuer.Issue(user.Email, user.ID, user.TenantID, security.TokenTypeAccess, now)
	if err != nil {
		s.Metrics.LoginAttempts.WithLabelValues("sign_error").Inc()
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.Issuer.Issue(user.Email, user.ID, user.TenantID, security.TokenTypeRefresh, now)
	if err != nil {
		s.Metrics.LoginAttempts.WithLabelValues("sign_error").Inc()
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	s.Metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.Metrics.TokensIssued.WithLabelValues(string(security.TokenTypeAccess)).Inc()
	s.Metrics.TokensIssued.WithLabelValues(string(security.TokenTypeRefresh)).Inc()

	return &TokenPair{
		AccessToken:       access,
		RefreshToken:      refresh,
		ExpiresIn:         int64(s.Issuer.AccessTTL().Seconds()),
		UserID:            user.ID,
		Role:              role,
		UserType:          roles.KindFor(role),
		Requires2FA:       false,
		MustResetPassword: false,
	}, nil
}

func (s *AuthService) lookup(ctx context.Context, identifier string) (*storage.User, error) {
	if s.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.LookupTimeout)
		defer cancel()
	}
	return s.Store.GetUserByIdentifier(ctx, identifier)
}

// verify bounds the deliberately slow hash comparison so a stalled
// verification cannot hold a request open indefinitely. A timeout is an
// internal fault, not a credential rejection.
func (s *AuthService) verify(ctx context.Context, password, hash string) (bool, error) {
	if s.VerifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.VerifyTimeout)
		defer cancel()
	}

	start := s.Clock.Now()
	done := make(chan bool, 1)
	go func() {
		done <- security.VerifyPassword(password, hash)
	}()

	select {
	case ok := <-done:
		s.Metrics.VerifyDuration.Observe(s.Clock.Now().Sub(start).Seconds())
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
