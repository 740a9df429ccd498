package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// GetUserByIdentifier resolves an account by email or CPF. The identifier is
// matched verbatim; the observed system applies no case or whitespace
// normalization, so neither do we. Returns pgx.ErrNoRows when no row matches.
func (s *Store) GetUserByIdentifier(ctx context.Context, identifier string) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, tenant_id, email, cpf, password_hash, is_active, is_superuser
		FROM users
		WHERE email = $1 OR cpf = $1
	`, identifier)

	var user User
	if err := row.Scan(&user.ID, &user.TenantID, &user.Email, &user.CPF, &user.PasswordHash, &user.IsActive, &user.IsSuperuser); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, tenant_id, email, cpf, password_hash, is_active, is_superuser
		FROM users
		WHERE id = $1
	`, id)

	var user User
	if err := row.Scan(&user.ID, &user.TenantID, &user.Email, &user.CPF, &user.PasswordHash, &user.IsActive, &user.IsSuperuser); err != nil {
		return nil, err
	}
	return &user, nil
}
