package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedTestData adds the fixtures exercised by the integration tests: a
// patient-portal account and a deactivated account that must never log in.
func seedTestData(ctx context.Context, pool *pgxpool.Pool) error {
	users := []seedUser{
		{
			tenantID: 1,
			email:    "patient@clinicore.com",
			cpf:      "55566677788",
			fullName: "José Oliveira",
			password: "patient123",
			isActive: true,
		},
		{
			tenantID: 1,
			email:    "inactive@clinicore.com",
			cpf:      "99988877766",
			fullName: "Conta Desativada",
			password: "inactive123",
			isActive: false,
		},
	}

	return insertUsers(ctx, pool, users)
}
