package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/clinicore/auth/internal/security"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedUser struct {
	tenantID    int64
	email       string
	cpf         string
	fullName    string
	password    string
	isActive    bool
	isSuperuser bool
}

func main() {
	env := getEnv("CLINICORE_ENV", "dev")
	if env != "dev" && env != "test" {
		log.Fatalf("refusing to seed: CLINICORE_ENV must be 'dev' or 'test' (got '%s')", env)
	}

	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	db := getEnv("POSTGRES_DB", "clinicore")
	user := getEnv("POSTGRES_USER", "clinicore")
	password := getEnv("POSTGRES_PASSWORD", "clinicore")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, db, sslmode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	fmt.Println("Seeding database...")

	if err := seedUsers(ctx, pool); err != nil {
		log.Fatalf("seed users: %v", err)
	}
	fmt.Println("✓ Clinic users seeded")

	if err := seedTestData(ctx, pool); err != nil {
		log.Fatalf("seed test data: %v", err)
	}
	fmt.Println("✓ Test fixtures seeded")

	fmt.Println("\nLogin credentials:")
	fmt.Println("  Admin:     admin@clinicore.com / admin123")
	fmt.Println("  Doctor:    doctor@clinicore.com / doctor123")
	fmt.Println("  Secretary: secretary@clinicore.com / secretary123")
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	users := []seedUser{
		{
			tenantID:    1,
			email:       "admin@clinicore.com",
			cpf:         "12345678901",
			fullName:    "Administrator",
			password:    "admin123",
			isActive:    true,
			isSuperuser: true,
		},
		{
			tenantID: 1,
			email:    "doctor@clinicore.com",
			cpf:      "98765432100",
			fullName: "Dr. João Silva",
			password: "doctor123",
			isActive: true,
		},
		{
			tenantID: 1,
			email:    "secretary@clinicore.com",
			cpf:      "11122233344",
			fullName: "Maria Santos",
			password: "secretary123",
			isActive: true,
		},
	}

	return insertUsers(ctx, pool, users)
}

func insertUsers(ctx context.Context, pool *pgxpool.Pool, users []seedUser) error {
	for _, u := range users {
		hash, err := security.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO users (tenant_id, email, cpf, full_name, password_hash, is_active, is_superuser)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (email) DO UPDATE SET password_hash = $5, is_active = $6, is_superuser = $7
		`, u.tenantID, u.email, u.cpf, u.fullName, hash, u.isActive, u.isSuperuser)
		if err != nil {
			return fmt.Errorf("insert %s: %w", u.email, err)
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
