package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	base "github.com/clinicore/auth/libs/config"
)

type DBConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

type Config struct {
	App             base.AppConfig
	JWTSecret       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	LookupTimeout   time.Duration
	VerifyTimeout   time.Duration
	DB              DBConfig
}

func Load() (*Config, error) {
	appCfg, err := base.Load(os.Getenv("CLINICORE_CONFIG"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App:             *appCfg,
		JWTSecret:       envString("CLINICORE_JWT_SECRET", ""),
		JWTAlgorithm:    envString("CLINICORE_JWT_ALGORITHM", "HS256"),
		AccessTokenTTL:  envDuration("CLINICORE_ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: envDuration("CLINICORE_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		LookupTimeout:   envDuration("CLINICORE_LOOKUP_TIMEOUT", 3*time.Second),
		VerifyTimeout:   envDuration("CLINICORE_VERIFY_TIMEOUT", 5*time.Second),
		DB: DBConfig{
			Host:     envString("POSTGRES_HOST", "localhost"),
			Port:     envInt("POSTGRES_PORT", 5432),
			Name:     envString("POSTGRES_DB", "clinicore"),
			User:     envString("POSTGRES_USER", "clinicore"),
			Password: envString("POSTGRES_PASSWORD", "clinicore"),
			SSLMode:  envString("POSTGRES_SSLMODE", "disable"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("CLINICORE_JWT_SECRET must be set")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
