package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DB_HOST", "DB_MAX_CONNS", "JWT_EXPIRATION_HOURS", "MIGRATIONS_PATH"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("MaxConns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("Expiration = %v, want 24h", cfg.JWT.Expiration)
	}
	if cfg.Database.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q", cfg.Database.MigrationsPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("JWT_REFRESH_EXPIRATION_HOURS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Database.MaxConns != 25 || cfg.JWT.RefreshExp != 2*time.Hour {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected an error for a non-numeric timeout")
	}
}

func TestDatabaseURLs(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "chef", Password: "p@ss word", DBName: "intel", SSLMode: "disable"}

	if got, want := c.DSN(), "host=db port=5432 user=chef password=p@ss word dbname=intel sslmode=disable"; got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
	if got, want := c.URL(), "pgx5://chef:p%40ss%20word@db:5432/intel?sslmode=disable"; got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
