package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shramsetu/shramsetu/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Fatalf("expected default addr :3000 got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "database.sqlite" {
		t.Fatalf("expected default database path got %q", cfg.DatabasePath)
	}
	if cfg.RequireAuth || cfg.SeedDemo {
		t.Fatalf("expected require_auth and seed_demo off by default")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	os.Setenv("SHRAM_ADDR", ":9999")
	os.Setenv("SHRAM_SEED_DEMO", "true")
	defer os.Unsetenv("SHRAM_ADDR")
	defer os.Unsetenv("SHRAM_SEED_DEMO")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("expected env addr got %q", cfg.Addr)
	}
	if !cfg.SeedDemo {
		t.Fatalf("expected seed_demo from env")
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "addr: \":4000\"\ndatabase_path: /tmp/market.db\njwt_secret: filesecret\nrequire_auth: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":4000" || cfg.DatabasePath != "/tmp/market.db" || cfg.JWTSecret != "filesecret" || !cfg.RequireAuth {
		t.Fatalf("yaml values not applied: %#v", cfg)
	}
}

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	os.Setenv("SHRAM_ENV", "production")
	defer os.Unsetenv("SHRAM_ENV")

	cfg := &config.Config{
		Addr:          ":3000",
		DatabasePath:  "database.sqlite",
		APITimeout:    5 * time.Second,
		JWTSecret:     "supersecretkey",
		TokenDuration: time.Hour,
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for insecure JWT in non-development env")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	os.Setenv("SHRAM_ENV", "development")
	defer os.Unsetenv("SHRAM_ENV")

	cfg := &config.Config{
		Addr:          ":3000",
		DatabasePath:  "database.sqlite",
		APITimeout:    5 * time.Second,
		JWTSecret:     "supersecretkey",
		TokenDuration: time.Hour,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development env, got: %v", err)
	}
}

func TestValidate_MissingTokenDuration(t *testing.T) {
	cfg := &config.Config{
		Addr:         ":3000",
		DatabasePath: "database.sqlite",
		JWTSecret:    "strongsecret",
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for zero token duration")
	}
}
