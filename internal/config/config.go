package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureDefaultSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr"`
	DatabasePath  string        `yaml:"database_path"`
	APITimeout    time.Duration `yaml:"timeout"`
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`
	RequireAuth   bool          `yaml:"require_auth"`
	SeedDemo      bool          `yaml:"seed_demo"`
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 24 * time.Hour

	cfg := &Config{
		Addr:          getEnv("SHRAM_ADDR", ":3000"),
		DatabasePath:  getEnv("SHRAM_DATABASE_PATH", "database.sqlite"),
		APITimeout:    apiTimeout,
		JWTSecret:     getEnv("SHRAM_JWT_SECRET", insecureDefaultSecret),
		TokenDuration: tokenDuration,
		RequireAuth:   getEnvBool("SHRAM_REQUIRE_AUTH"),
		SeedDemo:      getEnvBool("SHRAM_SEED_DEMO"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that would be unsafe outside development,
// most notably running with the well-known default JWT secret.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}

	env := os.Getenv("SHRAM_ENV")
	if env != "development" && (c.JWTSecret == "" || c.JWTSecret == insecureDefaultSecret) {
		return fmt.Errorf("jwt_secret must be set to a non-default value when SHRAM_ENV is %q", env)
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	}

	return false
}
