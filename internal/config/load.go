package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. JOBDESK_SERVER_PORT or JOBDESK_AUTH_TOKEN_SECRET.
const envPrefix = "JOBDESK"

// Load reads configuration from environment variables and optionally a
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file. A .env file, if present,
// is loaded into the environment first for local development.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	// Best-effort: a missing .env file is the normal production case.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.migrations_dir", "migrations")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Environment variables bound explicitly so they resolve even when no
	// config file supplies the corresponding keys.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"database.migrations_dir",
		"auth.token_secret",
		"auth.token_lifetime_minutes",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; environment variables carry everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
