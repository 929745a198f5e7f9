package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultDBDriver = "sqlite"
	defaultDBPath   = "./dev.db"
	defaultPort     = "8080"
	defaultEnv      = "dev"
)

// Config holds application configuration sourced from environment variables
// and an optional screenquote.yml.
type Config struct {
	AppEnv     string
	DBDriver   string
	DBPath     string
	Port       string
	LogLevel   string
	LogFormat  string
	SeedSample bool
}

// IsDev reports whether the server runs in local development mode.
func (c Config) IsDev() bool {
	return c.AppEnv == defaultEnv || c.AppEnv == "development"
}

// Load reads .env, screenquote.yml and the environment, in increasing order of
// precedence, and returns a populated Config.
func Load() (Config, error) {
	// Best-effort: production should use real env injection.
	_ = loadDotEnv(".env")
	return load(viper.New(), ".")
}

func load(v *viper.Viper, configDir string) (Config, error) {
	v.SetConfigName("screenquote")
	v.SetConfigType("yml")
	v.AddConfigPath(configDir)
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("DB_DRIVER", defaultDBDriver)
	v.SetDefault("DB_PATH", defaultDBPath)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read screenquote.yml: %w", err)
		}
	}

	cfg := Config{
		AppEnv:    strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		DBDriver:  strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBPath:    strings.TrimSpace(v.GetString("DB_PATH")),
		Port:      strings.TrimSpace(v.GetString("PORT")),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	cfg.SeedSample = cfg.IsDev()
	if v.IsSet("SEED_SAMPLE") {
		cfg.SeedSample = v.GetBool("SEED_SAMPLE")
	}

	switch cfg.DBDriver {
	case "sqlite", "pgx":
	default:
		return Config{}, &UnsupportedDriverError{Driver: cfg.DBDriver}
	}

	return cfg, nil
}

// UnsupportedDriverError is returned for a DB_DRIVER other than sqlite or pgx.
type UnsupportedDriverError struct {
	Driver string
}

func (e *UnsupportedDriverError) Error() string {
	return fmt.Sprintf("unsupported DB_DRIVER %q (want sqlite or pgx)", e.Driver)
}
