package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Directory source kinds.
const (
	SourceXLSX     = "xlsx"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config is the check-in server configuration, read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	// DirectorySource selects the attendee directory backend. Empty infers it
	// from the DirectoryPath extension.
	DirectorySource string `env:"DIRECTORY_SOURCE"`
	DirectoryPath   string `env:"DIRECTORY_PATH" envDefault:"database.xlsx"`
	DatabaseURL     string `env:"DATABASE_URL"`

	SeedFixture    bool          `env:"DIRECTORY_SEED_FIXTURE" envDefault:"true"`
	Watch          bool          `env:"DIRECTORY_WATCH" envDefault:"false"`
	WatchDebounce  time.Duration `env:"DIRECTORY_WATCH_DEBOUNCE" envDefault:"500ms"`
	AdminToken     string        `env:"ADMIN_TOKEN"`
	WelcomeMessage string        `env:"WELCOME_MESSAGE"`

	RequestLogging  bool          `env:"REQUEST_LOGGING" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg.normalize()
}

// LoadFrom is Load over an explicit environment, for tests.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.DirectorySource = strings.ToLower(strings.TrimSpace(c.DirectorySource))
	if c.DirectorySource == "" {
		switch strings.ToLower(filepath.Ext(c.DirectoryPath)) {
		case ".csv":
			c.DirectorySource = SourceCSV
		default:
			c.DirectorySource = SourceXLSX
		}
	}

	switch c.DirectorySource {
	case SourceXLSX, SourceCSV:
		if strings.TrimSpace(c.DirectoryPath) == "" {
			return Config{}, errors.New("DIRECTORY_PATH must be set for file sources")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return Config{}, errors.New("DATABASE_URL must be set when DIRECTORY_SOURCE=postgres")
		}
		if c.Watch {
			return Config{}, errors.New("DIRECTORY_WATCH is only supported for file sources")
		}
	default:
		return Config{}, fmt.Errorf("DIRECTORY_SOURCE must be one of xlsx|csv|postgres, got %q", c.DirectorySource)
	}
	if c.WatchDebounce <= 0 {
		return Config{}, errors.New("DIRECTORY_WATCH_DEBOUNCE must be positive")
	}
	return c, nil
}
