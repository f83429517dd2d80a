package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerSettings are process settings read from the environment
type ServerSettings struct {
	Addr            string        `env:"SIMULATOR_ADDR" envDefault:":8080"`
	ConfigPath      string        `env:"SIMULATOR_CONFIG"`
	LogLevel        string        `env:"SIMULATOR_LOG_LEVEL" envDefault:"info"`
	CORSOrigins     []string      `env:"SIMULATOR_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SIMULATOR_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored; variables already set are kept.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// ParseServerSettings reads ServerSettings from the process environment
func ParseServerSettings() (ServerSettings, error) {
	var s ServerSettings
	if err := env.Parse(&s); err != nil {
		return ServerSettings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// ParseServerSettingsFrom reads ServerSettings from an explicit variable set
func ParseServerSettingsFrom(vars map[string]string) (ServerSettings, error) {
	var s ServerSettings
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars}); err != nil {
		return ServerSettings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
