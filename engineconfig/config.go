// Package engineconfig loads the engine's ambient configuration — the
// storage frontend's connection string and the log level — from a TOML
// file, the way Pieczasz-smf/internal/parser/toml loads its schema
// definitions with the same library.
package engineconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mstgnz/sqlengine/enginelog"
)

// Config is the top-level TOML document: [mysql]/[postgres] connection
// settings and a log level. Exactly one of MySQL/Postgres is expected
// to be populated; cmd/sqlengine decides which Frontend to construct
// based on which DSN is non-empty.
type Config struct {
	MySQL    ConnConfig `toml:"mysql"`
	Postgres ConnConfig `toml:"postgres"`
	LogLevel string     `toml:"log_level"`
}

// ConnConfig is a single backend's connection string.
type ConnConfig struct {
	DSN string `toml:"dsn"`
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("engineconfig: open %q: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("engineconfig: parse %q: %w", path, err)
	}
	return &cfg, nil
}

// LogLevelOrDefault parses LogLevel, falling back to Info on an empty
// or unrecognized value.
func (c *Config) LogLevelOrDefault() enginelog.Level {
	switch c.LogLevel {
	case "debug":
		return enginelog.Debug
	case "warn":
		return enginelog.Warn
	case "error":
		return enginelog.Error
	case "fatal":
		return enginelog.Fatal
	default:
		return enginelog.Info
	}
}
