package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "courseql.toml"

// DefaultPort is the port the server listens on when none is configured.
const DefaultPort = 4000

// LogLevels lists the accepted values for log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the courseql configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Data   DataConfig   `toml:"data"`
}

// ServerConfig defines settings for the HTTP server.
type ServerConfig struct {
	Host       string `toml:"host,omitempty"`
	Port       int    `toml:"port"`
	Playground bool   `toml:"playground"`
	MaxDepth   int    `toml:"max_depth"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DataConfig defines where the course collection comes from.
type DataConfig struct {
	// SeedFile is an optional YAML file replacing the built-in courses.
	SeedFile string `toml:"seed_file,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       DefaultPort,
			Playground: true,
			MaxDepth:   10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given file.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	// Start from defaults so omitted keys keep their default values
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Save writes the configuration to the given file.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for values the server can't run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative", ErrInvalidConfig)
	}
	if !c.IsValidLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// IsValidLogLevel returns true if level is one of LogLevels.
func (c *Config) IsValidLogLevel(level string) bool {
	return slices.Contains(LogLevels, level)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
