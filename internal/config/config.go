// Package config loads settings for the numerals CLI and service.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// NUMERALS_* environment variables. The result is validated before use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "NUMERALS_"

// Config is the full configuration tree.
type Config struct {
	Log    LogConfig    `yaml:"log" envPrefix:"LOG_"`
	Output OutputConfig `yaml:"output" envPrefix:"OUTPUT_"`
	Server ServerConfig `yaml:"server" envPrefix:"SERVER_"`
	Quiz   QuizConfig   `yaml:"quiz" envPrefix:"QUIZ_"`
	Sweep  SweepConfig  `yaml:"sweep" envPrefix:"SWEEP_"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json"`
}

// OutputConfig sets how CLI results are printed.
type OutputConfig struct {
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json"`
	Color  string `yaml:"color" env:"COLOR" validate:"oneof=auto always never"`
}

// ServerConfig is the HTTP listener for serve.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// QuizConfig sets the default quiz difficulty and per-question time limit.
// A zero time limit means no limit.
type QuizConfig struct {
	Difficulty string        `yaml:"difficulty" env:"DIFFICULTY" validate:"oneof=easy medium hard"`
	TimeLimit  time.Duration `yaml:"time_limit" env:"TIME_LIMIT" validate:"gte=0"`
}

// SweepConfig bounds range sweeps. Zero workers means one per CPU.
type SweepConfig struct {
	Workers int `yaml:"workers" env:"WORKERS" validate:"gte=0,lte=256"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Output: OutputConfig{Format: "text", Color: "auto"},
		Server: ServerConfig{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
		Quiz:   QuizConfig{Difficulty: "easy"},
		Sweep:  SweepConfig{Workers: 0},
	}
}

var validate = validator.New()

// Validate checks every field against its tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load builds the configuration. path may be empty; a missing file at the
// default location is not an error, a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath is $NUMERALS_CONFIG, or numerals.yaml under the user config
// directory. It is empty when neither can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "numerals", "numerals.yaml")
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// WriteDefault writes the default configuration as YAML, creating parent
// directories. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
