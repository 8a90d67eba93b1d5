// Package config loads fileverse settings.
//
// Values come from, in increasing priority: built-in defaults, a YAML file,
// then FILEVERSE_* environment variables. The result is validated before
// use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultHashAlgorithm = "xxh3"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	DefaultMaxLogSizeMB  = 10
	DefaultMaxLogBackups = 3
)

// Config is the full set of settings.
type Config struct {
	Templates     string    `yaml:"templates" env:"FILEVERSE_TEMPLATES" validate:"required"`
	HashAlgorithm string    `yaml:"hash_algorithm" env:"FILEVERSE_HASH" validate:"oneof=xxh3 fnv1a blake2b"`
	SyncWrites    bool      `yaml:"sync_writes" env:"FILEVERSE_SYNC"`
	Color         string    `yaml:"color" env:"FILEVERSE_COLOR" validate:"oneof=auto always never"`
	Log           LogConfig `yaml:"log" envPrefix:"FILEVERSE_LOG_"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level      string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error disabled"`
	Format     string `yaml:"format" env:"FORMAT" validate:"oneof=console json"`
	File       string `yaml:"file" env:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"MAX_SIZE_MB" validate:"gte=1"`
	MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS" validate:"gte=0"`
}

// Default returns the built-in settings. The template index lives in
// ~/.fileverse when the home directory is known, otherwise in the working
// directory.
func Default() *Config {
	templates := filepath.Join(".fileverse", "templates.fileverse")
	if home, err := os.UserHomeDir(); err == nil {
		templates = filepath.Join(home, templates)
	}
	return &Config{
		Templates:     templates,
		HashAlgorithm: DefaultHashAlgorithm,
		Color:         "auto",
		Log: LogConfig{
			Level:      DefaultLogLevel,
			Format:     DefaultLogFormat,
			MaxSizeMB:  DefaultMaxLogSizeMB,
			MaxBackups: DefaultMaxLogBackups,
		},
	}
}

// Path returns the config file to read. An explicit path wins; otherwise
// the user config directory is tried. An empty result means no file.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("FILEVERSE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "fileverse", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// Load builds the configuration from defaults, the file at path (if any)
// and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %w", errors.Join(msgs...))
}
