package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/leengari/numsanitize/internal/precision"
	"github.com/leengari/numsanitize/internal/validation"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. NUMSANITIZE_LOGGING_LEVEL
	EnvPrefix = "NUMSANITIZE"
	// ConfigFileEnv names a YAML config file when --config is not given
	ConfigFileEnv = "NUMSANITIZE_CONFIG"
	// DefaultConfigFile is read from the working directory when present
	DefaultConfigFile = "numsanitize.yaml"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Sanitize SanitizeConfig `yaml:"sanitize" envconfig:"SANITIZE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level     string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format    string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	SeqURL    string `yaml:"seq_url" envconfig:"SEQ_URL" validate:"omitempty,url"`
	AddSource bool   `yaml:"add_source" envconfig:"ADD_SOURCE"`
}

// SanitizeConfig holds defaults for a run that CLI flags may override
type SanitizeConfig struct {
	Rounding    string `yaml:"rounding" envconfig:"ROUNDING" validate:"oneof=half_away half_even"`
	MaxWarnings int    `yaml:"max_warnings" envconfig:"MAX_WARNINGS" validate:"min=0"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Sanitize: SanitizeConfig{
			Rounding:    string(precision.RuleHalfAway),
			MaxWarnings: 20,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file, then
// environment variables. path names the YAML file; when empty the
// NUMSANITIZE_CONFIG variable is used, then ./numsanitize.yaml if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		file = os.Getenv(ConfigFileEnv)
	}
	if file == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			file = DefaultConfigFile
		}
	}

	if file != "" {
		if err := loadFromFile(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}

func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	rule, err := precision.ParseRule(c.Sanitize.Rounding)
	if err != nil {
		return err
	}
	c.Sanitize.Rounding = string(rule)
	return nil
}
