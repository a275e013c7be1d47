package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Merge   MergeConfig   `yaml:"merge" envconfig:"MERGE"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// MergeConfig contains the merge workflow configuration
type MergeConfig struct {
	// SourceDir holds the payment XML files and the single XSD schema.
	SourceDir string `yaml:"source_dir" envconfig:"SOURCE_DIR"`
	// TargetDir receives the merged total document.
	TargetDir string `yaml:"target_dir" envconfig:"TARGET_DIR"`
	// MinFileCount and MaxFileCount are the inclusive bounds on the number
	// of XML files a source directory may hold.
	MinFileCount int `yaml:"min_file_count" envconfig:"MIN_FILE_COUNT" validate:"gte=0"`
	MaxFileCount int `yaml:"max_file_count" envconfig:"MAX_FILE_COUNT" validate:"gtefield=MinFileCount"`
	// CurrencyCode is the only code accepted by the currency gate,
	// compared as text against the document content.
	CurrencyCode string `yaml:"currency_code" envconfig:"CURRENCY_CODE" validate:"required"`
	// CurrencyCodeTag is the element name holding the currency code.
	CurrencyCodeTag string `yaml:"currency_code_tag" envconfig:"CURRENCY_CODE_TAG" validate:"required"`
	// DeleteAfterMerge removes the source files once the total document
	// has been written.
	DeleteAfterMerge bool `yaml:"delete_after_merge" envconfig:"DELETE_AFTER_MERGE"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     10,
				Burst:   20,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/mergexml.log",
		},
		Merge: MergeConfig{
			MinFileCount:    DefaultMinFileCount,
			MaxFileCount:    DefaultMaxFileCount,
			CurrencyCode:    DefaultCurrencyCode,
			CurrencyCodeTag: DefaultCurrencyCodeTag,
		},
	}
}

// Load loads configuration with precedence defaults < YAML file < environment.
// The file is optional; a missing file leaves the defaults in place.
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom loads configuration from a specific YAML file path
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Environment variables override file values
	if err := envconfig.Process("MERGEXML", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// resolvePaths fills the merge directories from the executable-relative
// layout when the config leaves them empty.
func (c *Config) resolvePaths() error {
	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("failed to get paths: %w", err)
	}

	if c.Merge.SourceDir == "" {
		c.Merge.SourceDir = paths.SourceDir
	}
	if c.Merge.TargetDir == "" {
		c.Merge.TargetDir = paths.TargetDir
	}
	if !filepath.IsAbs(c.Logging.FilePath) {
		c.Logging.FilePath = filepath.Join(paths.ExecutableDir, c.Logging.FilePath)
	}

	return nil
}

// getConfigFilePath returns the config file location next to the executable,
// overridable via MERGEXML_CONFIG.
func getConfigFilePath() string {
	if path := os.Getenv("MERGEXML_CONFIG"); path != "" {
		return path
	}

	paths, err := GetPaths()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(paths.ExecutableDir, "config.yaml")
}
