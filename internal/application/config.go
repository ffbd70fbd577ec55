package application

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration for the dashboard core: where the
// durable blob lives and how the sample-data generator is reached. Access
// codes are not configurable.
type Config struct {
	// Storage configures the persistence adapter.
	Storage StorageConfig `yaml:"storage" validate:"required"`

	// Generator configures the sample-data generator.
	Generator GeneratorConfig `yaml:"generator"`
}

// StorageConfig locates the durable state blob.
type StorageConfig struct {
	// Path is the file the serialized state is stored at.
	Path string `yaml:"path" validate:"required"`
}

// GeneratorConfig holds the settings for the Gemini-backed generator.
type GeneratorConfig struct {
	// Model names the generative model to use.
	Model string `yaml:"model" validate:"required"`

	// APIKey authenticates against the service. It is read from the
	// GEMINI_API_KEY environment variable, never from the config file.
	APIKey string `yaml:"-"`

	// TimeoutSeconds bounds a single generation call.
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"min=1,max=3600"`

	// RequestsPerMinute throttles generation calls. Zero disables the
	// limiter.
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"gte=0"`
}

// Timeout returns the generation call timeout as a duration.
func (c GeneratorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

var configValidate = validator.New()

// DefaultConfig returns the configuration used when no config file is
// provided.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Path: "hackathon_state.json"},
		Generator: GeneratorConfig{
			Model:             "gemini-2.5-flash",
			APIKey:            os.Getenv("GEMINI_API_KEY"),
			TimeoutSeconds:    30,
			RequestsPerMinute: 6,
		},
	}
}

// LoadConfig reads a YAML config file, applies environment overrides, and
// validates the result. Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Generator.APIKey = os.Getenv("GEMINI_API_KEY")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
