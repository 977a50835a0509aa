package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/stagely-dev/cuid2/pkg/cuid2"
)

// Config holds all configuration for the command line tool
type Config struct {
	Generator GeneratorConfig
	Validator ValidatorConfig
}

// GeneratorConfig holds identifier generation settings
type GeneratorConfig struct {
	Length int
	Count  int
}

// ValidatorConfig holds identifier validation bounds
type ValidatorConfig struct {
	MinLength int
	MaxLength int
}

// Load reads configuration from CUID2_-prefixed environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("LENGTH", cuid2.DefaultLength)
	v.SetDefault("COUNT", 1)
	v.SetDefault("MIN_LENGTH", cuid2.MinLength)
	v.SetDefault("MAX_LENGTH", cuid2.MaxLength)

	// Bind environment variables
	v.SetEnvPrefix("CUID2")
	v.AutomaticEnv()

	// Create config struct
	cfg := &Config{
		Generator: GeneratorConfig{
			Length: v.GetInt("LENGTH"),
			Count:  v.GetInt("COUNT"),
		},
		Validator: ValidatorConfig{
			MinLength: v.GetInt("MIN_LENGTH"),
			MaxLength: v.GetInt("MAX_LENGTH"),
		},
	}

	// Validate configured ranges
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured values fall inside supported ranges
func (c *Config) Validate() error {
	if c.Generator.Length < cuid2.MinLength || c.Generator.Length > cuid2.MaxLength {
		return fmt.Errorf("CUID2_LENGTH must be between %d and %d, got %d", cuid2.MinLength, cuid2.MaxLength, c.Generator.Length)
	}
	if c.Generator.Count < 1 {
		return fmt.Errorf("CUID2_COUNT must be at least 1, got %d", c.Generator.Count)
	}
	if c.Validator.MinLength < 1 {
		return fmt.Errorf("CUID2_MIN_LENGTH must be at least 1, got %d", c.Validator.MinLength)
	}
	if c.Validator.MaxLength < c.Validator.MinLength {
		return fmt.Errorf("CUID2_MAX_LENGTH must be at least CUID2_MIN_LENGTH (%d), got %d", c.Validator.MinLength, c.Validator.MaxLength)
	}
	return nil
}
