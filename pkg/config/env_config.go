// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig contains process-level settings read from the
// environment rather than the game config file.
type EnvironmentConfig struct {
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	RandomSeed   uint64

	// Resource monitoring
	MaxMemoryMB           int64
	MaxGoroutines         int
	ShutdownTimeout       time.Duration
	ResourceCheckInterval time.Duration
}

// LoadConfigFromEnv builds an EnvironmentConfig from STARFIGHTER_*
// environment variables, falling back to defaults for unset values.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	config := &EnvironmentConfig{
		WindowWidth:           getEnvAsIntOrDefault("STARFIGHTER_WINDOW_WIDTH", 1280),
		WindowHeight:          getEnvAsIntOrDefault("STARFIGHTER_WINDOW_HEIGHT", 720),
		Fullscreen:            getEnvAsBoolOrDefault("STARFIGHTER_FULLSCREEN", false),
		RandomSeed:            uint64(getEnvAsIntOrDefault("STARFIGHTER_RANDOM_SEED", 0)),
		MaxMemoryMB:           int64(getEnvAsIntOrDefault("STARFIGHTER_MAX_MEMORY_MB", 500)),
		MaxGoroutines:         getEnvAsIntOrDefault("STARFIGHTER_MAX_GOROUTINES", 100),
		ShutdownTimeout:       getEnvAsDurationOrDefault("STARFIGHTER_SHUTDOWN_TIMEOUT", 10*time.Second),
		ResourceCheckInterval: getEnvAsDurationOrDefault("STARFIGHTER_RESOURCE_CHECK_INTERVAL", 10*time.Second),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}

	return config, nil
}

// ApplyEnvironmentOverrides layers STARFIGHTER_* variables over a
// loaded game configuration. Only variables that are actually set
// override the file; everything else is left alone.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("game configuration is nil")
	}

	if value := os.Getenv("STARFIGHTER_WINDOW_WIDTH"); value != "" {
		width, err := strconv.Atoi(value)
		if err != nil || width <= 0 {
			return fmt.Errorf("invalid STARFIGHTER_WINDOW_WIDTH: %q", value)
		}
		config.Window.Width = width
	}
	if value := os.Getenv("STARFIGHTER_WINDOW_HEIGHT"); value != "" {
		height, err := strconv.Atoi(value)
		if err != nil || height <= 0 {
			return fmt.Errorf("invalid STARFIGHTER_WINDOW_HEIGHT: %q", value)
		}
		config.Window.Height = height
	}
	if value := os.Getenv("STARFIGHTER_FULLSCREEN"); value != "" {
		fullscreen, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid STARFIGHTER_FULLSCREEN: %q", value)
		}
		config.Window.Fullscreen = fullscreen
	}

	return nil
}

// Validate checks the environment configuration for sane values
func (c *EnvironmentConfig) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d",
			c.WindowWidth, c.WindowHeight)
	}
	if c.MaxMemoryMB <= 0 {
		return fmt.Errorf("max memory must be positive, got %d", c.MaxMemoryMB)
	}
	if c.MaxGoroutines <= 0 {
		return fmt.Errorf("max goroutines must be positive, got %d", c.MaxGoroutines)
	}
	if c.ResourceCheckInterval <= 0 {
		return fmt.Errorf("resource check interval must be positive, got %v",
			c.ResourceCheckInterval)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as an int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as a bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a duration or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
