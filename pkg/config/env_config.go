// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig holds deployment-level overrides read from ROADRUSH_*
// environment variables. It is consulted once at startup; nothing reads the
// environment per frame. Each override remembers whether its variable was
// actually present so Apply never clobbers a file value with a default.
type EnvironmentConfig struct {
	QualityTier     string
	WindowWidth     int
	WindowHeight    int
	IntegrationMode string
	TickRate        float64
	SceneSeed       uint64
	FrameBudget     time.Duration

	widthSet       bool
	heightSet      bool
	integrationSet bool
	tickRateSet    bool
	seedSet        bool
}

// LoadConfigFromEnv builds an EnvironmentConfig from the process environment,
// falling back to defaults for unset variables.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		QualityTier: getEnvOrDefault("ROADRUSH_QUALITY_TIER", ""),
		FrameBudget: getEnvDurationOrDefault("ROADRUSH_FRAME_BUDGET", 20*time.Millisecond),
	}
	cfg.WindowWidth, cfg.widthSet = getEnvInt("ROADRUSH_WINDOW_WIDTH", 1024)
	cfg.WindowHeight, cfg.heightSet = getEnvInt("ROADRUSH_WINDOW_HEIGHT", 768)
	cfg.IntegrationMode, cfg.integrationSet = getEnvString("ROADRUSH_INTEGRATION_MODE", IntegrationFixed)
	cfg.TickRate, cfg.tickRateSet = getEnvFloat("ROADRUSH_TICK_RATE", 60)
	cfg.SceneSeed, cfg.seedSet = getEnvUint("ROADRUSH_SCENE_SEED", 1)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the environment overrides for out-of-range values
func (c *EnvironmentConfig) Validate() error {
	switch c.QualityTier {
	case "", "low", "medium", "high":
	default:
		return fmt.Errorf("ROADRUSH_QUALITY_TIER must be low, medium, or high, got %q",
			c.QualityTier)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d",
			c.WindowWidth, c.WindowHeight)
	}
	if c.IntegrationMode != IntegrationFixed && c.IntegrationMode != IntegrationScaled {
		return fmt.Errorf("ROADRUSH_INTEGRATION_MODE must be %q or %q, got %q",
			IntegrationFixed, IntegrationScaled, c.IntegrationMode)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("ROADRUSH_TICK_RATE must be positive, got %f", c.TickRate)
	}
	if c.FrameBudget <= 0 {
		return fmt.Errorf("ROADRUSH_FRAME_BUDGET must be positive, got %v", c.FrameBudget)
	}
	return nil
}

// Apply merges the environment overrides into a SimConfig. Only fields whose
// variable was actually set in the environment override the file values.
func (c *EnvironmentConfig) Apply(sim *SimConfig) {
	if c.widthSet {
		sim.Display.Width = c.WindowWidth
	}
	if c.heightSet {
		sim.Display.Height = c.WindowHeight
	}
	if c.QualityTier != "" {
		sim.Display.QualityOverride = c.QualityTier
	}
	if c.integrationSet {
		sim.Vehicle.IntegrationMode = c.IntegrationMode
	}
	if c.tickRateSet {
		sim.Vehicle.TickRate = c.TickRate
	}
	if c.seedSet {
		sim.Scene.Seed = c.SceneSeed
	}
}

// getEnvOrDefault returns the environment value or a default when unset
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvString returns the environment value and whether it was set
func getEnvString(key, defaultValue string) (string, bool) {
	if value := os.Getenv(key); value != "" {
		return value, true
	}
	return defaultValue, false
}

// getEnvInt parses an integer environment value. Unset or malformed input
// reports not-set and yields the default.
func getEnvInt(key string, defaultValue int) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}

// getEnvUint parses an unsigned integer environment value
func getEnvUint(key string, defaultValue uint64) (uint64, bool) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, false
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}

// getEnvFloat parses a float environment value
func getEnvFloat(key string, defaultValue float64) (float64, bool) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}

// getEnvDurationOrDefault parses a duration environment value, ignoring
// malformed input
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
