// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Integration modes for the vehicle kinematic model. The demo was tuned
// against a fixed 60 Hz tick; scaled mode preserves that tuning under a
// variable frame rate by scaling the per-tick constants with measured dt.
const (
	IntegrationFixed  = "fixed"
	IntegrationScaled = "scaled"
)

// SimConfig contains configuration for a driving demo session
type SimConfig struct {
	Vehicle VehicleConfig `json:"vehicle"`
	Camera  CameraConfig  `json:"camera"`
	Scene   SceneConfig   `json:"scene"`
	Display DisplayConfig `json:"display"`
}

// VehicleConfig contains the kinematic model tuning constants.
// All rates are per tick at the reference tick rate.
type VehicleConfig struct {
	AccelRate       float64 `json:"accelRate"`
	BrakeRate       float64 `json:"brakeRate"`
	Friction        float64 `json:"friction"`
	MaxSpeed        float64 `json:"maxSpeed"`
	TurnRate        float64 `json:"turnRate"`
	SteerDeadzone   float64 `json:"steerDeadzone"`
	RoadHalfWidth   float64 `json:"roadHalfWidth"`
	SpinGain        float64 `json:"spinGain"`
	IntegrationMode string  `json:"integrationMode"`
	TickRate        float64 `json:"tickRate"`
}

// CameraConfig contains orbit camera rig bounds and smoothing
type CameraConfig struct {
	DefaultDistance  float64 `json:"defaultDistance"`
	MinDistance      float64 `json:"minDistance"`
	MaxDistance      float64 `json:"maxDistance"`
	DefaultAngleV    float64 `json:"defaultAngleV"`
	MinAngleV        float64 `json:"minAngleV"`
	MaxAngleV        float64 `json:"maxAngleV"`
	SmoothFactor     float64 `json:"smoothFactor"`
	LookAtHeight     float64 `json:"lookAtHeight"`
	OrbitSensitivity float64 `json:"orbitSensitivity"`
	ZoomSensitivity  float64 `json:"zoomSensitivity"`
}

// SceneConfig contains procedural scenery parameters
type SceneConfig struct {
	Seed       uint64  `json:"seed"`
	RoadLength float64 `json:"roadLength"`
	TreeSpread float64 `json:"treeSpread"`
}

// DisplayConfig contains window and quality settings
type DisplayConfig struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Fullscreen      bool   `json:"fullscreen"`
	Title           string `json:"title"`
	QualityOverride string `json:"qualityOverride"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default demo configuration.
// Vehicle constants reproduce the 60 Hz arcade tuning: full throttle from
// rest reaches MaxSpeed after MaxSpeed/AccelRate ticks.
func DefaultConfig() *SimConfig {
	return &SimConfig{
		Vehicle: VehicleConfig{
			AccelRate:       0.01,
			BrakeRate:       0.015,
			Friction:        0.95,
			MaxSpeed:        0.5,
			TurnRate:        0.05,
			SteerDeadzone:   0.01,
			RoadHalfWidth:   3.0,
			SpinGain:        2.0,
			IntegrationMode: IntegrationFixed,
			TickRate:        60,
		},
		Camera: CameraConfig{
			DefaultDistance:  7,
			MinDistance:      3,
			MaxDistance:      15,
			DefaultAngleV:    0.35,
			MinAngleV:        0.1,
			MaxAngleV:        1.2,
			SmoothFactor:     0.1,
			LookAtHeight:     1.0,
			OrbitSensitivity: 0.005,
			ZoomSensitivity:  0.01,
		},
		Scene: SceneConfig{
			Seed:       1,
			RoadLength: 200,
			TreeSpread: 40,
		},
		Display: DisplayConfig{
			Width:  1024,
			Height: 768,
			Title:  "Road Rush",
		},
	}
}

// Validate checks that all tuning constants are in their legal ranges
func (c *SimConfig) Validate() error {
	v := c.Vehicle
	if v.Friction <= 0 || v.Friction >= 1 {
		return fmt.Errorf("vehicle friction must be in (0,1), got %f", v.Friction)
	}
	if v.MaxSpeed <= 0 {
		return fmt.Errorf("vehicle maxSpeed must be positive, got %f", v.MaxSpeed)
	}
	if v.AccelRate <= 0 || v.BrakeRate <= 0 {
		return fmt.Errorf("vehicle accelRate and brakeRate must be positive, got %f and %f",
			v.AccelRate, v.BrakeRate)
	}
	if v.SteerDeadzone < 0 {
		return fmt.Errorf("vehicle steerDeadzone must not be negative, got %f", v.SteerDeadzone)
	}
	if v.RoadHalfWidth <= 0 {
		return fmt.Errorf("vehicle roadHalfWidth must be positive, got %f", v.RoadHalfWidth)
	}
	if v.TickRate <= 0 {
		return fmt.Errorf("vehicle tickRate must be positive, got %f", v.TickRate)
	}
	if v.IntegrationMode != IntegrationFixed && v.IntegrationMode != IntegrationScaled {
		return fmt.Errorf("vehicle integrationMode must be %q or %q, got %q",
			IntegrationFixed, IntegrationScaled, v.IntegrationMode)
	}

	cam := c.Camera
	if cam.SmoothFactor <= 0 || cam.SmoothFactor >= 1 {
		return fmt.Errorf("camera smoothFactor must be in (0,1), got %f", cam.SmoothFactor)
	}
	if cam.MinDistance <= 0 || cam.MinDistance > cam.MaxDistance {
		return fmt.Errorf("camera distance bounds invalid: [%f, %f]",
			cam.MinDistance, cam.MaxDistance)
	}
	if cam.DefaultDistance < cam.MinDistance || cam.DefaultDistance > cam.MaxDistance {
		return fmt.Errorf("camera defaultDistance %f outside [%f, %f]",
			cam.DefaultDistance, cam.MinDistance, cam.MaxDistance)
	}
	if cam.MinAngleV > cam.MaxAngleV {
		return fmt.Errorf("camera vertical angle bounds invalid: [%f, %f]",
			cam.MinAngleV, cam.MaxAngleV)
	}
	if cam.DefaultAngleV < cam.MinAngleV || cam.DefaultAngleV > cam.MaxAngleV {
		return fmt.Errorf("camera defaultAngleV %f outside [%f, %f]",
			cam.DefaultAngleV, cam.MinAngleV, cam.MaxAngleV)
	}

	if c.Scene.RoadLength <= 0 {
		return fmt.Errorf("scene roadLength must be positive, got %f", c.Scene.RoadLength)
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size invalid: %dx%d", c.Display.Width, c.Display.Height)
	}

	return nil
}
