// Package perf provides the performance and settings side of the demo:
// a device quality tier chosen once at startup, the graphics settings
// bundle derived from it, and a frame-time monitor that recommends tier
// downgrades when the device cannot hold the frame budget.
package perf

import (
	"fmt"
	"runtime"
)

// Tier is a coarse device capability class
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// String returns the tier's configuration name
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseTier converts a configuration name to a Tier
func ParseTier(name string) (Tier, error) {
	switch name {
	case "low":
		return TierLow, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	}
	return TierLow, fmt.Errorf("unknown quality tier %q", name)
}

// Settings is the read-only graphics configuration bundle for a tier.
// It is consulted only at construction time, never per frame.
type Settings struct {
	TreeCount      int
	FogDensity     float64
	ShadowsEnabled bool
	PixelRatio     float64
}

// SettingsForTier returns the settings bundle for a tier
func SettingsForTier(tier Tier) Settings {
	switch tier {
	case TierHigh:
		return Settings{
			TreeCount:      60,
			FogDensity:     0.008,
			ShadowsEnabled: true,
			PixelRatio:     2.0,
		}
	case TierMedium:
		return Settings{
			TreeCount:      30,
			FogDensity:     0.015,
			ShadowsEnabled: true,
			PixelRatio:     1.0,
		}
	default:
		return Settings{
			TreeCount:      10,
			FogDensity:     0.025,
			ShadowsEnabled: false,
			PixelRatio:     1.0,
		}
	}
}

// DetectTier picks a quality tier at startup. An explicit override wins;
// otherwise the CPU count stands in for overall device capability. A
// malformed override degrades to detection rather than failing the session.
func DetectTier(override string) Tier {
	if override != "" {
		if tier, err := ParseTier(override); err == nil {
			return tier
		}
	}

	switch cpus := runtime.NumCPU(); {
	case cpus >= 8:
		return TierHigh
	case cpus >= 4:
		return TierMedium
	default:
		return TierLow
	}
}

// Downgrade returns the next tier below, stopping at TierLow
func (t Tier) Downgrade() Tier {
	if t > TierLow {
		return t - 1
	}
	return TierLow
}
