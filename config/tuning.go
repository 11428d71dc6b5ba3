// Package config loads the process-lifetime configuration: gameplay tuning
// from YAML and the reward catalog from schema-validated JSON. Both are read
// once at startup; misconfiguration is a fatal load error, never a runtime
// condition.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds the gameplay constants.
type Tuning struct {
	RequiredTaps     int     `yaml:"required_taps"`
	DecaySeconds     float64 `yaml:"decay_seconds"`
	ScaleFactor      float64 `yaml:"scale_factor"`
	DropHeightMeters float64 `yaml:"drop_height_meters"`
	TickRateHz       int     `yaml:"tick_rate_hz"`
}

// DefaultTuning returns the built-in tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		RequiredTaps:     5,
		DecaySeconds:     0.25,
		ScaleFactor:      0.05,
		DropHeightMeters: 0.1,
		TickRateHz:       60,
	}
}

// LoadTuning reads a YAML tuning file. Missing keys keep their default
// values; present keys must pass Validate.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}

// Validate checks the tuning ranges.
func (t Tuning) Validate() error {
	if t.RequiredTaps <= 0 {
		return fmt.Errorf("required_taps must be > 0, got %d", t.RequiredTaps)
	}
	if t.DecaySeconds <= 0 {
		return fmt.Errorf("decay_seconds must be > 0, got %g", t.DecaySeconds)
	}
	if t.ScaleFactor < 0 {
		return fmt.Errorf("scale_factor must be >= 0, got %g", t.ScaleFactor)
	}
	if t.DropHeightMeters <= 0 {
		return fmt.Errorf("drop_height_meters must be > 0, got %g", t.DropHeightMeters)
	}
	if t.TickRateHz <= 0 {
		return fmt.Errorf("tick_rate_hz must be > 0, got %d", t.TickRateHz)
	}
	return nil
}

// IdleDecay returns the decay window as a duration.
func (t Tuning) IdleDecay() time.Duration {
	return time.Duration(t.DecaySeconds * float64(time.Second))
}

// TickInterval returns the frame interval for the configured tick rate.
func (t Tuning) TickInterval() time.Duration {
	return time.Second / time.Duration(t.TickRateHz)
}
