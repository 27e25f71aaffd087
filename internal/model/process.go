package model

import (
	"fmt"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
)

// GateType enumerates the supported gating styles.
type GateType string

const (
	GateEdge      GateType = "edge"
	GatePin       GateType = "pin"
	GateFan       GateType = "fan"
	GateSubmarine GateType = "submarine"
)

// Valid reports whether the gate type is one of the supported styles.
func (g GateType) Valid() bool {
	switch g {
	case GateEdge, GatePin, GateFan, GateSubmarine:
		return true
	}
	return false
}

// DefaultSafetyFactor is applied to clamp tonnage when the caller does not
// override it.
const DefaultSafetyFactor = 1.15

// ProcessConfig holds the tooling decisions for one analysis run.
// Gate and runner diameters of zero mean "derive from geometry".
type ProcessConfig struct {
	CavityCount    int               `json:"cavity_count"`
	GateType       GateType          `json:"gate_type"`
	GateLocation   *geometry.Vector3 `json:"gate_location,omitempty"`
	GateDiameter   float64           `json:"gate_diameter"`   // mm, 0 = auto
	RunnerDiameter float64           `json:"runner_diameter"` // mm, 0 = auto
	SafetyFactor   float64           `json:"safety_factor"`
}

// DefaultProcessConfig returns a single-cavity edge-gated configuration
// with auto-derived gate and runner sizes.
func DefaultProcessConfig() ProcessConfig {
	return ProcessConfig{
		CavityCount:  1,
		GateType:     GateEdge,
		SafetyFactor: DefaultSafetyFactor,
	}
}

// Validate checks the configuration invariants and fills defaults for
// omitted optional values.
func (c *ProcessConfig) Validate() error {
	if c.CavityCount < 1 {
		return fmt.Errorf("cavity count must be >= 1, got %d", c.CavityCount)
	}
	if c.GateType == "" {
		c.GateType = GateEdge
	}
	if !c.GateType.Valid() {
		return fmt.Errorf("unknown gate type %q", c.GateType)
	}
	if c.SafetyFactor == 0 {
		c.SafetyFactor = DefaultSafetyFactor
	}
	if c.SafetyFactor <= 0 {
		return fmt.Errorf("safety factor must be positive, got %g", c.SafetyFactor)
	}
	if c.GateDiameter < 0 || c.RunnerDiameter < 0 {
		return fmt.Errorf("gate and runner diameters cannot be negative")
	}
	return nil
}
