package model

// AppConfig holds application-wide preferences and default analysis
// settings.
type AppConfig struct {
	// Defaults applied to new analyses
	DefaultCavityCount  int      `json:"default_cavity_count"`
	DefaultGateType     GateType `json:"default_gate_type"`
	DefaultSafetyFactor float64  `json:"default_safety_factor"`
	DefaultMaterial     string   `json:"default_material"`

	// Thickness sampling
	ThicknessSamples int   `json:"thickness_samples"`
	ThicknessSeed    int64 `json:"thickness_seed"`

	// Application preferences
	RecentParts []string `json:"recent_parts"`
	ReportStyle string   `json:"report_style"` // "designer" or "customer"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCavityCount:  1,
		DefaultGateType:     GateEdge,
		DefaultSafetyFactor: DefaultSafetyFactor,
		ThicknessSamples:    100,
		ThicknessSeed:       1,
		RecentParts:         []string{},
		ReportStyle:         "designer",
	}
}

// ApplyToConfig copies the saved defaults into a ProcessConfig for a new
// analysis. Unset preferences leave the config untouched.
func (c AppConfig) ApplyToConfig(p *ProcessConfig) {
	if c.DefaultCavityCount > 0 {
		p.CavityCount = c.DefaultCavityCount
	}
	if c.DefaultGateType != "" {
		p.GateType = c.DefaultGateType
	}
	if c.DefaultSafetyFactor > 0 {
		p.SafetyFactor = c.DefaultSafetyFactor
	}
}

// maxRecentParts bounds the recent parts list.
const maxRecentParts = 10

// AddRecentPart records a part file at the head of the recent list,
// dropping duplicates and anything past the cap.
func (c *AppConfig) AddRecentPart(path string) {
	recent := []string{path}
	for _, p := range c.RecentParts {
		if p == path {
			continue
		}
		recent = append(recent, p)
		if len(recent) == maxRecentParts {
			break
		}
	}
	c.RecentParts = recent
}
