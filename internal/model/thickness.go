package model

import "github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"

// ThicknessConfidence distinguishes ray-cast measurements from estimates.
type ThicknessConfidence string

const (
	ConfidenceMeasured  ThicknessConfidence = "measured"
	ConfidenceEstimated ThicknessConfidence = "estimated"
)

// HistogramBin is one bucket of the thickness distribution.
type HistogramBin struct {
	RangeStart float64 `json:"range_start"` // mm
	RangeEnd   float64 `json:"range_end"`   // mm
	Percentage float64 `json:"percentage"`  // of all samples
}

// ThickSectionRisk tiers a flagged thick section.
type ThickSectionRisk string

const (
	RiskMedium ThickSectionRisk = "medium" // > 1.5x average
	RiskHigh   ThickSectionRisk = "high"   // > 2.0x average
)

// ThickSection marks a sampled location whose measured wall thickness is
// far above the part average, a sink mark / void risk.
type ThickSection struct {
	Location    geometry.Vector3 `json:"location"`
	ThicknessMM float64          `json:"thickness_mm"`
	RatioToAvg  float64          `json:"ratio_to_avg"`
	Risk        ThickSectionRisk `json:"risk"`
}

// ThicknessProfile holds the statistical wall thickness picture for a part.
// Invariants: Min <= Avg <= Max; histogram percentages sum to 100 within
// rounding; at most 5 thick sections, thickest first.
type ThicknessProfile struct {
	MinMM    float64 `json:"min_thickness"`
	AvgMM    float64 `json:"avg_thickness"`
	MaxMM    float64 `json:"max_thickness"`
	StdDevMM float64 `json:"std_dev_thickness"`

	// Variation is (max-min)/avg, a quick spread indicator.
	Variation float64 `json:"thickness_variation"`

	Distribution  []HistogramBin      `json:"thickness_distribution"`
	ThickSections []ThickSection      `json:"thick_sections"`
	SampleCount   int                 `json:"sample_count"`
	Confidence    ThicknessConfidence `json:"confidence"`
}
