package model

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades a warning's impact on moldability.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Warning is one fired moldability rule. The designer message carries the
// engineering detail; the customer message is the plain-language version.
type Warning struct {
	Code            string   `json:"code"`
	Severity        Severity `json:"severity"`
	DesignerMessage string   `json:"designer_message"`
	CustomerMessage string   `json:"customer_message"`
	Recommendation  string   `json:"recommendation"`
}

// FeasibilityStatus is the overall verdict derived from the score.
type FeasibilityStatus string

const (
	StatusFeasible       FeasibilityStatus = "feasible"
	StatusBorderline     FeasibilityStatus = "borderline"
	StatusNotRecommended FeasibilityStatus = "not_recommended"
)

// Feasibility is the 0-100 moldability rating with its derived status.
type Feasibility struct {
	Score             int               `json:"score"`
	Status            FeasibilityStatus `json:"status"`
	StatusMessage     string            `json:"status_message"`
	Color             string            `json:"color"`
	WarningCount      int               `json:"warning_count"`
	HighSeverityCount int               `json:"high_severity_count"`
}

// Tonnage holds the clamp force estimates in metric tons.
type Tonnage struct {
	Minimum      float64 `json:"minimum"`
	Recommended  float64 `json:"recommended"`
	Conservative float64 `json:"conservative"`
}

// CycleTime breaks the molding cycle into its phases (seconds).
type CycleTime struct {
	Fill     float64 `json:"fill_time"`
	Pack     float64 `json:"pack_time"`
	Cooling  float64 `json:"cooling_time"`
	Overhead float64 `json:"mold_overhead"`
	Total    float64 `json:"total_cycle"`
}

// Suitability classifies how well a machine matches an analysis.
type Suitability string

const (
	SuitabilityIdeal      Suitability = "ideal"
	SuitabilityAcceptable Suitability = "acceptable"
	SuitabilityBorderline Suitability = "borderline"
)

// Rank orders suitabilities for sorting: ideal < acceptable < borderline.
func (s Suitability) Rank() int {
	switch s {
	case SuitabilityIdeal:
		return 0
	case SuitabilityAcceptable:
		return 1
	case SuitabilityBorderline:
		return 2
	}
	return 3
}

// MachineRecommendation snapshots one candidate machine. Machine is a copy:
// later catalog edits must not alter historical results.
type MachineRecommendation struct {
	Machine     MachineSpec `json:"machine"`
	Suitability Suitability `json:"suitability"`
	Notes       []string    `json:"notes"`
}

// FlowRiskStatus classifies the flow length to thickness ratio.
type FlowRiskStatus string

const (
	FlowSafe       FlowRiskStatus = "safe"
	FlowBorderline FlowRiskStatus = "borderline"
	FlowRisk       FlowRiskStatus = "risk"
)

// AnalysisResult is the immutable record of one analysis run. Re-running an
// analysis produces a new record with a new ID; prior results are never
// mutated. Warnings and machine recommendations are owned snapshots.
type AnalysisResult struct {
	ID        string    `json:"id"`
	PartID    string    `json:"part_id"`
	PartName  string    `json:"part_name"`
	Material  string    `json:"material"`
	CreatedAt time.Time `json:"created_at"`

	// Configuration the run was performed with (auto-derived values filled in).
	Config ProcessConfig `json:"config"`

	// Inputs snapshot
	Geometry  GeometrySummary  `json:"geometry"`
	Thickness ThicknessProfile `json:"thickness"`

	// Fill & pressure
	FillTimeS            float64 `json:"fill_time"`
	InjectionPressureMPa float64 `json:"injection_pressure"`

	// Flow risk
	FlowLengthMM    float64        `json:"flow_length_mm"`
	FlowRatio       float64        `json:"flow_ratio"`
	FlowRiskStatus  FlowRiskStatus `json:"flow_risk_status"`
	FlowUtilization float64        `json:"flow_utilization_percent"`

	Tonnage   Tonnage   `json:"tonnage"`
	CycleTime CycleTime `json:"cycle_time"`

	PartWeightG float64 `json:"part_weight"`
	ShotWeightG float64 `json:"shot_weight"`

	Feasibility         Feasibility             `json:"feasibility"`
	Warnings            []Warning               `json:"warnings"`
	RecommendedMachines []MachineRecommendation `json:"recommended_machines"`
}

// NewAnalysisID returns a fresh short analysis identifier.
func NewAnalysisID() string {
	return uuid.New().String()[:8]
}
