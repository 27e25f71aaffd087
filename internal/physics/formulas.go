// Package physics implements the closed-form process calculations for
// injection molding: clamp tonnage, fill time, injection pressure, cycle
// time, part weight, flow-length risk and gate/runner sizing.
//
// Every function is pure and total: inputs that would divide by zero or
// take the log of a non-positive value are replaced by documented fallback
// constants instead of raising. The empirical coefficients are carried
// from supplier datasheets and molding handbooks (Rosato, Beaumont,
// Menges); they are intentionally not re-derived.
package physics

import (
	"fmt"
	"math"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// Base flow rate through the gate orifice, cm³/s per mm² of gate area at
// standard conditions.
const baseFlowRate = 12.0

// Fixed mold open/close and ejection overhead per cycle, seconds.
const MoldOverheadS = 3.0

// Pack time as a fraction of cooling time.
const packFraction = 0.25

// defaultCoolingCoefficient applies to material categories missing from the
// cooling table (s/mm²).
const defaultCoolingCoefficient = 2.2

// coolingCoefficients maps material category to the cooling coefficient k
// in cooling ≈ k·t². Crystalline resins cool slower than amorphous ones.
var coolingCoefficients = map[string]float64{
	"PP": 2.5, "PE": 2.5, "PA": 2.8, "POM": 2.8, "PBT": 2.5,
	"ABS": 2.0, "PC": 2.2, "PS": 1.8, "PMMA": 2.0, "SAN": 2.0,
}

// fillViscosityFactors divide the gate flow rate per viscosity class.
var fillViscosityFactors = map[model.ViscosityClass]float64{
	model.ViscosityLow:    0.8,
	model.ViscosityMedium: 1.0,
	model.ViscosityHigh:   1.3,
}

// pressureViscosityMultipliers scale the base cavity pressure per class.
var pressureViscosityMultipliers = map[model.ViscosityClass]float64{
	model.ViscosityLow:    0.85,
	model.ViscosityMedium: 1.0,
	model.ViscosityHigh:   1.25,
}

// gateViscosityAdjustments shift the gate size percentage per class.
var gateViscosityAdjustments = map[model.ViscosityClass]float64{
	model.ViscosityLow:    -0.05,
	model.ViscosityMedium: 0.0,
	model.ViscosityHigh:   0.10,
}

// ClampTonnage computes the required clamp force.
//
//	F = (A × n × P) / 10 / 9.81   (metric tons)
//
// Reference: Rosato, Injection Molding Handbook.
func ClampTonnage(projectedAreaCm2 float64, cavityCount int, pressureMPa, safetyFactor float64) model.Tonnage {
	forceKN := (projectedAreaCm2 * float64(cavityCount) * pressureMPa) / 10.0
	forceTons := forceKN / 9.81
	return model.Tonnage{
		Minimum:      forceTons,
		Recommended:  forceTons * safetyFactor,
		Conservative: forceTons * safetyFactor * 1.1,
	}
}

// FillEstimate is the analytical fill time approximation result.
type FillEstimate struct {
	FillTimeS    float64 // seconds
	FlowRateCm3S float64 // adjusted volumetric flow rate through the gate
}

// EstimateFillTime approximates mold fill time from volumetric flow through
// the gate orifice, adjusted for melt viscosity and wall thickness
// resistance. A non-positive flow rate yields a zero fill time.
//
// Reference: Beaumont, Runner and Gating Design Handbook.
func EstimateFillTime(volumeCm3, gateDiameterMM float64, visc model.ViscosityClass, avgThicknessMM float64) FillEstimate {
	gateAreaMM2 := math.Pi * (gateDiameterMM / 2) * (gateDiameterMM / 2)
	factor, ok := fillViscosityFactors[visc]
	if !ok {
		factor = 1.0
	}
	flowRate := baseFlowRate * gateAreaMM2 / factor

	// Thinner walls resist flow; normalized to a 2.5mm nominal wall.
	thicknessFactor := math.Min(avgThicknessMM/2.5, 1.2)
	adjusted := flowRate * thicknessFactor

	fillTime := 0.0
	if adjusted > 0 {
		fillTime = volumeCm3 / adjusted
	}
	return FillEstimate{FillTimeS: fillTime, FlowRateCm3S: adjusted}
}

// PressureEstimate is the injection pressure approximation result.
type PressureEstimate struct {
	PressureMPa float64
	FlowRatio   float64 // L/t
}

// EstimateInjectionPressure scales the material's base cavity pressure by
// its viscosity class and the flow length to thickness ratio.
//
//	P = P_base × k_visc × (1 + 0.3 × log10(max(L/t / 50, 1)))
//
// Zero wall thickness yields a zero flow ratio rather than dividing.
func EstimateInjectionPressure(flowLengthMM, wallThicknessMM float64, visc model.ViscosityClass, basePressureMPa float64) PressureEstimate {
	flowRatio := 0.0
	if wallThicknessMM > 0 {
		flowRatio = flowLengthMM / wallThicknessMM
	}
	mult, ok := pressureViscosityMultipliers[visc]
	if !ok {
		mult = 1.0
	}
	ratioFactor := 1 + 0.3*math.Log10(math.Max(flowRatio/50.0, 1.0))
	return PressureEstimate{
		PressureMPa: basePressureMPa * mult * ratioFactor,
		FlowRatio:   flowRatio,
	}
}

// CoolingCoefficient returns the cooling coefficient (s/mm²) for a material
// category, falling back to the amorphous default for unknown categories.
func CoolingCoefficient(category string) float64 {
	if k, ok := coolingCoefficients[category]; ok {
		return k
	}
	return defaultCoolingCoefficient
}

// EstimateCycleTime assembles the full cycle: fill + pack + cooling + fixed
// mold open/close overhead. Cooling dominates and scales with the square of
// the thickest wall.
//
// Reference: Menges, How to Make Injection Molds.
func EstimateCycleTime(fillTimeS, maxThicknessMM float64, category string) model.CycleTime {
	cooling := CoolingCoefficient(category) * maxThicknessMM * maxThicknessMM
	pack := cooling * packFraction
	return model.CycleTime{
		Fill:     fillTimeS,
		Pack:     pack,
		Cooling:  cooling,
		Overhead: MoldOverheadS,
		Total:    fillTimeS + pack + cooling + MoldOverheadS,
	}
}

// WeightResult holds part and total shot weight in grams.
type WeightResult struct {
	PartWeightG      float64
	TotalShotWeightG float64
}

// PartWeight computes part weight from volume and density; shot weight
// multiplies across cavities.
func PartWeight(volumeCm3, densityGCm3 float64, cavityCount int) WeightResult {
	part := volumeCm3 * densityGCm3
	return WeightResult{PartWeightG: part, TotalShotWeightG: part * float64(cavityCount)}
}

// FlowRiskResult classifies the flow length against material capability.
type FlowRiskResult struct {
	Status             model.FlowRiskStatus
	Severity           model.Severity
	ActualRatio        float64
	MaxRatio           float64
	UtilizationPercent float64
	Message            string
}

// CheckFlowLengthRisk compares the part's L/t ratio with the material's
// published maximum. Below 70% utilization is safe, below 90% borderline,
// beyond that a risk.
func CheckFlowLengthRisk(flowLengthMM, wallThicknessMM, materialMaxRatio float64) FlowRiskResult {
	actual := 0.0
	if wallThicknessMM > 0 {
		actual = flowLengthMM / wallThicknessMM
	}
	utilization := 0.0
	if materialMaxRatio > 0 {
		utilization = actual / materialMaxRatio * 100
	}

	r := FlowRiskResult{ActualRatio: actual, MaxRatio: materialMaxRatio, UtilizationPercent: utilization}
	switch {
	case actual < materialMaxRatio*0.7:
		r.Status = model.FlowSafe
		r.Severity = model.SeverityLow
		r.Message = "Flow length well within material capability"
	case actual < materialMaxRatio*0.9:
		r.Status = model.FlowBorderline
		r.Severity = model.SeverityMedium
		r.Message = fmt.Sprintf("Flow length approaching limit (L/t: %.0f, max: %.0f)", actual, materialMaxRatio)
	default:
		r.Status = model.FlowRisk
		r.Severity = model.SeverityHigh
		r.Message = fmt.Sprintf("Flow length may exceed material capability (L/t: %.0f > %.0f)", actual, materialMaxRatio)
	}
	return r
}

// EstimateFlowLength approximates the longest melt path from the bounding
// box, assuming the gate sits at the center of the largest face: half the
// diagonal across the two largest dimensions.
func EstimateFlowLength(bboxX, bboxY, bboxZ float64) float64 {
	d1, d2 := twoLargest(bboxX, bboxY, bboxZ)
	return math.Sqrt((d1/2)*(d1/2) + (d2/2)*(d2/2))
}

// GateSize is the recommended gate diameter.
type GateSize struct {
	DiameterMM            float64
	PercentageOfThickness float64
}

// RecommendGateSize sizes the gate at 40-80% of the maximum wall thickness,
// biased by viscosity class and part volume, with a 0.8mm manufacturing
// floor.
func RecommendGateSize(volumeCm3, maxThicknessMM float64, visc model.ViscosityClass) GateSize {
	pct := 0.6 + gateViscosityAdjustments[visc] + math.Min(0.10, volumeCm3/500.0*0.10)
	pct = math.Min(0.8, math.Max(0.4, pct))

	diameter := maxThicknessMM * pct
	if diameter < 0.8 {
		diameter = 0.8
	}
	return GateSize{DiameterMM: diameter, PercentageOfThickness: pct * 100}
}

// RunnerGateRatio is the runner-to-gate diameter rule of thumb.
const RunnerGateRatio = 1.75

// RecommendRunnerSize sizes the runner from the gate diameter.
//
// Reference: Beaumont, Runner and Gating Design Handbook.
func RecommendRunnerSize(gateDiameterMM float64) float64 {
	return gateDiameterMM * RunnerGateRatio
}

func twoLargest(a, b, c float64) (float64, float64) {
	lo := math.Min(a, math.Min(b, c))
	hi := math.Max(a, math.Max(b, c))
	mid := a + b + c - lo - hi
	return hi, mid
}

