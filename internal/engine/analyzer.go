package engine

import (
	"time"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/feasibility"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/physics"
)

// Analyzer runs the full moldability pipeline over the part metrics.
type Analyzer struct {
	Machines []model.MachineSpec
	Now      func() time.Time
}

// NewAnalyzer returns an analyzer ranking against the given machine
// catalog. Pass nil to skip machine recommendations.
func NewAnalyzer(machines []model.MachineSpec) *Analyzer {
	return &Analyzer{Machines: machines, Now: time.Now}
}

// Run executes every calculation stage in order and assembles the
// immutable result snapshot. Auto-derived gate and runner sizes are
// written back into the returned config so the record shows what was
// actually used.
func (a *Analyzer) Run(part model.Part, material model.MaterialProfile, config model.ProcessConfig) (model.AnalysisResult, error) {
	if err := config.Validate(); err != nil {
		return model.AnalysisResult{}, &InputError{Field: "config", Reason: err.Error()}
	}
	geom := part.Geometry
	thickness := part.Thickness
	if geom.VolumeCm3 <= 0 {
		return model.AnalysisResult{}, &InputError{Field: "part", Reason: "geometry has no volume"}
	}
	if thickness.AvgMM <= 0 {
		return model.AnalysisResult{}, &InputError{Field: "part", Reason: "thickness profile missing"}
	}

	// Tooling sizes, derived when not supplied.
	if config.GateDiameter == 0 {
		gate := physics.RecommendGateSize(geom.VolumeCm3, thickness.MaxMM, material.ViscosityClass)
		config.GateDiameter = gate.DiameterMM
	}
	if config.RunnerDiameter == 0 {
		config.RunnerDiameter = physics.RecommendRunnerSize(config.GateDiameter)
	}

	flowLength := physics.EstimateFlowLength(geom.BBox.X, geom.BBox.Y, geom.BBox.Z)
	basePressure := material.MeanPressure()

	fill := physics.EstimateFillTime(geom.VolumeCm3, config.GateDiameter, material.ViscosityClass, thickness.AvgMM)
	pressure := physics.EstimateInjectionPressure(flowLength, thickness.AvgMM, material.ViscosityClass, basePressure)
	tonnage := physics.ClampTonnage(geom.ProjectedAreaCm2, config.CavityCount, pressure.PressureMPa, config.SafetyFactor)
	cycle := physics.EstimateCycleTime(fill.FillTimeS, thickness.MaxMM, material.Category)
	weight := physics.PartWeight(geom.VolumeCm3, material.Density, config.CavityCount)
	flowRisk := physics.CheckFlowLengthRisk(flowLength, thickness.AvgMM, material.MaxFlowLengthRatio)

	warnings := feasibility.Evaluate(feasibility.RuleInput{
		MaxThicknessMM:   thickness.MaxMM,
		MinThicknessMM:   thickness.MinMM,
		FlowRatio:        flowRisk.ActualRatio,
		MaterialMaxRatio: material.MaxFlowLengthRatio,
		ProjectedAreaCm2: geom.ProjectedAreaCm2,
		TonnageTons:      tonnage.Recommended,
		CavityCount:      config.CavityCount,
	})
	verdict := feasibility.Score(warnings)

	machines := RankMachines(a.Machines, tonnage.Recommended, weight.TotalShotWeightG, geom.BBox.X, geom.BBox.Y)

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	return model.AnalysisResult{
		ID:        model.NewAnalysisID(),
		PartID:    part.ID,
		PartName:  part.Name,
		Material:  material.Name,
		CreatedAt: now(),

		Config:    config,
		Geometry:  geom,
		Thickness: thickness,

		FillTimeS:            fill.FillTimeS,
		InjectionPressureMPa: pressure.PressureMPa,

		FlowLengthMM:    flowLength,
		FlowRatio:       flowRisk.ActualRatio,
		FlowRiskStatus:  flowRisk.Status,
		FlowUtilization: flowRisk.UtilizationPercent,

		Tonnage:   tonnage,
		CycleTime: cycle,

		PartWeightG: weight.PartWeightG,
		ShotWeightG: weight.TotalShotWeightG,

		Feasibility:         verdict,
		Warnings:            warnings,
		RecommendedMachines: machines,
	}, nil
}
