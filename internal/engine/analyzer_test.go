package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

func manualTestPart(t *testing.T) model.Part {
	t.Helper()
	geom, thickness, gates, err := ProcessManualInput(ManualInput{
		Length: 100, Width: 50, Height: 30, Thickness: 2,
	})
	require.NoError(t, err)

	part := model.NewPart("enclosure", model.SourceManual)
	part.ManualLength, part.ManualWidth = 100, 50
	part.ManualHeight, part.ManualThickness = 30, 2
	part.Geometry = geom
	part.Thickness = thickness
	part.Gates = gates
	return part
}

func absMaterial(t *testing.T) model.MaterialProfile {
	t.Helper()
	m, err := model.FindMaterial(model.DefaultMaterials(), "ABS General Purpose")
	require.NoError(t, err)
	return m
}

func TestAnalyzerRunEndToEnd(t *testing.T) {
	part := manualTestPart(t)
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	analyzer := NewAnalyzer(model.DefaultMachines())
	analyzer.Now = func() time.Time { return fixed }

	res, err := analyzer.Run(part, absMaterial(t), model.DefaultProcessConfig())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, part.ID, res.PartID)
	assert.Equal(t, "enclosure", res.PartName)
	assert.Equal(t, "ABS General Purpose", res.Material)
	assert.Equal(t, fixed, res.CreatedAt)

	// Tonnage: 50cm² x 100MPa / 10 / 9.81, then the 1.15 safety factor.
	assert.InDelta(t, 50.97, res.Tonnage.Minimum, 0.01)
	assert.InDelta(t, 58.61, res.Tonnage.Recommended, 0.01)
	assert.InDelta(t, 64.48, res.Tonnage.Conservative, 0.01)

	// Flow path: half diagonal over the 100x50 face.
	assert.InDelta(t, 55.90, res.FlowLengthMM, 0.01)
	assert.InDelta(t, 27.95, res.FlowRatio, 0.01)
	assert.Equal(t, model.FlowSafe, res.FlowRiskStatus)

	// L/t is under 50, so pressure stays at the material midpoint.
	assert.InDelta(t, 100.0, res.InjectionPressureMPa, 1e-6)

	// Cooling on the 3mm max wall dominates the cycle: 2.0 x 9 = 18s.
	assert.InDelta(t, 18.0, res.CycleTime.Cooling, 1e-6)
	assert.InDelta(t, 4.5, res.CycleTime.Pack, 1e-6)
	assert.InDelta(t, 3.0, res.CycleTime.Overhead, 1e-6)
	assert.InDelta(t, 26.91, res.CycleTime.Total, 0.01)

	assert.InDelta(t, 36.94, res.PartWeightG, 0.01)
	assert.InDelta(t, 36.94, res.ShotWeightG, 0.01)

	assert.Empty(t, res.Warnings)
	assert.Equal(t, 100, res.Feasibility.Score)
	assert.Equal(t, model.StatusFeasible, res.Feasibility.Status)

	require.Len(t, res.RecommendedMachines, 3)
	assert.Equal(t, "80T Standard", res.RecommendedMachines[0].Machine.Name)
	assert.Equal(t, model.SuitabilityIdeal, res.RecommendedMachines[0].Suitability)
}

func TestAnalyzerRunFillsAutoToolingSizes(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(nil)

	config := model.DefaultProcessConfig()
	require.Zero(t, config.GateDiameter)

	res, err := analyzer.Run(part, absMaterial(t), config)
	require.NoError(t, err)

	// Gate at ~60% of the 3mm max wall; runner at 1.75x the gate.
	assert.InDelta(t, 1.82, res.Config.GateDiameter, 0.01)
	assert.InDelta(t, res.Config.GateDiameter*1.75, res.Config.RunnerDiameter, 1e-9)
	assert.Empty(t, res.RecommendedMachines)
}

func TestAnalyzerRunHonorsExplicitSizes(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(nil)

	config := model.DefaultProcessConfig()
	config.GateDiameter = 2.5
	config.RunnerDiameter = 5.0

	res, err := analyzer.Run(part, absMaterial(t), config)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, res.Config.GateDiameter, 1e-9)
	assert.InDelta(t, 5.0, res.Config.RunnerDiameter, 1e-9)
}

func TestAnalyzerRunCavityScaling(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(nil)
	material := absMaterial(t)

	single, err := analyzer.Run(part, material, model.DefaultProcessConfig())
	require.NoError(t, err)

	quad := model.DefaultProcessConfig()
	quad.CavityCount = 4
	multi, err := analyzer.Run(part, material, quad)
	require.NoError(t, err)

	assert.InDelta(t, single.Tonnage.Recommended*4, multi.Tonnage.Recommended, 1e-6)
	assert.InDelta(t, single.PartWeightG, multi.PartWeightG, 1e-9)
	assert.InDelta(t, single.ShotWeightG*4, multi.ShotWeightG, 1e-6)
}

func TestAnalyzerRunRejectsBadInput(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	material := absMaterial(t)
	part := manualTestPart(t)

	var inputErr *InputError

	_, err := analyzer.Run(part, material, model.ProcessConfig{CavityCount: 0})
	require.Error(t, err)
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "config", inputErr.Field)

	noVolume := part
	noVolume.Geometry.VolumeCm3 = 0
	_, err = analyzer.Run(noVolume, material, model.DefaultProcessConfig())
	require.Error(t, err)
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "part", inputErr.Field)

	noThickness := part
	noThickness.Thickness = model.ThicknessProfile{}
	_, err = analyzer.Run(noThickness, material, model.DefaultProcessConfig())
	require.Error(t, err)
	assert.True(t, errors.As(err, &inputErr))
}

func TestAnalyzerRunsAreIndependentRecords(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(nil)
	material := absMaterial(t)

	first, err := analyzer.Run(part, material, model.DefaultProcessConfig())
	require.NoError(t, err)
	second, err := analyzer.Run(part, material, model.DefaultProcessConfig())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Tonnage, second.Tonnage)
}
