package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

func TestAnalyzeCubeThickness(t *testing.T) {
	// Every inward ray through a 20mm cube exits on the opposite face, so
	// each sample measures the full 20mm span.
	mesh := boxMesh(20, 20, 20)
	analyzer := NewThicknessAnalyzer()

	profile, err := analyzer.Analyze(mesh, 42)
	require.NoError(t, err)

	assert.Equal(t, model.ConfidenceMeasured, profile.Confidence)
	assert.Equal(t, 100, profile.SampleCount)
	assert.InDelta(t, 20.0, profile.MinMM, 0.1)
	assert.InDelta(t, 20.0, profile.AvgMM, 0.1)
	assert.InDelta(t, 20.0, profile.MaxMM, 0.1)
	assert.InDelta(t, 0.0, profile.StdDevMM, 0.1)
	assert.Empty(t, profile.ThickSections)
	assert.Len(t, profile.Distribution, 8)
}

func TestAnalyzeDeterministicForSeed(t *testing.T) {
	mesh := boxMesh(15, 25, 35)
	analyzer := NewThicknessAnalyzer()

	first, err := analyzer.Analyze(mesh, 7)
	require.NoError(t, err)
	second, err := analyzer.Analyze(mesh, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeRejectsEmptyMesh(t *testing.T) {
	analyzer := NewThicknessAnalyzer()
	_, err := analyzer.Analyze(geometry.NewMesh("empty"), 1)
	require.Error(t, err)
	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestAnalyzeEnforcesLimits(t *testing.T) {
	mesh := boxMesh(10, 10, 10)

	tooManyTriangles := &ThicknessAnalyzer{
		Samples: 10,
		Limits:  ThicknessLimits{MaxTriangles: 5},
		Workers: 1,
	}
	_, err := tooManyTriangles.Analyze(mesh, 1)
	require.Error(t, err)
	var exceeded *ResourceExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, "triangles", exceeded.Resource)

	tooManySamples := &ThicknessAnalyzer{
		Samples: 50,
		Limits:  ThicknessLimits{MaxSamples: 10},
		Workers: 1,
	}
	_, err = tooManySamples.Analyze(mesh, 1)
	require.Error(t, err)
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, "samples", exceeded.Resource)
}

func TestAnalyzeWallClockBudget(t *testing.T) {
	// An already-expired deadline stops ray submission and surfaces as a
	// resource error instead of a profile built from partial casts.
	mesh := boxMesh(20, 20, 20)
	analyzer := &ThicknessAnalyzer{
		Samples: 100,
		Limits:  ThicknessLimits{MaxDuration: time.Nanosecond},
		Workers: 1,
	}

	_, err := analyzer.Analyze(mesh, 1)
	require.Error(t, err)
	var exceeded *ResourceExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, "wall clock", exceeded.Resource)
}

func TestAnalyzeFallsBackOnImplausibleWalls(t *testing.T) {
	// A 100mm cube measures 100mm walls, outside the plausibility window,
	// so the profile degrades to the volume estimate.
	mesh := boxMesh(100, 100, 100)
	analyzer := NewThicknessAnalyzer()

	profile, err := analyzer.Analyze(mesh, 3)
	require.NoError(t, err)
	assert.Equal(t, model.ConfidenceEstimated, profile.Confidence)
	assert.Zero(t, profile.SampleCount)
}

func TestEstimateThicknessFromVolume(t *testing.T) {
	// Shell approximation: avg = 2V/A = 2*1000/600.
	profile := EstimateThicknessFromVolume(1000, 600)
	assert.InDelta(t, 3.3333, profile.AvgMM, 1e-3)
	assert.InDelta(t, 2.0, profile.MinMM, 1e-9)
	assert.InDelta(t, 6.0, profile.MaxMM, 1e-9)
	assert.InDelta(t, 1.0, profile.StdDevMM, 1e-9)
	assert.Equal(t, model.ConfidenceEstimated, profile.Confidence)

	zeroArea := EstimateThicknessFromVolume(1000, 0)
	assert.InDelta(t, 2.0, zeroArea.AvgMM, 1e-9)
	assert.InDelta(t, 1.2, zeroArea.MinMM, 1e-9)
	assert.InDelta(t, 3.6, zeroArea.MaxMM, 1e-9)
}

func TestBuildProfileStatistics(t *testing.T) {
	values := []float64{1, 2, 3, 10}
	locations := make([]geometry.Vector3, len(values))
	locations[3] = geometry.NewVector3(9, 9, 9)

	profile := buildProfile(values, locations)
	assert.InDelta(t, 1.0, profile.MinMM, 1e-9)
	assert.InDelta(t, 4.0, profile.AvgMM, 1e-9)
	assert.InDelta(t, 10.0, profile.MaxMM, 1e-9)
	assert.InDelta(t, 2.25, profile.Variation, 1e-9)
	assert.Equal(t, 4, profile.SampleCount)

	require.Len(t, profile.ThickSections, 1)
	section := profile.ThickSections[0]
	assert.InDelta(t, 10.0, section.ThicknessMM, 1e-9)
	assert.InDelta(t, 2.5, section.RatioToAvg, 1e-9)
	assert.Equal(t, model.RiskHigh, section.Risk)
	assert.InDelta(t, 9.0, section.Location.X, 1e-9)

	total := 0.0
	for _, bin := range profile.Distribution {
		total += bin.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-6)
}

func TestFindThickSectionsKeepsFiveThickest(t *testing.T) {
	// Twenty thin samples pull the average down far enough that all six
	// thick ones clear the 1.5x threshold; only five survive.
	values := make([]float64, 0, 26)
	for i := 0; i < 20; i++ {
		values = append(values, 1)
	}
	values = append(values, 10, 11, 12, 13, 14, 15)
	locations := make([]geometry.Vector3, len(values))

	avg := 0.0
	for _, v := range values {
		avg += v
	}
	avg /= float64(len(values))

	sections := findThickSections(values, locations, avg)
	require.Len(t, sections, 5)
	assert.InDelta(t, 15.0, sections[0].ThicknessMM, 1e-9)
	assert.InDelta(t, 11.0, sections[4].ThicknessMM, 1e-9)
	for i := 1; i < len(sections); i++ {
		assert.GreaterOrEqual(t, sections[i-1].ThicknessMM, sections[i].ThicknessMM)
	}
}
