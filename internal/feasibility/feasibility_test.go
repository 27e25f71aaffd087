package feasibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// cleanInput fires no rules: uniform 2mm walls, modest flow, single cavity.
func cleanInput() RuleInput {
	return RuleInput{
		MaxThicknessMM:   2.5,
		MinThicknessMM:   1.5,
		FlowRatio:        60,
		MaterialMaxRatio: 150,
		ProjectedAreaCm2: 50,
		TonnageTons:      80,
		CavityCount:      1,
	}
}

func codes(warnings []model.Warning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Code)
	}
	return out
}

func TestEvaluateCleanPart(t *testing.T) {
	warnings := Evaluate(cleanInput())
	assert.Empty(t, warnings)
}

func TestEvaluateThickSectionRules(t *testing.T) {
	in := cleanInput()
	in.MaxThicknessMM = 5.0
	warnings := Evaluate(in)
	require.Len(t, warnings, 1)
	assert.Equal(t, "thick_section", warnings[0].Code)
	assert.Equal(t, model.SeverityMedium, warnings[0].Severity)
	assert.Equal(t, "Max thickness 5.0mm may cause sink marks and extended cooling time", warnings[0].DesignerMessage)

	// Past 6mm both thickness rules fire together.
	in.MaxThicknessMM = 7.0
	warnings = Evaluate(in)
	assert.Equal(t, []string{"thick_section", "very_thick_section", "thickness_variation"}, codes(warnings))
	assert.Equal(t, model.SeverityHigh, warnings[1].Severity)
}

func TestEvaluateThinSectionRules(t *testing.T) {
	in := cleanInput()
	in.MinThicknessMM = 0.9
	warnings := Evaluate(in)
	require.Len(t, warnings, 1)
	assert.Equal(t, "thin_section", warnings[0].Code)

	in.MinThicknessMM = 0.4
	warnings = Evaluate(in)
	assert.Equal(t, []string{"thin_section", "extreme_thin_section", "thickness_variation"}, codes(warnings))
}

func TestEvaluateThicknessVariation(t *testing.T) {
	in := cleanInput()
	in.MaxThicknessMM = 3.9
	in.MinThicknessMM = 1.2
	warnings := Evaluate(in)
	require.Len(t, warnings, 1)
	assert.Equal(t, "thickness_variation", warnings[0].Code)
	assert.Contains(t, warnings[0].DesignerMessage, "3.2:1")

	// Ratio is skipped when either bound is missing.
	in.MinThicknessMM = 0
	in.MaxThicknessMM = 2.5
	assert.Empty(t, Evaluate(in))
}

func TestEvaluateFlowRatioSeverity(t *testing.T) {
	in := cleanInput()
	in.FlowRatio = 140 // above 90% of 150
	warnings := Evaluate(in)
	require.Len(t, warnings, 1)
	assert.Equal(t, "high_flow_ratio", warnings[0].Code)
	assert.Equal(t, model.SeverityMedium, warnings[0].Severity)

	in.FlowRatio = 160 // above the material limit itself
	warnings = Evaluate(in)
	require.Len(t, warnings, 1)
	assert.Equal(t, model.SeverityHigh, warnings[0].Severity)
}

func TestEvaluateSizeAndToolingRules(t *testing.T) {
	in := cleanInput()
	in.ProjectedAreaCm2 = 600
	in.TonnageTons = 650
	in.CavityCount = 8
	warnings := Evaluate(in)
	assert.Equal(t, []string{"large_projected_area", "high_tonnage", "multi_cavity"}, codes(warnings))
	assert.Equal(t, model.SeverityLow, warnings[0].Severity)
	assert.Equal(t, model.SeverityMedium, warnings[1].Severity)
	assert.Equal(t, model.SeverityLow, warnings[2].Severity)
}

func TestEvaluateDeterministicOrder(t *testing.T) {
	in := RuleInput{
		MaxThicknessMM:   7.0,
		MinThicknessMM:   0.4,
		FlowRatio:        200,
		MaterialMaxRatio: 150,
		ProjectedAreaCm2: 600,
		TonnageTons:      650,
		CavityCount:      8,
	}
	first := Evaluate(in)
	second := Evaluate(in)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{
		"thick_section", "very_thick_section",
		"thin_section", "extreme_thin_section",
		"thickness_variation", "high_flow_ratio",
		"large_projected_area", "high_tonnage", "multi_cavity",
	}, codes(first))
}

func TestScoreEmpty(t *testing.T) {
	f := Score(nil)
	assert.Equal(t, 100, f.Score)
	assert.Equal(t, model.StatusFeasible, f.Status)
	assert.Equal(t, "Part appears feasible for injection molding", f.StatusMessage)
	assert.Equal(t, "green", f.Color)
	assert.Zero(t, f.WarningCount)
	assert.Zero(t, f.HighSeverityCount)
}

func TestScoreDeductions(t *testing.T) {
	warnings := []model.Warning{
		{Severity: model.SeverityLow},
		{Severity: model.SeverityMedium},
	}
	f := Score(warnings)
	assert.Equal(t, 80, f.Score)
	assert.Equal(t, model.StatusFeasible, f.Status)
	assert.Equal(t, 2, f.WarningCount)
}

func TestScoreBorderlineBand(t *testing.T) {
	// 100 - 30 - 15 = 55, between the 40 and 70 cut lines.
	warnings := []model.Warning{
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityMedium},
	}
	f := Score(warnings)
	assert.Equal(t, 55, f.Score)
	assert.Equal(t, model.StatusBorderline, f.Status)
	assert.Equal(t, "Part is moldable but has some concerns to address", f.StatusMessage)
	assert.Equal(t, "amber", f.Color)
	assert.Equal(t, 1, f.HighSeverityCount)
}

func TestScoreNotRecommended(t *testing.T) {
	warnings := []model.Warning{
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityMedium},
	}
	f := Score(warnings)
	assert.Equal(t, 25, f.Score)
	assert.Equal(t, model.StatusNotRecommended, f.Status)
	assert.Equal(t, "Significant concerns - design review recommended before proceeding", f.StatusMessage)
	assert.Equal(t, "red", f.Color)
}

func TestScoreFloorsAtZero(t *testing.T) {
	warnings := make([]model.Warning, 5)
	for i := range warnings {
		warnings[i] = model.Warning{Severity: model.SeverityHigh}
	}
	f := Score(warnings)
	assert.Equal(t, 0, f.Score)
	assert.Equal(t, model.StatusNotRecommended, f.Status)
	assert.Equal(t, 5, f.HighSeverityCount)
}

func TestScoreBandBoundaries(t *testing.T) {
	// Exactly 70 is still feasible, exactly 40 still borderline.
	twoMedium := []model.Warning{{Severity: model.SeverityMedium}, {Severity: model.SeverityMedium}}
	assert.Equal(t, model.StatusFeasible, Score(twoMedium).Status)

	fourMedium := append(twoMedium, twoMedium...)
	assert.Equal(t, model.StatusBorderline, Score(fourMedium).Status)
}
