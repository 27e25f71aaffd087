package engine

import (
	"fmt"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// ComparisonScenario defines a named material and process pairing to
// analyze side by side.
type ComparisonScenario struct {
	Name     string
	Material model.MaterialProfile
	Config   model.ProcessConfig
}

// ComparisonResult holds the analysis result and headline statistics for
// a single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.AnalysisResult
	Score        int
	TonnageT     float64
	CycleS       float64
	ShotWeightG  float64
	WarningCount int
	Err          error
}

// CompareScenarios runs the analysis for each scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// material choices and cavity counts for the same part.
func CompareScenarios(analyzer *Analyzer, part model.Part, scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := analyzer.Run(part, scenario.Material, scenario.Config)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			Score:        result.Feasibility.Score,
			TonnageT:     result.Tonnage.Recommended,
			CycleS:       result.CycleTime.Total,
			ShotWeightG:  result.ShotWeightG,
			WarningCount: len(result.Warnings),
		})
	}

	return results
}

// BuildMaterialScenarios generates one scenario per candidate material,
// all sharing the same process configuration.
func BuildMaterialScenarios(materials []model.MaterialProfile, config model.ProcessConfig) []ComparisonScenario {
	scenarios := make([]ComparisonScenario, 0, len(materials))
	for _, m := range materials {
		scenarios = append(scenarios, ComparisonScenario{
			Name:     m.Name,
			Material: m,
			Config:   config,
		})
	}
	return scenarios
}

// BuildCavityScenarios generates what-if scenarios for different cavity
// counts with the same material.
func BuildCavityScenarios(material model.MaterialProfile, base model.ProcessConfig, cavityCounts []int) []ComparisonScenario {
	scenarios := make([]ComparisonScenario, 0, len(cavityCounts))
	for _, n := range cavityCounts {
		config := base
		config.CavityCount = n
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("%s x%d", material.Name, n),
			Material: material,
			Config:   config,
		})
	}
	return scenarios
}
