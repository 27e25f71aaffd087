package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

func TestCompareScenariosMaterials(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(model.DefaultMachines())

	materials := model.DefaultMaterials()[:3]
	scenarios := BuildMaterialScenarios(materials, model.DefaultProcessConfig())
	require.Len(t, scenarios, 3)
	assert.Equal(t, materials[0].Name, scenarios[0].Name)

	results := CompareScenarios(analyzer, part, scenarios)
	require.Len(t, results, 3)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		assert.Equal(t, r.Result.Feasibility.Score, r.Score)
		assert.InDelta(t, r.Result.Tonnage.Recommended, r.TonnageT, 1e-9)
		assert.InDelta(t, r.Result.CycleTime.Total, r.CycleS, 1e-9)
		assert.Greater(t, r.ShotWeightG, 0.0)
	}
}

func TestCompareScenariosCavityCounts(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(nil)
	material := absMaterial(t)

	scenarios := BuildCavityScenarios(material, model.DefaultProcessConfig(), []int{1, 2, 4})
	require.Len(t, scenarios, 3)
	assert.Equal(t, "ABS General Purpose x2", scenarios[1].Name)
	assert.Equal(t, 4, scenarios[2].Config.CavityCount)

	results := CompareScenarios(analyzer, part, scenarios)
	require.Len(t, results, 3)
	assert.InDelta(t, results[0].TonnageT*2, results[1].TonnageT, 1e-6)
	assert.InDelta(t, results[0].ShotWeightG*4, results[2].ShotWeightG, 1e-6)
}

func TestCompareScenariosCarriesErrors(t *testing.T) {
	part := manualTestPart(t)
	analyzer := NewAnalyzer(nil)

	scenarios := []ComparisonScenario{
		{Name: "good", Material: absMaterial(t), Config: model.DefaultProcessConfig()},
		{Name: "bad", Material: absMaterial(t), Config: model.ProcessConfig{CavityCount: 0}},
	}
	results := CompareScenarios(analyzer, part, scenarios)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Zero(t, results[1].Score)
}
