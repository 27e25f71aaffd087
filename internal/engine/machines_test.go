package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

func TestRankMachinesSkipsUndersized(t *testing.T) {
	recs := RankMachines(model.DefaultMachines(), 100, 50, 100, 100)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Machine.Tonnage, 90.0, "below 90%% of requirement must be skipped")
	}
	assert.Equal(t, "120T Standard", recs[0].Machine.Name)
}

func TestRankMachinesIdealWindow(t *testing.T) {
	recs := RankMachines(model.DefaultMachines(), 100, 50, 100, 100)
	require.Len(t, recs, 3)

	assert.Equal(t, model.SuitabilityIdeal, recs[0].Suitability)
	assert.Equal(t, []string{"Good match for tonnage, shot volume, and platen size"}, recs[0].Notes)
	assert.Equal(t, model.SuitabilityIdeal, recs[1].Suitability)

	// 250T is more than double the requirement.
	assert.Equal(t, "250T Standard", recs[2].Machine.Name)
	assert.Equal(t, model.SuitabilityAcceptable, recs[2].Suitability)
	assert.Contains(t, recs[2].Notes, "Machine may be oversized for this part")
}

func TestRankMachinesBorderlineTonnage(t *testing.T) {
	machines := []model.MachineSpec{
		{Name: "95T", Tonnage: 95, ShotVolumeMax: 500, PlatenWidth: 800, PlatenHeight: 800},
	}
	recs := RankMachines(machines, 100, 50, 100, 100)
	require.Len(t, recs, 1)
	assert.Equal(t, model.SuitabilityBorderline, recs[0].Suitability)
	assert.Contains(t, recs[0].Notes[0], "slightly below recommended")
}

func TestRankMachinesShotVolumeChecks(t *testing.T) {
	machines := []model.MachineSpec{
		{Name: "Tight shot", Tonnage: 150, ShotVolumeMax: 110, PlatenWidth: 800, PlatenHeight: 800},
		{Name: "No shot", Tonnage: 150, ShotVolumeMax: 80, PlatenWidth: 800, PlatenHeight: 800},
	}

	recs := RankMachines(machines[:1], 150, 100, 100, 100)
	require.Len(t, recs, 1)
	assert.Equal(t, model.SuitabilityAcceptable, recs[0].Suitability)
	assert.Contains(t, recs[0].Notes, "Shot volume near limit")

	recs = RankMachines(machines[1:], 150, 100, 100, 100)
	require.Len(t, recs, 1)
	assert.Equal(t, model.SuitabilityBorderline, recs[0].Suitability)
	assert.Contains(t, recs[0].Notes[0], "may be insufficient")
}

func TestRankMachinesPlatenCheck(t *testing.T) {
	machines := []model.MachineSpec{
		{Name: "Small platen", Tonnage: 150, ShotVolumeMax: 500, PlatenWidth: 400, PlatenHeight: 400},
	}
	recs := RankMachines(machines, 150, 50, 300, 300)
	require.Len(t, recs, 1)
	assert.Equal(t, model.SuitabilityBorderline, recs[0].Suitability)
	assert.Contains(t, recs[0].Notes, "Platen size may be tight for mold")
}

func TestRankMachinesSortedBySuitability(t *testing.T) {
	recs := RankMachines(model.DefaultMachines(), 170, 100, 200, 200)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 3)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].Suitability.Rank(), recs[i].Suitability.Rank())
	}
}

func TestRankMachinesEmptyCatalog(t *testing.T) {
	assert.Empty(t, RankMachines(nil, 100, 50, 100, 100))
}
