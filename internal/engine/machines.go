package engine

import (
	"fmt"
	"sort"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// Machine ranking limits. At most five candidates are collected before
// suitability sorting; the top three survive.
const (
	maxCandidates      = 5
	maxRecommendations = 3
)

// RankMachines picks press recommendations for the part. Machines are
// scanned in ascending tonnage; anything below 90% of the requirement is
// skipped outright, and a generously oversized press is only kept while
// the list is still short. Candidates degrade from ideal through
// acceptable to borderline as tonnage, shot volume and platen checks
// accumulate notes.
func RankMachines(machines []model.MachineSpec, requiredTonnage, shotWeightG, partWidthMM, partHeightMM float64) []model.MachineRecommendation {
	// Shot weight to volume at unit density.
	shotVolume := shotWeightG / 1.0

	sorted := make([]model.MachineSpec, len(machines))
	copy(sorted, machines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tonnage < sorted[j].Tonnage
	})

	var recs []model.MachineRecommendation
	for _, m := range sorted {
		var notes []string
		suitability := model.SuitabilityIdeal

		if m.Tonnage < requiredTonnage*0.9 {
			continue
		} else if m.Tonnage < requiredTonnage {
			suitability = model.SuitabilityBorderline
			notes = append(notes, fmt.Sprintf("Tonnage %.0fT is slightly below recommended %.0fT", m.Tonnage, requiredTonnage))
		} else if m.Tonnage > requiredTonnage*2 {
			if len(recs) >= maxRecommendations {
				continue
			}
			suitability = model.SuitabilityAcceptable
			notes = append(notes, "Machine may be oversized for this part")
		}

		if m.ShotVolumeMax < shotVolume {
			suitability = model.SuitabilityBorderline
			notes = append(notes, fmt.Sprintf("Shot volume %.0fcm³ may be insufficient", m.ShotVolumeMax))
		} else if m.ShotVolumeMax < shotVolume*1.3 {
			if suitability == model.SuitabilityIdeal {
				suitability = model.SuitabilityAcceptable
			}
			notes = append(notes, "Shot volume near limit")
		}

		if m.PlatenWidth < partWidthMM*1.5 || m.PlatenHeight < partHeightMM*1.5 {
			suitability = model.SuitabilityBorderline
			notes = append(notes, "Platen size may be tight for mold")
		}

		if len(notes) == 0 {
			notes = append(notes, "Good match for tonnage, shot volume, and platen size")
		}

		recs = append(recs, model.MachineRecommendation{
			Machine:     m,
			Suitability: suitability,
			Notes:       notes,
		})
		if len(recs) >= maxCandidates {
			break
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Suitability.Rank() < recs[j].Suitability.Rank()
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
