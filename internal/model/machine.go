package model

import "strings"

// MachineSpec describes an injection molding machine in the reference
// catalog. The catalog is read-only to the analysis core; ranking results
// embed copies of these values, never live references.
type MachineSpec struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`

	Tonnage       float64 `json:"tonnage"`         // clamping force, metric tons
	ShotVolumeMax float64 `json:"shot_volume_max"` // cm³
	ScrewDiameter float64 `json:"screw_diameter"`  // mm

	PlatenWidth    float64 `json:"platen_width"` // mm
	PlatenHeight   float64 `json:"platen_height"`
	TieBarSpacingH float64 `json:"tie_bar_spacing_h"`
	TieBarSpacingV float64 `json:"tie_bar_spacing_v"`

	TypicalUse string `json:"typical_use"`
	IsCustom   bool   `json:"is_custom"`
}

// DefaultMachines returns the built-in machine ladder, sorted ascending by
// tonnage. The ranker relies on this ordering.
func DefaultMachines() []MachineSpec {
	return []MachineSpec{
		{Name: "80T Standard", Manufacturer: "Generic", Tonnage: 80, ShotVolumeMax: 100, ScrewDiameter: 32,
			PlatenWidth: 400, PlatenHeight: 400, TieBarSpacingH: 320, TieBarSpacingV: 320, TypicalUse: "Small parts, low volume"},
		{Name: "120T Standard", Manufacturer: "Generic", Tonnage: 120, ShotVolumeMax: 180, ScrewDiameter: 36,
			PlatenWidth: 450, PlatenHeight: 450, TieBarSpacingH: 360, TieBarSpacingV: 360, TypicalUse: "Small-medium parts"},
		{Name: "180T Standard", Manufacturer: "Generic", Tonnage: 180, ShotVolumeMax: 300, ScrewDiameter: 40,
			PlatenWidth: 500, PlatenHeight: 500, TieBarSpacingH: 410, TieBarSpacingV: 410, TypicalUse: "Medium parts"},
		{Name: "250T Standard", Manufacturer: "Generic", Tonnage: 250, ShotVolumeMax: 500, ScrewDiameter: 50,
			PlatenWidth: 600, PlatenHeight: 600, TieBarSpacingH: 480, TieBarSpacingV: 480, TypicalUse: "Medium parts"},
		{Name: "350T Standard", Manufacturer: "Generic", Tonnage: 350, ShotVolumeMax: 800, ScrewDiameter: 55,
			PlatenWidth: 700, PlatenHeight: 700, TieBarSpacingH: 560, TieBarSpacingV: 560, TypicalUse: "Medium-large parts"},
		{Name: "500T Standard", Manufacturer: "Generic", Tonnage: 500, ShotVolumeMax: 1200, ScrewDiameter: 65,
			PlatenWidth: 800, PlatenHeight: 800, TieBarSpacingH: 650, TieBarSpacingV: 650, TypicalUse: "Large parts"},
		{Name: "650T Standard", Manufacturer: "Generic", Tonnage: 650, ShotVolumeMax: 1800, ScrewDiameter: 70,
			PlatenWidth: 900, PlatenHeight: 900, TieBarSpacingH: 730, TieBarSpacingV: 730, TypicalUse: "Large parts"},
		{Name: "850T Standard", Manufacturer: "Generic", Tonnage: 850, ShotVolumeMax: 2500, ScrewDiameter: 80,
			PlatenWidth: 1000, PlatenHeight: 1000, TieBarSpacingH: 820, TieBarSpacingV: 820, TypicalUse: "Very large parts"},
		{Name: "1000T Standard", Manufacturer: "Generic", Tonnage: 1000, ShotVolumeMax: 3500, ScrewDiameter: 90,
			PlatenWidth: 1100, PlatenHeight: 1100, TieBarSpacingH: 900, TieBarSpacingV: 900, TypicalUse: "Very large parts"},
		{Name: "1300T Standard", Manufacturer: "Generic", Tonnage: 1300, ShotVolumeMax: 5000, ScrewDiameter: 100,
			PlatenWidth: 1200, PlatenHeight: 1200, TieBarSpacingH: 980, TieBarSpacingV: 980, TypicalUse: "Extra large parts"},
	}
}

// FindMachine looks a machine up by name. Returns ErrReferenceNotFound when
// the catalog has no such machine.
func FindMachine(catalog []MachineSpec, name string) (MachineSpec, error) {
	for _, m := range catalog {
		if m.Name == name || strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return MachineSpec{}, &ReferenceError{Kind: "machine", Name: name}
}
