package model

import "strings"

// ViscosityClass classifies a material's melt flow behavior.
type ViscosityClass string

const (
	ViscosityLow    ViscosityClass = "low"    // PP, PE, PS
	ViscosityMedium ViscosityClass = "medium" // ABS, PA
	ViscosityHigh   ViscosityClass = "high"   // PC, POM, PMMA
)

// MaterialProfile describes an injection molding resin grade.
// The reference catalog is read-only to the analysis core.
type MaterialProfile struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Grade        string `json:"grade"`
	Category     string `json:"category"` // ABS, PP, PC, ...

	// Temperature ranges (°C)
	MeltTempMin float64 `json:"melt_temp_min"`
	MeltTempMax float64 `json:"melt_temp_max"`
	MoldTempMin float64 `json:"mold_temp_min"`
	MoldTempMax float64 `json:"mold_temp_max"`

	// Physical properties
	Density      float64 `json:"density"` // g/cm³
	ShrinkageMin float64 `json:"shrinkage_min"`
	ShrinkageMax float64 `json:"shrinkage_max"`

	// Flow properties
	MFI                float64        `json:"mfi"` // Melt Flow Index g/10min
	ViscosityClass     ViscosityClass `json:"viscosity_class"`
	MaxFlowLengthRatio float64        `json:"max_flow_length_ratio"`

	// Processing pressure (MPa)
	PressureMin float64 `json:"recommended_pressure_min"`
	PressureMax float64 `json:"recommended_pressure_max"`

	IsCustom bool   `json:"is_custom"`
	Source   string `json:"source"`
}

// MeanPressure returns the midpoint of the recommended pressure range.
func (m MaterialProfile) MeanPressure() float64 {
	return (m.PressureMin + m.PressureMax) / 2.0
}

// IsCrystalline reports whether the material category is semi-crystalline,
// which drives the cooling coefficient.
func (m MaterialProfile) IsCrystalline() bool {
	switch m.Category {
	case "PP", "PE", "PA", "POM", "PBT":
		return true
	}
	return false
}

// DefaultMaterials returns the built-in material catalog. Values come from
// manufacturer datasheets; grades with the same category differ mostly in
// flow length capability and pressure window.
func DefaultMaterials() []MaterialProfile {
	return []MaterialProfile{
		{Name: "ABS General Purpose", Manufacturer: "Generic", Grade: "GP", Category: "ABS",
			MeltTempMin: 220, MeltTempMax: 260, MoldTempMin: 50, MoldTempMax: 80,
			Density: 1.05, ShrinkageMin: 0.4, ShrinkageMax: 0.7, MFI: 20,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 150,
			PressureMin: 80, PressureMax: 120, Source: "Generic material datasheet"},
		{Name: "SABIC Cycolac MG47", Manufacturer: "SABIC", Grade: "Cycolac MG47", Category: "ABS",
			MeltTempMin: 230, MeltTempMax: 260, MoldTempMin: 60, MoldTempMax: 80,
			Density: 1.05, ShrinkageMin: 0.4, ShrinkageMax: 0.6, MFI: 18,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 160,
			PressureMin: 80, PressureMax: 110, Source: "SABIC technical datasheet"},
		{Name: "LG ABS HI121H", Manufacturer: "LG Chem", Grade: "HI121H", Category: "ABS",
			MeltTempMin: 220, MeltTempMax: 250, MoldTempMin: 50, MoldTempMax: 70,
			Density: 1.04, ShrinkageMin: 0.4, ShrinkageMax: 0.7, MFI: 21,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 150,
			PressureMin: 75, PressureMax: 115, Source: "LG Chem technical datasheet"},
		{Name: "PP Homopolymer", Manufacturer: "Generic", Grade: "Homo", Category: "PP",
			MeltTempMin: 200, MeltTempMax: 250, MoldTempMin: 20, MoldTempMax: 50,
			Density: 0.91, ShrinkageMin: 1.5, ShrinkageMax: 2.0, MFI: 12,
			ViscosityClass: ViscosityLow, MaxFlowLengthRatio: 250,
			PressureMin: 60, PressureMax: 100, Source: "Generic material datasheet"},
		{Name: "SABIC PP 500P", Manufacturer: "SABIC", Grade: "500P", Category: "PP",
			MeltTempMin: 200, MeltTempMax: 240, MoldTempMin: 20, MoldTempMax: 50,
			Density: 0.905, ShrinkageMin: 1.5, ShrinkageMax: 2.0, MFI: 3,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 200,
			PressureMin: 70, PressureMax: 110, Source: "SABIC technical datasheet"},
		{Name: "LyondellBasell Moplen HP500N", Manufacturer: "LyondellBasell", Grade: "Moplen HP500N", Category: "PP",
			MeltTempMin: 200, MeltTempMax: 250, MoldTempMin: 20, MoldTempMax: 50,
			Density: 0.90, ShrinkageMin: 1.4, ShrinkageMax: 1.9, MFI: 12,
			ViscosityClass: ViscosityLow, MaxFlowLengthRatio: 260,
			PressureMin: 60, PressureMax: 100, Source: "LyondellBasell technical datasheet"},
		{Name: "PC General Purpose", Manufacturer: "Generic", Grade: "GP", Category: "PC",
			MeltTempMin: 280, MeltTempMax: 320, MoldTempMin: 80, MoldTempMax: 120,
			Density: 1.20, ShrinkageMin: 0.5, ShrinkageMax: 0.7, MFI: 10,
			ViscosityClass: ViscosityHigh, MaxFlowLengthRatio: 100,
			PressureMin: 100, PressureMax: 150, Source: "Generic material datasheet"},
		{Name: "Covestro Makrolon 2405", Manufacturer: "Covestro", Grade: "Makrolon 2405", Category: "PC",
			MeltTempMin: 280, MeltTempMax: 320, MoldTempMin: 80, MoldTempMax: 110,
			Density: 1.20, ShrinkageMin: 0.5, ShrinkageMax: 0.7, MFI: 10,
			ViscosityClass: ViscosityHigh, MaxFlowLengthRatio: 100,
			PressureMin: 100, PressureMax: 140, Source: "Covestro technical datasheet"},
		{Name: "SABIC Lexan 141R", Manufacturer: "SABIC", Grade: "Lexan 141R", Category: "PC",
			MeltTempMin: 280, MeltTempMax: 310, MoldTempMin: 80, MoldTempMax: 120,
			Density: 1.20, ShrinkageMin: 0.5, ShrinkageMax: 0.7, MFI: 10.5,
			ViscosityClass: ViscosityHigh, MaxFlowLengthRatio: 105,
			PressureMin: 100, PressureMax: 145, Source: "SABIC technical datasheet"},
		{Name: "PA6 General", Manufacturer: "Generic", Grade: "PA6", Category: "PA",
			MeltTempMin: 240, MeltTempMax: 280, MoldTempMin: 60, MoldTempMax: 90,
			Density: 1.13, ShrinkageMin: 1.0, ShrinkageMax: 1.5, MFI: 35,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 150,
			PressureMin: 80, PressureMax: 120, Source: "Generic material datasheet"},
		{Name: "BASF Ultramid B3S", Manufacturer: "BASF", Grade: "Ultramid B3S", Category: "PA",
			MeltTempMin: 250, MeltTempMax: 280, MoldTempMin: 70, MoldTempMax: 90,
			Density: 1.13, ShrinkageMin: 0.8, ShrinkageMax: 1.5, MFI: 100,
			ViscosityClass: ViscosityLow, MaxFlowLengthRatio: 180,
			PressureMin: 70, PressureMax: 110, Source: "BASF technical datasheet"},
		{Name: "DuPont Zytel 101L", Manufacturer: "DuPont", Grade: "Zytel 101L", Category: "PA",
			MeltTempMin: 270, MeltTempMax: 295, MoldTempMin: 70, MoldTempMax: 100,
			Density: 1.14, ShrinkageMin: 1.0, ShrinkageMax: 1.5, MFI: 45,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 140,
			PressureMin: 80, PressureMax: 120, Source: "DuPont technical datasheet"},
		{Name: "HIPS", Manufacturer: "Generic", Grade: "High Impact PS", Category: "PS",
			MeltTempMin: 180, MeltTempMax: 230, MoldTempMin: 30, MoldTempMax: 60,
			Density: 1.05, ShrinkageMin: 0.4, ShrinkageMax: 0.6, MFI: 8,
			ViscosityClass: ViscosityLow, MaxFlowLengthRatio: 200,
			PressureMin: 60, PressureMax: 100, Source: "Generic material datasheet"},
		{Name: "HDPE", Manufacturer: "Generic", Grade: "High Density", Category: "PE",
			MeltTempMin: 200, MeltTempMax: 280, MoldTempMin: 20, MoldTempMax: 60,
			Density: 0.95, ShrinkageMin: 2.0, ShrinkageMax: 3.0, MFI: 8,
			ViscosityClass: ViscosityLow, MaxFlowLengthRatio: 200,
			PressureMin: 60, PressureMax: 100, Source: "Generic material datasheet"},
		{Name: "POM (Acetal)", Manufacturer: "Generic", Grade: "Copolymer", Category: "POM",
			MeltTempMin: 190, MeltTempMax: 210, MoldTempMin: 60, MoldTempMax: 90,
			Density: 1.41, ShrinkageMin: 1.8, ShrinkageMax: 2.2, MFI: 9,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 100,
			PressureMin: 80, PressureMax: 120, Source: "Generic material datasheet"},
		{Name: "DuPont Delrin 500P", Manufacturer: "DuPont", Grade: "Delrin 500P", Category: "POM",
			MeltTempMin: 200, MeltTempMax: 220, MoldTempMin: 80, MoldTempMax: 100,
			Density: 1.42, ShrinkageMin: 1.9, ShrinkageMax: 2.1, MFI: 14,
			ViscosityClass: ViscosityLow, MaxFlowLengthRatio: 120,
			PressureMin: 75, PressureMax: 115, Source: "DuPont technical datasheet"},
		{Name: "PMMA (Acrylic)", Manufacturer: "Generic", Grade: "General", Category: "PMMA",
			MeltTempMin: 220, MeltTempMax: 260, MoldTempMin: 50, MoldTempMax: 80,
			Density: 1.18, ShrinkageMin: 0.4, ShrinkageMax: 0.7, MFI: 8,
			ViscosityClass: ViscosityHigh, MaxFlowLengthRatio: 100,
			PressureMin: 80, PressureMax: 120, Source: "Generic material datasheet"},
		{Name: "PBT", Manufacturer: "Generic", Grade: "Unreinforced", Category: "PBT",
			MeltTempMin: 240, MeltTempMax: 270, MoldTempMin: 60, MoldTempMax: 90,
			Density: 1.31, ShrinkageMin: 1.5, ShrinkageMax: 2.0, MFI: 15,
			ViscosityClass: ViscosityMedium, MaxFlowLengthRatio: 100,
			PressureMin: 80, PressureMax: 120, Source: "Generic material datasheet"},
	}
}

// FindMaterial looks a material up by exact name, then by case-insensitive
// match. Returns ErrReferenceNotFound when the catalog has no such grade.
func FindMaterial(catalog []MaterialProfile, name string) (MaterialProfile, error) {
	for _, m := range catalog {
		if m.Name == name {
			return m, nil
		}
	}
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) || strings.EqualFold(m.Grade, name) {
			return m, nil
		}
	}
	return MaterialProfile{}, &ReferenceError{Kind: "material", Name: name}
}
