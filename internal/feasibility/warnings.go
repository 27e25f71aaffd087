// Package feasibility evaluates threshold rules against an analysis and
// turns the fired warnings into a 0-100 moldability score. Both operations
// are total, deterministic functions: identical inputs always yield an
// identical, identically ordered warning list and the same score.
package feasibility

import (
	"fmt"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// RuleInput carries the values the warning rules evaluate.
type RuleInput struct {
	MaxThicknessMM   float64
	MinThicknessMM   float64
	FlowRatio        float64
	MaterialMaxRatio float64
	ProjectedAreaCm2 float64
	TonnageTons      float64 // recommended tonnage
	CavityCount      int
}

// Rule thresholds. Each rule fires independently; a part can collect both
// the medium and high variant of the thickness rules.
const (
	thickSectionMM        = 4.0
	veryThickSectionMM    = 6.0
	thinSectionMM         = 1.0
	extremeThinSectionMM  = 0.5
	variationRatioLimit   = 3.0
	largeProjectedAreaCm2 = 500.0
	highTonnageTons       = 500.0
	multiCavityLimit      = 4
)

// Evaluate runs every warning rule against the input and returns the fired
// warnings in fixed presentation order.
func Evaluate(in RuleInput) []model.Warning {
	var warnings []model.Warning

	if in.MaxThicknessMM > thickSectionMM {
		warnings = append(warnings, model.Warning{
			Code:            "thick_section",
			Severity:        model.SeverityMedium,
			DesignerMessage: fmt.Sprintf("Max thickness %.1fmm may cause sink marks and extended cooling time", in.MaxThicknessMM),
			CustomerMessage: "Thick section detected - may affect surface quality and increase cycle time",
			Recommendation:  "Consider coring out thick sections or reducing wall thickness",
		})
	}

	if in.MaxThicknessMM > veryThickSectionMM {
		warnings = append(warnings, model.Warning{
			Code:            "very_thick_section",
			Severity:        model.SeverityHigh,
			DesignerMessage: fmt.Sprintf("Max thickness %.1fmm will significantly increase cycle time and risk of voids", in.MaxThicknessMM),
			CustomerMessage: "Very thick section - will increase production time and may affect part quality",
			Recommendation:  "Strongly recommend design review to reduce thickness",
		})
	}

	if in.MinThicknessMM < thinSectionMM {
		warnings = append(warnings, model.Warning{
			Code:            "thin_section",
			Severity:        model.SeverityMedium,
			DesignerMessage: fmt.Sprintf("Min thickness %.1fmm risks short shots, especially far from gate", in.MinThicknessMM),
			CustomerMessage: "Very thin areas may be difficult to fill completely",
			Recommendation:  "Ensure gate is positioned near thin sections or increase thickness",
		})
	}

	if in.MinThicknessMM < extremeThinSectionMM {
		warnings = append(warnings, model.Warning{
			Code:            "extreme_thin_section",
			Severity:        model.SeverityHigh,
			DesignerMessage: fmt.Sprintf("Min thickness %.1fmm is below typical molding limits", in.MinThicknessMM),
			CustomerMessage: "Extremely thin areas - high risk of incomplete filling",
			Recommendation:  "Increase minimum wall thickness to at least 0.8mm",
		})
	}

	if in.MaxThicknessMM > 0 && in.MinThicknessMM > 0 {
		if ratio := in.MaxThicknessMM / in.MinThicknessMM; ratio > variationRatioLimit {
			warnings = append(warnings, model.Warning{
				Code:            "thickness_variation",
				Severity:        model.SeverityMedium,
				DesignerMessage: fmt.Sprintf("High thickness variation (ratio %.1f:1) may cause differential shrinkage", ratio),
				CustomerMessage: "Uneven wall thickness may cause warping or sink marks",
				Recommendation:  "Design for uniform wall thickness where possible",
			})
		}
	}

	if in.FlowRatio > in.MaterialMaxRatio*0.9 {
		severity := model.SeverityMedium
		if in.FlowRatio > in.MaterialMaxRatio {
			severity = model.SeverityHigh
		}
		warnings = append(warnings, model.Warning{
			Code:            "high_flow_ratio",
			Severity:        severity,
			DesignerMessage: fmt.Sprintf("Flow L/t ratio %.0f exceeds %.0f material limit", in.FlowRatio, in.MaterialMaxRatio),
			CustomerMessage: "Part geometry is challenging for this material - may need additional gates",
			Recommendation:  "Consider multiple gates, higher-flow material, or thicker walls",
		})
	}

	if in.ProjectedAreaCm2 > largeProjectedAreaCm2 {
		warnings = append(warnings, model.Warning{
			Code:            "large_projected_area",
			Severity:        model.SeverityLow,
			DesignerMessage: fmt.Sprintf("Large projected area (%.0f cm²) requires careful venting", in.ProjectedAreaCm2),
			CustomerMessage: "Large part size - ensure adequate machine capacity",
			Recommendation:  "Plan for adequate venting and balanced fill",
		})
	}

	if in.TonnageTons > highTonnageTons {
		warnings = append(warnings, model.Warning{
			Code:            "high_tonnage",
			Severity:        model.SeverityMedium,
			DesignerMessage: fmt.Sprintf("High tonnage requirement (%.0fT) - verify machine availability", in.TonnageTons),
			CustomerMessage: "Requires larger machine - may affect production costs",
			Recommendation:  "Confirm machine availability with supplier",
		})
	}

	if in.CavityCount > multiCavityLimit {
		warnings = append(warnings, model.Warning{
			Code:            "multi_cavity",
			Severity:        model.SeverityLow,
			DesignerMessage: fmt.Sprintf("%d-cavity tool requires balanced runner system", in.CavityCount),
			CustomerMessage: "Multi-cavity mold - good for high volume production",
			Recommendation:  "Ensure balanced runner design for consistent filling",
		})
	}

	return warnings
}
