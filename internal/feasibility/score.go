package feasibility

import "github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"

// Score deductions per warning severity.
var severityDeductions = map[model.Severity]int{
	model.SeverityLow:    5,
	model.SeverityMedium: 15,
	model.SeverityHigh:   30,
}

// Status thresholds on the 0-100 score.
const (
	feasibleThreshold   = 70
	borderlineThreshold = 40
)

// Score converts a warning list into a feasibility verdict. Each warning
// deducts a fixed amount from 100 by severity; the score floors at 0.
func Score(warnings []model.Warning) model.Feasibility {
	score := 100
	high := 0
	for _, w := range warnings {
		score -= severityDeductions[w.Severity]
		if w.Severity == model.SeverityHigh {
			high++
		}
	}
	if score < 0 {
		score = 0
	}

	var (
		status  model.FeasibilityStatus
		message string
		color   string
	)
	switch {
	case score >= feasibleThreshold:
		status = model.StatusFeasible
		message = "Part appears feasible for injection molding"
		color = "green"
	case score >= borderlineThreshold:
		status = model.StatusBorderline
		message = "Part is moldable but has some concerns to address"
		color = "amber"
	default:
		status = model.StatusNotRecommended
		message = "Significant concerns - design review recommended before proceeding"
		color = "red"
	}

	return model.Feasibility{
		Score:             score,
		Status:            status,
		StatusMessage:     message,
		Color:             color,
		WarningCount:      len(warnings),
		HighSeverityCount: high,
	}
}
