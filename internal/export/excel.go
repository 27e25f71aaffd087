package export

import (
	"fmt"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes analysis results to an Excel workbook: a summary sheet
// with one row per analysis, plus a warnings sheet listing every fired rule.
func ExportExcel(path string, results []model.AnalysisResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no analyses to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)

	headers := []string{
		"Analysis", "Part", "Material", "Date",
		"Score", "Status", "Volume (cm3)", "Projected Area (cm2)",
		"Min Wall (mm)", "Avg Wall (mm)", "Max Wall (mm)",
		"Tonnage (T)", "Cycle (s)", "Part Weight (g)", "Shot Weight (g)",
		"Fill (s)", "Pressure (MPa)", "Flow L/t", "Cavities",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summary, cell, h)
	}

	for row, r := range results {
		values := []interface{}{
			r.ID, r.PartName, r.Material, r.CreatedAt.Format("2006-01-02 15:04"),
			r.Feasibility.Score, string(r.Feasibility.Status), r.Geometry.VolumeCm3, r.Geometry.ProjectedAreaCm2,
			r.Thickness.MinMM, r.Thickness.AvgMM, r.Thickness.MaxMM,
			r.Tonnage.Recommended, r.CycleTime.Total, r.PartWeightG, r.ShotWeightG,
			r.FillTimeS, r.InjectionPressureMPa, r.FlowRatio, r.Config.CavityCount,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(summary, cell, v)
		}
	}

	const warnings = "Warnings"
	if _, err := f.NewSheet(warnings); err != nil {
		return fmt.Errorf("failed to create warnings sheet: %w", err)
	}
	warnHeaders := []string{"Analysis", "Part", "Code", "Severity", "Message", "Recommendation"}
	for i, h := range warnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(warnings, cell, h)
	}
	row := 2
	for _, r := range results {
		for _, w := range r.Warnings {
			values := []interface{}{r.ID, r.PartName, w.Code, string(w.Severity), w.DesignerMessage, w.Recommendation}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(warnings, cell, v)
			}
			row++
		}
	}

	return f.SaveAs(path)
}
