// Package export renders analysis results to shareable file formats:
// PDF reports, QR-coded mold labels, and Excel workbooks.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	lineHeight   = 6.0
	sectionGap   = 4.0
)

// Status band colors keyed by feasibility color name.
var statusColors = map[string][3]int{
	"green": {76, 175, 80},
	"amber": {255, 152, 0},
	"red":   {244, 67, 54},
}

// ReportStyle selects which warning wording lands in the report.
type ReportStyle string

const (
	StyleDesigner ReportStyle = "designer"
	StyleCustomer ReportStyle = "customer"
)

// ExportPDF generates a moldability report for one analysis run. The
// designer style carries the engineering detail; the customer style uses
// the plain-language warning texts and drops process internals.
func ExportPDF(path string, result model.AnalysisResult, style ReportStyle) error {
	if result.ID == "" {
		return fmt.Errorf("no analysis to export")
	}
	if style != StyleCustomer {
		style = StyleDesigner
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, result)
	renderFeasibilityBand(pdf, result.Feasibility)
	renderGeometrySection(pdf, result)
	renderProcessSection(pdf, result, style)
	renderWarningsSection(pdf, result.Warnings, style)
	renderMachinesSection(pdf, result.RecommendedMachines)

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, result model.AnalysisResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 8, "Moldability Analysis Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	sub := fmt.Sprintf("Part: %s   Material: %s   Analysis: %s   %s",
		result.PartName, result.Material, result.ID, result.CreatedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(contentWidth, lineHeight, sub, "", 1, "L", false, 0, "")
	pdf.Ln(sectionGap)
}

func renderFeasibilityBand(pdf *fpdf.Fpdf, f model.Feasibility) {
	rgb, ok := statusColors[f.Color]
	if !ok {
		rgb = [3]int{120, 120, 120}
	}
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	band := fmt.Sprintf("Score %d/100  -  %s", f.Score, f.StatusMessage)
	pdf.CellFormat(contentWidth, 10, band, "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(sectionGap)
}

func renderGeometrySection(pdf *fpdf.Fpdf, r model.AnalysisResult) {
	sectionTitle(pdf, "Geometry")
	kv(pdf, "Volume", fmt.Sprintf("%.2f cm3", r.Geometry.VolumeCm3))
	kv(pdf, "Surface area", fmt.Sprintf("%.1f cm2", r.Geometry.SurfaceAreaCm2))
	kv(pdf, "Projected area", fmt.Sprintf("%.1f cm2", r.Geometry.ProjectedAreaCm2))
	kv(pdf, "Bounding box", fmt.Sprintf("%.1f x %.1f x %.1f mm", r.Geometry.BBox.X, r.Geometry.BBox.Y, r.Geometry.BBox.Z))
	kv(pdf, "Wall thickness", fmt.Sprintf("%.2f / %.2f / %.2f mm (min/avg/max, %s)",
		r.Thickness.MinMM, r.Thickness.AvgMM, r.Thickness.MaxMM, r.Thickness.Confidence))
	pdf.Ln(sectionGap)
}

func renderProcessSection(pdf *fpdf.Fpdf, r model.AnalysisResult, style ReportStyle) {
	sectionTitle(pdf, "Process Estimates")
	kv(pdf, "Clamp tonnage", fmt.Sprintf("%.1f T recommended (%.1f min, %.1f conservative)",
		r.Tonnage.Recommended, r.Tonnage.Minimum, r.Tonnage.Conservative))
	kv(pdf, "Cycle time", fmt.Sprintf("%.1f s total (fill %.1f, pack %.1f, cooling %.1f)",
		r.CycleTime.Total, r.CycleTime.Fill, r.CycleTime.Pack, r.CycleTime.Cooling))
	kv(pdf, "Part weight", fmt.Sprintf("%.1f g (%.1f g shot, %d cavities)",
		r.PartWeightG, r.ShotWeightG, r.Config.CavityCount))
	if style == StyleDesigner {
		kv(pdf, "Injection pressure", fmt.Sprintf("%.1f MPa", r.InjectionPressureMPa))
		kv(pdf, "Flow length", fmt.Sprintf("%.1f mm (L/t %.0f, %.0f%% of material limit)",
			r.FlowLengthMM, r.FlowRatio, r.FlowUtilization))
		kv(pdf, "Gate / runner", fmt.Sprintf("%.2f mm %s gate, %.2f mm runner",
			r.Config.GateDiameter, r.Config.GateType, r.Config.RunnerDiameter))
	}
	pdf.Ln(sectionGap)
}

func renderWarningsSection(pdf *fpdf.Fpdf, warnings []model.Warning, style ReportStyle) {
	sectionTitle(pdf, fmt.Sprintf("Warnings (%d)", len(warnings)))
	if len(warnings) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, lineHeight, "No design concerns detected.", "", 1, "L", false, 0, "")
		pdf.Ln(sectionGap)
		return
	}
	for _, w := range warnings {
		msg := w.DesignerMessage
		if style == StyleCustomer {
			msg = w.CustomerMessage
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetX(marginLeft)
		pdf.CellFormat(22, lineHeight, fmt.Sprintf("[%s]", w.Severity), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentWidth-22, lineHeight, msg, "", "L", false)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetX(marginLeft + 22)
		pdf.MultiCell(contentWidth-22, 4.5, w.Recommendation, "", "L", false)
	}
	pdf.Ln(sectionGap)
}

func renderMachinesSection(pdf *fpdf.Fpdf, machines []model.MachineRecommendation) {
	sectionTitle(pdf, "Recommended Machines")
	if len(machines) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, lineHeight, "No suitable machines in catalog.", "", 1, "L", false, 0, "")
		return
	}
	for i, m := range machines {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetX(marginLeft)
		line := fmt.Sprintf("%d. %s (%.0fT, %.0f cm3 shot) - %s",
			i+1, m.Machine.Name, m.Machine.Tonnage, m.Machine.ShotVolumeMax, m.Suitability)
		pdf.CellFormat(contentWidth, lineHeight, line, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		for _, note := range m.Notes {
			pdf.SetX(marginLeft + 6)
			pdf.CellFormat(contentWidth-6, 4.5, "- "+note, "", 1, "L", false, 0, "")
		}
	}
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(contentWidth, 7, title, "", 1, "L", true, 0, "")
	pdf.Ln(1.5)
}

func kv(pdf *fpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(45, lineHeight, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentWidth-45, lineHeight, value, "", 1, "L", false, 0, "")
}
