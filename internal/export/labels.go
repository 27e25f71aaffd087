package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each mold setup label's QR code.
// A label travels with the mold so the press operator can pull up the
// analyzed process window by scanning it.
type LabelInfo struct {
	AnalysisID  string  `json:"analysis_id"`
	PartName    string  `json:"part_name"`
	Material    string  `json:"material"`
	CavityCount int     `json:"cavity_count"`
	TonnageT    float64 `json:"tonnage_t"`
	CycleS      float64 `json:"cycle_s"`
	ShotWeightG float64 `json:"shot_weight_g"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded mold setup labels, one per
// analysis result. Labels are laid out on a standard label sheet format
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, results []model.AnalysisResult) error {
	labels := CollectLabelInfos(results)
	if len(labels) == 0 {
		return fmt.Errorf("no analyses to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PartName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.AnalysisID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate part name if too long
	partName := info.PartName
	if pdf.GetStringWidth(partName) > textW {
		for len(partName) > 0 && pdf.GetStringWidth(partName+"...") > textW {
			partName = partName[:len(partName)-1]
		}
		partName += "..."
	}
	pdf.CellFormat(textW, 4.5, partName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	setup := fmt.Sprintf("%s, %d cav", info.Material, info.CavityCount)
	pdf.CellFormat(textW, 3.5, setup, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	process := fmt.Sprintf("%.0fT / %.1fs cycle / %.0fg shot", info.TonnageT, info.CycleS, info.ShotWeightG)
	pdf.CellFormat(textW, 3, process, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, info.AnalysisID, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from analysis results
// for use in testing or alternative export formats.
func CollectLabelInfos(results []model.AnalysisResult) []LabelInfo {
	var labels []LabelInfo
	for _, r := range results {
		if r.ID == "" {
			continue
		}
		labels = append(labels, LabelInfo{
			AnalysisID:  r.ID,
			PartName:    r.PartName,
			Material:    r.Material,
			CavityCount: r.Config.CavityCount,
			TonnageT:    r.Tonnage.Recommended,
			CycleS:      r.CycleTime.Total,
			ShotWeightG: r.ShotWeightG,
		})
	}
	return labels
}
