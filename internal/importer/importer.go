// Package importer provides CSV and Excel import functionality for material
// datasheets. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Materials []model.MaterialProfile
	Errors    []string
	Warnings  []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name         int
	Category     int
	Grade        int
	Manufacturer int
	Density      int
	Viscosity    int
	FlowRatio    int
	PressureMin  int
	PressureMax  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":         {"name", "material", "material name", "resin", "grade name"},
	"category":     {"category", "type", "polymer", "family"},
	"grade":        {"grade", "product", "product grade"},
	"manufacturer": {"manufacturer", "maker", "supplier", "producer", "brand"},
	"density":      {"density", "density g/cm3", "specific gravity", "sg"},
	"viscosity":    {"viscosity", "viscosity class", "visc", "flow class"},
	"flowratio":    {"flow ratio", "max flow ratio", "l/t", "max l/t", "flow length ratio"},
	"pressuremin":  {"pressure min", "min pressure", "recommended pressure min", "p min"},
	"pressuremax":  {"pressure max", "max pressure", "recommended pressure max", "p max"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:         -1,
		Category:     -1,
		Grade:        -1,
		Manufacturer: -1,
		Density:      -1,
		Viscosity:    -1,
		FlowRatio:    -1,
		PressureMin:  -1,
		PressureMax:  -1,
	}

	assign := func(role string, i int) {
		switch role {
		case "name":
			if mapping.Name == -1 {
				mapping.Name = i
			}
		case "category":
			if mapping.Category == -1 {
				mapping.Category = i
			}
		case "grade":
			if mapping.Grade == -1 {
				mapping.Grade = i
			}
		case "manufacturer":
			if mapping.Manufacturer == -1 {
				mapping.Manufacturer = i
			}
		case "density":
			if mapping.Density == -1 {
				mapping.Density = i
			}
		case "viscosity":
			if mapping.Viscosity == -1 {
				mapping.Viscosity = i
			}
		case "flowratio":
			if mapping.FlowRatio == -1 {
				mapping.FlowRatio = i
			}
		case "pressuremin":
			if mapping.PressureMin == -1 {
				mapping.PressureMin = i
			}
		case "pressuremax":
			if mapping.PressureMax == -1 {
				mapping.PressureMax = i
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Name, Category, Density, Viscosity, FlowRatio, PressureMin, PressureMax
		return ColumnMapping{
			Name:         0,
			Category:     1,
			Grade:        -1,
			Manufacturer: -1,
			Density:      2,
			Viscosity:    3,
			FlowRatio:    4,
			PressureMin:  5,
			PressureMax:  6,
		}, false
	}

	return mapping, true
}

// parseViscosity converts a viscosity class string to a model.ViscosityClass.
// It returns the class and a boolean indicating whether the string was recognized.
func parseViscosity(s string) (model.ViscosityClass, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return model.ViscosityLow, true
	case "medium", "med", "m", "":
		return model.ViscosityMedium, true
	case "high", "h":
		return model.ViscosityHigh, true
	default:
		return model.ViscosityMedium, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a MaterialProfile from a row using the given column mapping.
// Returns the material, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.MaterialProfile, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Missing material name", rowLabel), ""
	}

	densityStr := getCell(row, mapping.Density)
	if densityStr == "" {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Missing density value", rowLabel), ""
	}
	density, err := strconv.ParseFloat(densityStr, 64)
	if err != nil {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Invalid density '%s'", rowLabel, densityStr), ""
	}

	flowStr := getCell(row, mapping.FlowRatio)
	if flowStr == "" {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Missing flow ratio value", rowLabel), ""
	}
	flowRatio, err := strconv.ParseFloat(flowStr, 64)
	if err != nil {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Invalid flow ratio '%s'", rowLabel, flowStr), ""
	}

	pMinStr := getCell(row, mapping.PressureMin)
	pMaxStr := getCell(row, mapping.PressureMax)
	pMin, errMin := strconv.ParseFloat(pMinStr, 64)
	pMax, errMax := strconv.ParseFloat(pMaxStr, 64)
	if pMinStr == "" || pMaxStr == "" || errMin != nil || errMax != nil {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Invalid pressure range '%s'-'%s'", rowLabel, pMinStr, pMaxStr), ""
	}

	if density <= 0 || flowRatio <= 0 || pMin <= 0 || pMax < pMin {
		return model.MaterialProfile{}, fmt.Sprintf("%s: Density, flow ratio, and pressure range must be positive", rowLabel), ""
	}

	mat := model.MaterialProfile{
		Name:               name,
		Category:           getCell(row, mapping.Category),
		Grade:              getCell(row, mapping.Grade),
		Manufacturer:       getCell(row, mapping.Manufacturer),
		Density:            density,
		MaxFlowLengthRatio: flowRatio,
		PressureMin:        pMin,
		PressureMax:        pMax,
		IsCustom:           true,
		Source:             "import",
	}

	// Optional viscosity class
	var warning string
	viscStr := getCell(row, mapping.Viscosity)
	visc, ok := parseViscosity(viscStr)
	mat.ViscosityClass = visc
	if !ok {
		warning = fmt.Sprintf("%s: Unknown viscosity class '%s', defaulting to medium", rowLabel, viscStr)
	}

	return mat, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports materials from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports materials from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports materials from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into materials.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Density == -1 {
			missing = append(missing, "Density")
		}
		if mapping.FlowRatio == -1 {
			missing = append(missing, "Flow Ratio")
		}
		if mapping.PressureMin == -1 || mapping.PressureMax == -1 {
			missing = append(missing, "Pressure Range")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the density column is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][2]), 64); err != nil {
				// Might be an unrecognized header; skip it but keep positional mapping
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		mat, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Materials = append(result.Materials, mat)
	}

	return result
}
