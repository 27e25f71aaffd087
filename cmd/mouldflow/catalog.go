package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/importer"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/project"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the materials in the catalog",
	Run:   runMaterials,
}

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the machines in the catalog",
	Run:   runMachines,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import custom materials from a CSV or Excel file",
	Long: `Import material datasheets into the catalog. The file may be CSV (any
common delimiter) or Excel; columns are matched by header name. Required
columns: name, density, flow ratio, pressure min, pressure max.`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(machinesCmd)
	rootCmd.AddCommand(importCmd)
}

func loadCatalog() model.Catalog {
	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using built-in catalog: %v\n", err)
		return model.DefaultCatalog()
	}
	return catalog
}

func runMaterials(cmd *cobra.Command, args []string) {
	catalog := loadCatalog()
	fmt.Printf("%-24s %-6s %-10s %-8s %-8s %s\n", "NAME", "CAT", "VISCOSITY", "DENSITY", "MAX L/t", "GRADE")
	for _, m := range catalog.Materials {
		custom := ""
		if m.IsCustom {
			custom = " (custom)"
		}
		fmt.Printf("%-24s %-6s %-10s %-8.2f %-8.0f %s%s\n",
			m.Name, m.Category, m.ViscosityClass, m.Density, m.MaxFlowLengthRatio, m.Grade, custom)
	}
}

func runMachines(cmd *cobra.Command, args []string) {
	catalog := loadCatalog()
	fmt.Printf("%-28s %-8s %-12s %-14s %s\n", "NAME", "TONNAGE", "SHOT (cm3)", "PLATEN (mm)", "TYPICAL USE")
	for _, m := range catalog.Machines {
		fmt.Printf("%-28s %-8.0f %-12.0f %.0fx%-9.0f %s\n",
			m.Name, m.Tonnage, m.ShotVolumeMax, m.PlatenWidth, m.PlatenHeight, m.TypicalUse)
	}
}

func runImport(cmd *cobra.Command, args []string) {
	path := args[0]

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		result = importer.ImportExcel(path)
	default:
		result = importer.ImportCSV(path)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "Error: %s\n", e)
	}
	if len(result.Materials) == 0 {
		fmt.Fprintln(os.Stderr, "No materials imported")
		os.Exit(1)
	}

	catalog, catalogPath, err := project.LoadOrCreateCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	existing := make(map[string]bool, len(catalog.Materials))
	for _, m := range catalog.Materials {
		existing[m.Name] = true
	}
	added := 0
	for _, m := range result.Materials {
		if existing[m.Name] {
			fmt.Fprintf(os.Stderr, "Warning: skipping duplicate material %q\n", m.Name)
			continue
		}
		catalog.Materials = append(catalog.Materials, m)
		existing[m.Name] = true
		added++
	}

	if err := project.SaveCatalog(catalogPath, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d material(s) into %s\n", added, catalogPath)
}
