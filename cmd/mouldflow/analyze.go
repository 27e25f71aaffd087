package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/engine"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/export"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/project"
)

type analyzeOptions struct {
	material   string
	cavities   int
	gateType   string
	gateSize   float64
	runnerSize float64
	safety     float64
	seed       int64
	manual     []float64
	name       string
	pdfPath    string
	excelPath  string
	labelsPath string
	style      string
	save       bool
}

var analyzeOpts analyzeOptions

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run a full moldability analysis on a part",
	Long: `Analyze an STL file (or manual box dimensions with --manual) against a
material from the catalog and print the moldability verdict: feasibility
score, warnings, process estimates, and machine recommendations.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOpts.material, "material", "m", "", "material name or grade from the catalog")
	analyzeCmd.Flags().IntVarP(&analyzeOpts.cavities, "cavities", "c", 1, "number of mold cavities")
	analyzeCmd.Flags().StringVar(&analyzeOpts.gateType, "gate-type", "edge", "gate type: edge, pin, fan, submarine")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.gateSize, "gate-diameter", 0, "gate diameter in mm (0 = auto)")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.runnerSize, "runner-diameter", 0, "runner diameter in mm (0 = auto)")
	analyzeCmd.Flags().Float64Var(&analyzeOpts.safety, "safety-factor", model.DefaultSafetyFactor, "clamp tonnage safety factor")
	analyzeCmd.Flags().Int64Var(&analyzeOpts.seed, "seed", 1, "random seed for thickness sampling")
	analyzeCmd.Flags().Float64SliceVar(&analyzeOpts.manual, "manual", nil, "manual box input: length,width,height,thickness in mm")
	analyzeCmd.Flags().StringVar(&analyzeOpts.name, "name", "", "part name (defaults to file name)")
	analyzeCmd.Flags().StringVar(&analyzeOpts.pdfPath, "pdf", "", "write a PDF report to this path")
	analyzeCmd.Flags().StringVar(&analyzeOpts.excelPath, "excel", "", "write an Excel workbook to this path")
	analyzeCmd.Flags().StringVar(&analyzeOpts.labelsPath, "labels", "", "write QR mold setup labels to this path")
	analyzeCmd.Flags().StringVar(&analyzeOpts.style, "style", "designer", "report style: designer or customer")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.save, "save", false, "append the result to the analysis history")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default preferences: %v\n", err)
		appCfg = model.DefaultAppConfig()
	}
	applyConfigDefaults(&analyzeOpts, appCfg, cmd.Flags().Changed)

	if analyzeOpts.material == "" {
		fmt.Fprintln(os.Stderr, "Error: no --material given and no default material configured")
		os.Exit(1)
	}

	catalog := loadCatalog()
	material, err := catalog.Material(analyzeOpts.material)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	part, err := buildPart(args, appCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := model.ProcessConfig{
		CavityCount:    analyzeOpts.cavities,
		GateType:       model.GateType(analyzeOpts.gateType),
		GateDiameter:   analyzeOpts.gateSize,
		RunnerDiameter: analyzeOpts.runnerSize,
		SafetyFactor:   analyzeOpts.safety,
	}

	analyzer := engine.NewAnalyzer(catalog.Machines)
	result, err := analyzer.Run(part, material, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	if part.Source == model.SourceMesh {
		appCfg.AddRecentPart(part.FileName)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), appCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
		}
	}

	if analyzeOpts.save {
		if err := saveResult(result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save analysis: %v\n", err)
		}
	}
	if analyzeOpts.pdfPath != "" {
		style := export.ReportStyle(analyzeOpts.style)
		if err := export.ExportPDF(analyzeOpts.pdfPath, result, style); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nPDF report written to %s\n", analyzeOpts.pdfPath)
	}
	if analyzeOpts.excelPath != "" {
		if err := export.ExportExcel(analyzeOpts.excelPath, []model.AnalysisResult{result}); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing Excel: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Excel workbook written to %s\n", analyzeOpts.excelPath)
	}
	if analyzeOpts.labelsPath != "" {
		if err := export.ExportLabels(analyzeOpts.labelsPath, []model.AnalysisResult{result}); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing labels: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mold setup labels written to %s\n", analyzeOpts.labelsPath)
	}
}

// applyConfigDefaults fills options from the saved preferences for every
// flag the user left unset on the command line.
func applyConfigDefaults(opts *analyzeOptions, cfg model.AppConfig, changed func(name string) bool) {
	if opts.material == "" {
		opts.material = cfg.DefaultMaterial
	}
	if !changed("cavities") && cfg.DefaultCavityCount > 0 {
		opts.cavities = cfg.DefaultCavityCount
	}
	if !changed("gate-type") && cfg.DefaultGateType != "" {
		opts.gateType = string(cfg.DefaultGateType)
	}
	if !changed("safety-factor") && cfg.DefaultSafetyFactor > 0 {
		opts.safety = cfg.DefaultSafetyFactor
	}
	if !changed("seed") && cfg.ThicknessSeed != 0 {
		opts.seed = cfg.ThicknessSeed
	}
	if !changed("style") && cfg.ReportStyle != "" {
		opts.style = cfg.ReportStyle
	}
}

// loadMeshFromFile reads an STL file and runs it through the extraction
// strategy chain, so open or damaged meshes still produce a summary with
// estimated metrics instead of a hard failure.
func loadMeshFromFile(filename string) (*geometry.Mesh, model.GeometrySummary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, model.GeometrySummary{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	return engine.NewExtractor().Extract(data, filepath.Base(filename))
}

// buildPart assembles the part from either the STL file argument or the
// --manual box dimensions.
func buildPart(args []string, appCfg model.AppConfig) (model.Part, error) {
	if len(analyzeOpts.manual) > 0 {
		if len(analyzeOpts.manual) != 4 {
			return model.Part{}, fmt.Errorf("--manual needs exactly 4 values: length,width,height,thickness")
		}
		in := engine.ManualInput{
			Length:    analyzeOpts.manual[0],
			Width:     analyzeOpts.manual[1],
			Height:    analyzeOpts.manual[2],
			Thickness: analyzeOpts.manual[3],
		}
		geom, thickness, gates, err := engine.ProcessManualInput(in)
		if err != nil {
			return model.Part{}, err
		}
		name := analyzeOpts.name
		if name == "" {
			name = "manual part"
		}
		part := model.NewPart(name, model.SourceManual)
		part.ManualLength = in.Length
		part.ManualWidth = in.Width
		part.ManualHeight = in.Height
		part.ManualThickness = in.Thickness
		part.Geometry = geom
		part.Thickness = thickness
		part.Gates = gates
		return part, nil
	}

	if len(args) == 0 {
		return model.Part{}, fmt.Errorf("provide an STL file or --manual dimensions")
	}
	filename := args[0]

	mesh, geom, err := loadMeshFromFile(filename)
	if err != nil {
		return model.Part{}, err
	}
	analyzer := engine.NewThicknessAnalyzer()
	if appCfg.ThicknessSamples > 0 {
		analyzer.Samples = appCfg.ThicknessSamples
	}
	thickness, err := analyzer.Analyze(mesh, analyzeOpts.seed)
	if err != nil {
		return model.Part{}, err
	}

	name := analyzeOpts.name
	if name == "" {
		name = filename
	}
	part := model.NewPart(name, model.SourceMesh)
	part.FileName = filename
	part.Geometry = geom
	part.Thickness = thickness
	part.Gates = engine.RecommendGateLocations(mesh)
	return part, nil
}

func saveResult(result model.AnalysisResult) error {
	path, err := project.DefaultAnalysesPath()
	if err != nil {
		return err
	}
	store, err := project.LoadAnalyses(path)
	if err != nil {
		return err
	}
	store.Add(result)
	return project.SaveAnalyses(path, store)
}

func printResult(r model.AnalysisResult) {
	fmt.Println("Moldability Analysis")
	fmt.Println("====================")
	fmt.Printf("Part: %s   Material: %s   Analysis: %s\n\n", r.PartName, r.Material, r.ID)

	fmt.Printf("Feasibility: %d/100 (%s)\n", r.Feasibility.Score, r.Feasibility.Status)
	fmt.Printf("  %s\n\n", r.Feasibility.StatusMessage)

	fmt.Println("Process Estimates:")
	fmt.Printf("  Clamp tonnage: %.1f T recommended (%.1f min, %.1f conservative)\n",
		r.Tonnage.Recommended, r.Tonnage.Minimum, r.Tonnage.Conservative)
	fmt.Printf("  Cycle time: %.1f s (fill %.1f, pack %.1f, cooling %.1f, overhead %.1f)\n",
		r.CycleTime.Total, r.CycleTime.Fill, r.CycleTime.Pack, r.CycleTime.Cooling, r.CycleTime.Overhead)
	fmt.Printf("  Injection pressure: %.1f MPa\n", r.InjectionPressureMPa)
	fmt.Printf("  Part weight: %.1f g (shot %.1f g, %d cavities)\n",
		r.PartWeightG, r.ShotWeightG, r.Config.CavityCount)
	fmt.Printf("  Gate: %.2f mm %s, runner %.2f mm\n",
		r.Config.GateDiameter, r.Config.GateType, r.Config.RunnerDiameter)
	fmt.Printf("  Flow: %.1f mm length, L/t %.0f (%s, %.0f%% of limit)\n\n",
		r.FlowLengthMM, r.FlowRatio, r.FlowRiskStatus, r.FlowUtilization)

	if len(r.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", strings.ToUpper(string(w.Severity)), w.DesignerMessage)
			fmt.Printf("         %s\n", w.Recommendation)
		}
		fmt.Println()
	}

	if len(r.RecommendedMachines) > 0 {
		fmt.Println("Recommended Machines:")
		for i, m := range r.RecommendedMachines {
			fmt.Printf("  %d. %s (%.0fT) - %s\n", i+1, m.Machine.Name, m.Machine.Tonnage, m.Suitability)
			for _, note := range m.Notes {
				fmt.Printf("       %s\n", note)
			}
		}
	}
}
