package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/engine"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/project"
)

var compareOpts struct {
	materials []string
	cavities  []int
	seed      int64
	manual    []float64
	name      string
}

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Compare materials or cavity counts for the same part",
	Long: `Run the moldability analysis for one part under several scenarios and print
a side-by-side summary. Give multiple --material values to compare resins, or
one material with multiple --cavities values to compare tooling layouts.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCompare,
}

func init() {
	compareCmd.Flags().StringSliceVarP(&compareOpts.materials, "material", "m", nil, "material name (repeat to compare)")
	compareCmd.Flags().IntSliceVarP(&compareOpts.cavities, "cavities", "c", nil, "cavity counts to compare (with a single material)")
	compareCmd.Flags().Int64Var(&compareOpts.seed, "seed", 1, "random seed for thickness sampling")
	compareCmd.Flags().Float64SliceVar(&compareOpts.manual, "manual", nil, "manual box input: length,width,height,thickness in mm")
	compareCmd.Flags().StringVar(&compareOpts.name, "name", "", "part name (defaults to file name)")
	compareCmd.MarkFlagRequired("material")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	catalog := loadCatalog()

	appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default preferences: %v\n", err)
		appCfg = model.DefaultAppConfig()
	}

	// Reuse the analyze flags for part construction.
	analyzeOpts.manual = compareOpts.manual
	analyzeOpts.seed = compareOpts.seed
	analyzeOpts.name = compareOpts.name
	part, err := buildPart(args, appCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := model.DefaultProcessConfig()
	appCfg.ApplyToConfig(&config)
	var scenarios []engine.ComparisonScenario
	switch {
	case len(compareOpts.materials) == 1 && len(compareOpts.cavities) > 1:
		material, err := catalog.Material(compareOpts.materials[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scenarios = engine.BuildCavityScenarios(material, config, compareOpts.cavities)
	default:
		materials := make([]model.MaterialProfile, 0, len(compareOpts.materials))
		for _, name := range compareOpts.materials {
			m, err := catalog.Material(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			materials = append(materials, m)
		}
		scenarios = engine.BuildMaterialScenarios(materials, config)
	}

	analyzer := engine.NewAnalyzer(catalog.Machines)
	results := engine.CompareScenarios(analyzer, part, scenarios)

	fmt.Printf("Comparison for %s\n\n", part.Name)
	fmt.Printf("%-24s %-7s %-10s %-9s %-10s %s\n", "SCENARIO", "SCORE", "TONNAGE", "CYCLE", "SHOT", "WARNINGS")
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-24s analysis failed: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Printf("%-24s %-7d %-10.1f %-9.1f %-10.1f %d\n",
			r.Scenario.Name, r.Score, r.TonnageT, r.CycleS, r.ShotWeightG, r.WarningCount)
	}
}
