package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/engine"
)

var infoSeed int64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometry information about an STL part",
	Long:  "Show volumetric metrics, mesh quality, and the wall thickness profile of an STL file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	infoCmd.Flags().Int64Var(&infoSeed, "seed", 1, "random seed for thickness sampling")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, summary, err := loadMeshFromFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting geometry: %v\n", err)
		os.Exit(1)
	}

	thickness, err := engine.NewThicknessAnalyzer().Analyze(mesh, infoSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing thickness: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Part Geometry")
	fmt.Println("=============")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh:")
	fmt.Printf("  Extraction: %s\n", summary.Method)
	fmt.Printf("  Triangles: %d\n", summary.Quality.TriangleCount)
	fmt.Printf("  Vertices: %d\n", summary.Quality.VertexCount)
	fmt.Printf("  Watertight: %v\n", summary.Quality.Watertight)
	fmt.Printf("  Repaired: %v\n\n", summary.Quality.Repaired)

	fmt.Println("Metrics:")
	fmt.Printf("  Volume: %.3f cm3\n", summary.VolumeCm3)
	fmt.Printf("  Surface area: %.2f cm2\n", summary.SurfaceAreaCm2)
	fmt.Printf("  Projected area: %.2f cm2\n", summary.ProjectedAreaCm2)
	fmt.Printf("  Bounding box: %.2f x %.2f x %.2f mm\n", summary.BBox.X, summary.BBox.Y, summary.BBox.Z)
	fmt.Printf("  Centroid: (%.2f, %.2f, %.2f)\n\n", summary.Centroid.X, summary.Centroid.Y, summary.Centroid.Z)

	fmt.Printf("Wall Thickness (%s, %d samples):\n", thickness.Confidence, thickness.SampleCount)
	fmt.Printf("  Min: %.2f mm\n", thickness.MinMM)
	fmt.Printf("  Avg: %.2f mm\n", thickness.AvgMM)
	fmt.Printf("  Max: %.2f mm\n", thickness.MaxMM)
	fmt.Printf("  Std dev: %.2f mm\n", thickness.StdDevMM)
	if len(thickness.ThickSections) > 0 {
		fmt.Printf("  Thick sections: %d flagged\n", len(thickness.ThickSections))
	}

	gates := engine.RecommendGateLocations(mesh)
	if len(gates) > 0 {
		fmt.Println("\nSuggested Gates:")
		for _, g := range gates {
			role := "secondary"
			if g.Primary {
				role = "primary"
			}
			fmt.Printf("  %s at (%.1f, %.1f, %.1f): %s\n", role, g.Location.X, g.Location.Y, g.Location.Z, g.Rationale)
		}
	}
}
