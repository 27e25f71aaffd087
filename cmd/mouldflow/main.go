// mouldflow: injection molding feasibility analyzer
//
// Estimates whether a 3D part can be injection molded and derives process
// parameters (clamp tonnage, cycle time, fill pressure, machine matches)
// from its geometry and a chosen material.
//
// Build:
//   go build -o mouldflow ./cmd/mouldflow

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mouldflow",
	Short: "Injection molding feasibility and process analysis",
	Long: `mouldflow analyzes a 3D part (STL file or manual box dimensions) against a
material profile and reports moldability: wall thickness distribution, clamp
tonnage, fill time, cycle time, design warnings, a feasibility score, and
matching injection molding machines.`,
	Version: version.Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
