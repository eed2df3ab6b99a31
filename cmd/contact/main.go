package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contact",
	Short: "Detect and measure connections between building elements",
	Long: `contact analyzes a set of triangle meshes and reports where the
solids touch: point contacts, shared edges with their length and shared
faces with their area. Each mesh file is treated as one building element.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
