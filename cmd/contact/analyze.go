package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bimkit/contact"
	"github.com/bimkit/contact/render"
	"github.com/bimkit/contact/scene"
)

var (
	touchTol     float64
	dedupTol     float64
	proximityTol float64
	planarTol    float64
	minArea      float64
	samples      int
	workers      int
	refineLines  bool
	csvOut       string
	stlOut       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Find connections between the given mesh files",
	Long: `Analyze runs the connection pipeline over the given binary STL files,
one element per file, and prints every detected contact with its
classification and measurement. Results can additionally be exported as
CSV or as an STL of the connection geometry.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	def := contact.DefaultOptions()
	analyzeCmd.Flags().Float64Var(&touchTol, "touch-tol", def.TouchTol, "ray hit distance counted as touching")
	analyzeCmd.Flags().Float64Var(&dedupTol, "dedup-tol", def.DedupTol, "distance below which contact points merge")
	analyzeCmd.Flags().Float64Var(&proximityTol, "proximity-tol", def.ProximityTol, "bounding box gap above which a pair is skipped")
	analyzeCmd.Flags().Float64Var(&planarTol, "planar-tol", def.PlanarTol, "allowed deviation from the fitted plane")
	analyzeCmd.Flags().Float64Var(&minArea, "min-area", def.MinArea, "smallest patch still reported as a surface")
	analyzeCmd.Flags().IntVar(&samples, "samples", def.SampleBudget, "surface sample budget per mesh")
	analyzeCmd.Flags().IntVar(&workers, "workers", def.Workers, "concurrent pair workers")
	analyzeCmd.Flags().BoolVar(&refineLines, "refine-lines", false, "apply junction refinement to line contacts too")
	analyzeCmd.Flags().StringVar(&csvOut, "csv", "", "write connections to a CSV file")
	analyzeCmd.Flags().StringVar(&stlOut, "stl", "", "write connection geometry to a binary STL file")
}

func options() contact.Options {
	return contact.Options{
		TouchTol:     touchTol,
		DedupTol:     dedupTol,
		ProximityTol: proximityTol,
		PlanarTol:    planarTol,
		MinArea:      minArea,
		SampleBudget: samples,
		Workers:      workers,
		RefineLines:  refineLines,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	elems, names, err := loadScene(args)
	if err != nil {
		return err
	}
	set, err := runPass(ctx, elems)
	if err != nil {
		return err
	}
	printConnections(os.Stdout, set, names)
	printStats(os.Stdout, set.Stats)

	if csvOut != "" {
		if err := exportCSV(csvOut, set, names); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvOut)
	}
	if stlOut != "" {
		if err := exportSTL(stlOut, set); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", stlOut)
	}
	return nil
}

// loadScene loads every file as one element of model 1 and resolves
// display names from the file basenames.
func loadScene(paths []string) ([]*contact.Element, scene.StaticNames, error) {
	group, names, errs := scene.LoadModels(paths, 1)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	elems := scene.Elements(group)
	if len(elems) == 0 {
		return nil, nil, fmt.Errorf("no loadable geometry in %d file(s)", len(paths))
	}
	scene.ResolveNames(context.Background(), elems, names)
	return elems, names, nil
}

func runPass(ctx context.Context, elems []*contact.Element) (*contact.ConnectionSet, error) {
	return contact.NewAnalyzer(options()).Analyze(ctx, elems)
}

func printConnections(w *os.File, set *contact.ConnectionSet, names scene.NameSource) {
	fmt.Fprintln(w, "Connections")
	fmt.Fprintln(w, "===========")
	if set.Len() == 0 {
		fmt.Fprintln(w, "none")
		return
	}
	ctx := context.Background()
	for _, c := range set.All() {
		a := scene.ElementName(ctx, names, c.Key.A)
		b := scene.ElementName(ctx, names, c.Key.B)
		switch c.Type {
		case contact.TypeLine:
			fmt.Fprintf(w, "%-8s %s — %s  length %.6f m\n", c.Type, a, b, c.Measure.Length)
		case contact.TypeSurface:
			fmt.Fprintf(w, "%-8s %s — %s  area %.6f m²\n", c.Type, a, b, c.Measure.Area)
		default:
			fmt.Fprintf(w, "%-8s %s — %s\n", c.Type, a, b)
		}
	}
}

func printStats(w *os.File, s contact.Stats) {
	fmt.Fprintf(w, "\n%d element(s), %d pair(s), %d candidate(s) after proximity filter\n",
		s.Elements, s.Pairs, s.Candidates)
	fmt.Fprintf(w, "%d raw contact point(s), %d junction location(s)\n", s.RawPoints, s.Junctions)
	if s.SkippedMeshes > 0 {
		fmt.Fprintf(w, "%d malformed mesh(es) skipped\n", s.SkippedMeshes)
	}
	if s.FailedPairs > 0 {
		fmt.Fprintf(w, "%d pair(s) failed and were skipped\n", s.FailedPairs)
	}
	if s.DroppedPoints > 0 {
		fmt.Fprintf(w, "%d contact(s) dropped by junction refinement\n", s.DroppedPoints)
	}
	fmt.Fprintf(w, "elapsed %s\n", s.Elapsed)
}

func exportCSV(path string, set *contact.ConnectionSet, names scene.StaticNames) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return contact.WriteCSV(f, set, func(id contact.ElementID) string {
		return names[id]
	})
}

// exportSTL writes the marker and ribbon geometry of every connection
// as one binary STL, for inspection in an external viewer.
func exportSTL(path string, set *contact.ConnectionSet) error {
	var tris []render.Triangle3
	for _, c := range set.All() {
		tris = append(tris, render.Geometry(c)...)
	}
	if len(tris) == 0 {
		return fmt.Errorf("no connection geometry to export")
	}
	return render.WriteSTLFile(path, tris)
}
