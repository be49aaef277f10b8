package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	slicer "github.com/arl/goslicer"
	"github.com/arl/goslicer/slice"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command, the JSON-output analogue of the
// teacher's cmd/recast/cmd/infos.go: read back a previously produced
// build artifact and print a consistency summary, rather than re-running
// the build.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "show a summary of a previously produced SliceResult",
	Long: `Read a SliceResult from the JSON file written by 'goslicer slice
--output', then print per-layer island/hole counts and the run's overall
statistics.`,
	RunE: runInfo,
}

var infoFlags struct {
	input string
}

func init() {
	flags := infoCmd.Flags()
	flags.StringVar(&infoFlags.input, "input", "", "path to a SliceResult JSON file (required)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if infoFlags.input == "" {
		return slicer.Errorf(slicer.KindInvalidInput, "--input is required")
	}
	b, err := os.ReadFile(infoFlags.input)
	if err != nil {
		return slicer.Errorf(slicer.KindInvalidInput, "read %s: %v", infoFlags.input, err)
	}

	var result slice.SliceResult
	if err := json.Unmarshal(b, &result); err != nil {
		return slicer.Errorf(slicer.KindInvalidInput, "parse %s: %v", infoFlags.input, err)
	}

	fmt.Printf("%d layer(s)\n", len(result.Layers))
	for i, l := range result.Layers {
		holes := 0
		for _, p := range l.Polygons {
			holes += len(p.Holes)
		}
		fmt.Printf("  layer %3d  z=%7.3f  islands=%d  holes=%d\n", i, l.ZHeight, l.IslandCount, holes)
	}

	s := result.Statistics
	fmt.Println("statistics:")
	fmt.Printf("  triangles processed:    %d\n", s.TrianglesProcessed)
	fmt.Printf("  intersections found:    %d\n", s.IntersectionsFound)
	fmt.Printf("  polygon completion rate: %.4f\n", s.PolygonCompletionRate)
	fmt.Printf("  gaps found / closed:    %d / %d\n", s.GapsFound, s.GapsClosed)
	fmt.Printf("  processing time:        %.2f ms\n", s.ProcessingTimeMS)
	return nil
}
