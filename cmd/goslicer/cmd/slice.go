package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	slicer "github.com/arl/goslicer"
	"github.com/arl/goslicer/bvh"
	"github.com/arl/goslicer/slice"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var sliceFlags struct {
	input       string
	primitive   string
	layerHeight float32
	gapConfig   string
	output      string
	verbose     bool
}

var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "slice a mesh into layer contours and write the result as JSON",
	RunE:  runSlice,
}

func init() {
	flags := sliceCmd.Flags()
	flags.StringVar(&sliceFlags.input, "input", "", "path to an OBJ mesh file")
	flags.StringVar(&sliceFlags.primitive, "primitive", "", "synthesize a built-in mesh instead of --input (cube|sphere)")
	flags.Float32Var(&sliceFlags.layerHeight, "layer-height", 0.2, "layer height in millimeters")
	flags.StringVar(&sliceFlags.gapConfig, "gap-config", "", "path to a gap-closing YAML config (defaults applied if omitted)")
	flags.StringVar(&sliceFlags.output, "output", "", "path to write the SliceResult JSON (stdout if omitted)")
	flags.BoolVar(&sliceFlags.verbose, "verbose", false, "dump the Context log to stdout after slicing (timers are not printed)")
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	mesh, err := loadMeshFromFlags()
	if err != nil {
		return err
	}

	cfg, err := loadGapClosingConfig(sliceFlags.gapConfig)
	if err != nil {
		return err
	}

	ctx := slicer.NewContext(sliceFlags.verbose)

	removed := mesh.RemoveDegenerate()
	if removed > 0 {
		ctx.Progressf("dropped %d degenerate triangle(s) before slicing", removed)
	}

	tree, err := bvh.Build(mesh, ctx, bvh.DefaultBuildOptions())
	if err != nil {
		return err
	}

	result, err := slice.Slice(mesh, tree, slicer.LayerHeight(sliceFlags.layerHeight), cfg, ctx)
	if err != nil {
		return err
	}

	if sliceFlags.verbose {
		ctx.DumpLog("goslicer: slice trace")
	}

	return writeSliceResult(result)
}

func loadMeshFromFlags() (*slicer.IndexedMesh, error) {
	switch {
	case sliceFlags.input != "" && sliceFlags.primitive != "":
		return nil, slicer.Errorf(slicer.KindInvalidInput, "--input and --primitive are mutually exclusive")
	case sliceFlags.input != "":
		return loadOBJMesh(sliceFlags.input)
	case sliceFlags.primitive != "":
		return synthesizePrimitive(sliceFlags.primitive)
	default:
		return nil, slicer.Errorf(slicer.KindInvalidInput, "one of --input or --primitive is required")
	}
}

func loadGapClosingConfig(path string) (slicer.GapClosingConfig, error) {
	if path == "" {
		return slicer.NewDefaultGapClosingConfig(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return slicer.GapClosingConfig{}, slicer.Errorf(slicer.KindInvalidInput, "read %s: %v", path, err)
	}
	cfg := slicer.NewDefaultGapClosingConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return slicer.GapClosingConfig{}, slicer.Errorf(slicer.KindInvalidInput, "parse %s: %v", path, err)
	}
	return cfg, nil
}

func writeSliceResult(result *slice.SliceResult) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if sliceFlags.output == "" {
		fmt.Println(string(b))
		return nil
	}
	return os.WriteFile(sliceFlags.output, b, 0644)
}
