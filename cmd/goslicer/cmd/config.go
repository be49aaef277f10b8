package cmd

import (
	"fmt"
	"os"

	slicer "github.com/arl/goslicer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// configCmd represents the config command, mirroring the teacher's own
// cmd/recast/cmd/config.go: write a settings file prefilled with defaults,
// confirming before clobbering an existing one.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a default gap-closing settings file",
	Long: `Write a GapClosingConfig in YAML format, prefilled with default
values (max_gap_mm: 2, max_angle_deg: 45, enable: true).

If FILE is not provided, 'goslicer.yml' is used.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := "goslicer.yml"
	if len(args) >= 1 {
		path = args[0]
	}

	if fileExists(path) {
		msg := fmt.Sprintf("file name %s already exists, overwrite?", path)
		if !askForConfirmation(msg) {
			fmt.Println("aborted by user")
			return nil
		}
	}

	cfg := slicer.NewDefaultGapClosingConfig()
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return slicer.Errorf(slicer.KindInvalidInput, "write %s: %v", path, err)
	}
	fmt.Printf("gap-closing settings written to '%s'\n", path)
	return nil
}
