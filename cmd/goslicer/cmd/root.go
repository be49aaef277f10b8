// Package cmd implements the goslicer CLI harness: a thin collaborator
// outside the geometric core that loads a mesh, slices it, and reports on
// the result. One cobra.Command per verb, wired in an init().
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goslicer",
	Short: "goslicer slices an indexed triangle mesh into layer contours",
	Long: `goslicer is a thin CLI harness around the geometric core of a
3D-printing slicer: it loads a mesh (OBJ, or a built-in synthetic
primitive), builds an AABB hierarchy, slices it at a given layer height,
and writes the resulting layers as JSON.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
