package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"face-metrics/internal/overlay"
	"face-metrics/pkg/log"
)

var outputPath string

var renderCmd = &cobra.Command{
	Use:   "render [image]",
	Short: "Write the image with the metric overlays drawn on it",
	Long:  "Draw the construction lines of the active metrics over the image and save the result as PNG.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output PNG (default: <image>.overlay.png)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".overlay.png"
	}

	a, err := analyzeImage(cmd.Context(), imagePath, nil)
	if err != nil {
		return err
	}
	surface := overlay.NewPNGSurface(a.Photo.Image)
	surface.Redraw(a.Controller.Frame(nil))
	if err := surface.WriteFile(out); err != nil {
		return err
	}

	log.Info(log.Fields{"output": out, "drawables": len(a.Metrics.Drawables())}, "[facemetrics.render] overlay written")
	fmt.Println(out)
	return nil
}
