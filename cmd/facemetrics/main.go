// Command facemetrics measures facial proportions from a photo and its
// face-mesh landmark dump.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"face-metrics/internal/config"
	"face-metrics/internal/telemetry"
	"face-metrics/internal/version"
	"face-metrics/pkg/log"
)

var (
	cfg      config.Config
	shutdown = func(context.Context) error { return nil }

	referencePath string
	landmarksPath string
	metricKeys    []string
	moves         []string
)

var rootCmd = &cobra.Command{
	Use:   "facemetrics",
	Short: "Measure facial proportions from a photo",
	Long: `facemetrics computes facial-proportion metrics from the landmarks of a
face-mesh model and assesses them against a reference database.

Landmarks are read from a JSON dump next to the image ("face.jpg" pairs with
"face.landmarks.json") unless --landmarks is given.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if err := log.Setup(log.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
			return err
		}
		if shutdown, err = telemetry.Setup(cmd.Context(), cfg.OTelEnabled, cfg.OTelEndpoint); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		if !cmd.Flags().Changed("reference") {
			referencePath = cfg.ReferencePath
		}
		if !cmd.Flags().Changed("metrics") {
			metricKeys = cfg.ActiveMetrics
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdown(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&referencePath, "reference", "r", "", "reference database JSON (default from FACE_METRICS_REFERENCE_PATH)")
	rootCmd.PersistentFlags().StringVarP(&landmarksPath, "landmarks", "l", "", "face-mesh landmark JSON (default: <image>.landmarks.json)")
	rootCmd.PersistentFlags().StringSliceVarP(&metricKeys, "metrics", "m", nil, "comma-separated metric keys to compute (default all)")
	rootCmd.PersistentFlags().StringArrayVar(&moves, "move", nil, "move a point before measuring, as name=x,y (repeatable)")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
