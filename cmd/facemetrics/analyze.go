package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [image]",
	Short: "Print every metric with its ideal range and assessment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := analyzeImage(cmd.Context(), args[0], nil)
	if err != nil {
		return err
	}
	writeReport(os.Stdout, a.Results(), language.English)
	return nil
}
