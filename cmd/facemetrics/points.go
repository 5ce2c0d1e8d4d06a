package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointsCmd = &cobra.Command{
	Use:   "points [image]",
	Short: "List the named points, base and derived",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoints,
}

func init() {
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	a, err := analyzeImage(cmd.Context(), args[0], nil)
	if err != nil {
		return err
	}
	draggable := make(map[string]bool)
	for _, name := range a.Metrics.NecessaryPoints() {
		draggable[name] = true
	}

	for _, name := range a.Store.Names() {
		p, _ := a.Store.Get(name)
		kind := "base"
		switch {
		case a.Store.IsDerived(name):
			kind = "derived"
		case draggable[name]:
			kind = "draggable"
		}
		fmt.Printf("%-22s %9.2f %9.2f  %s\n", name, p.X, p.Y, kind)
	}
	return nil
}
