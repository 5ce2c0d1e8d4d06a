package main

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"face-metrics/internal/metrics"
)

// writeReport prints one line per metric: name, value, ideal range and
// assessment.
func writeReport(w io.Writer, results []metrics.Result, tag language.Tag) {
	p := message.NewPrinter(tag)
	title := cases.Title(tag)

	p.Fprintf(w, "%-30s %-26s %-16s %s\n",
		title.String("metric"), title.String("value"), title.String("ideal"), title.String("assessment"))
	for _, r := range results {
		assessment := "-"
		switch {
		case r.Err != nil:
			assessment = r.Err.Error()
		case r.Assessed:
			assessment = r.Assessment.Text
		}
		ideal := r.Ideal
		if ideal == "" {
			ideal = "-"
		}
		p.Fprintf(w, "%-30s %-26s %-16s %s\n", r.Name, r.Value, ideal, assessment)
	}
	p.Fprintf(w, "\n%d metrics\n", len(results))
}
