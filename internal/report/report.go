package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/leengari/numsanitize/internal/engine"
	"github.com/leengari/numsanitize/internal/precision"
)

var warningColumns = []string{"ROW", "COLUMN", "VALUE", "REASON"}

// PrintWarnings writes an aligned table of up to limit warnings, followed by
// a count of the ones left out. limit <= 0 prints all of them. Nothing is
// written when there are no warnings.
func PrintWarnings(w io.Writer, warnings []precision.Warning, limit int) {
	if len(warnings) == 0 {
		return
	}

	shown := warnings
	if limit > 0 && len(warnings) > limit {
		shown = warnings[:limit]
	}

	fmt.Fprintf(w, "%d value(s) could not be rounded and were left unchanged:\n", len(warnings))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Header
	for i, col := range warningColumns {
		fmt.Fprintf(tw, "%s", col)
		if i < len(warningColumns)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Separator
	for i := range warningColumns {
		fmt.Fprintf(tw, "---")
		if i < len(warningColumns)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Rows
	for _, warn := range shown {
		fmt.Fprintf(tw, "%d\t%s\t%v\t%s\n", warn.Row, warn.Column, warn.Value, warn.Reason)
	}
	tw.Flush()

	if hidden := len(warnings) - len(shown); hidden > 0 {
		fmt.Fprintf(w, "... and %d more\n", hidden)
	}
}

// PrintSummary writes a one-line summary of a finished run
func PrintSummary(w io.Writer, res *engine.Result) {
	fmt.Fprintf(w, "Rounded %d of %d row(s) in %s, output written to %s (%s)\n",
		res.Rounded, res.Rows, res.InputPath, res.OutputPath, res.Duration.Round(time.Millisecond))
}
