package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/clarkmcc/surrealdb/internal/cli/config"
	"github.com/clarkmcc/surrealdb/internal/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
)

var (
	changedStyle   = lipgloss.NewStyle().Bold(true)
	unchangedStyle = lipgloss.NewStyle().Faint(true)
)

// writeResults renders results in the configured output format.
func writeResults(w io.Writer, results []render.Result, format string) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, results)
	case config.OutputTable:
		return writeTable(w, results)
	default:
		return writeText(w, results)
	}
}

// writeText prints one rendered value per line.
func writeText(w io.Writer, results []render.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Output); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []render.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

func writeTable(w io.Writer, results []render.Result) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"kind", "input", "output", "changed"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Kind.String(), strconv.Quote(r.Input), r.Output, r.Changed})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(results))
	return nil
}

// colorEnabled reports whether w is a terminal that accepts styling and
// NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	out := termenv.NewOutput(w)
	return !out.EnvNoColor() && out.Profile != termenv.Ascii
}

// styleResult highlights values that had to be quoted or escaped.
func styleResult(r render.Result, styled bool) string {
	if !styled {
		return r.Output
	}
	if r.Changed {
		return changedStyle.Render(r.Output)
	}
	return unchangedStyle.Render(r.Output)
}
