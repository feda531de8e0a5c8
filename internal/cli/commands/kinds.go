package commands

import (
	"fmt"
	"io"

	"github.com/clarkmcc/surrealdb/pkg/escape"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewKindsCommand creates the kinds command.
func NewKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List literal kinds and their escaping policies",
		Long: `List every literal kind with the delimiters it is wrapped in, the
sequence that escapes the closing delimiter, and whether all-digit values are
wrapped so they are not read back as numbers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeKinds(cmd.OutOrStdout())
		},
	}
}

func writeKinds(w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"kind", "open", "close", "escape", "numeric"})

	t.AppendRow(table.Row{"string", `' or "`, `' or "`, `\\ and \"`, false})
	t.AppendRow(table.Row{"plain", `[s]' or [s]"`, `' or "`, `\\ and \"`, false})
	for _, p := range escape.Policies() {
		t.AppendRow(table.Row{p.Kind.String(), string(p.Open), string(p.Close), p.Escape, p.Numeric})
	}
	t.Render()
	_, err := fmt.Fprintln(w)
	return err
}
