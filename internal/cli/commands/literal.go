package commands

import (
	"fmt"

	"github.com/clarkmcc/surrealdb/internal/render"
	"github.com/clarkmcc/surrealdb/pkg/token"
	"github.com/spf13/cobra"
)

// literalCommand describes a command that renders its arguments as one kind.
type literalCommand struct {
	use     string
	kind    token.Kind
	short   string
	example string
	aliases []string
}

var literalCommands = []literalCommand{
	{
		use:     "quote",
		kind:    token.String,
		short:   "Render arguments as string literals",
		example: `  surql quote "cat's"        # "cat's"`,
	},
	{
		use:     "plain",
		kind:    token.Plain,
		short:   "Render arguments as strands that never re-parse as other literals",
		example: `  surql plain --compat 2021-01-01T00:00:00Z   # s'2021-01-01T00:00:00Z'`,
		aliases: []string{"strand"},
	},
	{
		use:     "key",
		kind:    token.Key,
		short:   "Render arguments as object keys",
		example: `  surql key 'first name'     # "first name"`,
	},
	{
		use:     "ident",
		kind:    token.Ident,
		short:   "Render arguments as identifiers",
		example: "  surql ident 1              # `1`",
	},
	{
		use:     "rid",
		kind:    token.RecordID,
		short:   "Render arguments as record id segments",
		example: "  surql rid 123              # ⟨123⟩",
		aliases: []string{"thing"},
	},
}

// NewLiteralCommands creates one command per builtin literal kind.
func NewLiteralCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(literalCommands))
	for _, lc := range literalCommands {
		cmds = append(cmds, newLiteralCommand(lc))
	}
	return cmds
}

func newLiteralCommand(lc literalCommand) *cobra.Command {
	return &cobra.Command{
		Use:     lc.use + " <value>...",
		Aliases: lc.aliases,
		Short:   lc.short,
		Example: lc.example,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderValues(cmd, lc.kind, args)
		},
	}
}

// renderValues renders values as kind and writes them in the configured format.
func renderValues(cmd *cobra.Command, kind token.Kind, values []string) error {
	cmdCtx := NewCommandContext(cmd)

	reqs := make([]render.Request, len(values))
	for i, v := range values {
		reqs[i] = render.Request{Kind: kind, Input: v}
	}

	results, err := cmdCtx.Service.RenderBatch(cmd.Context(), reqs)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return writeResults(cmd.OutOrStdout(), results, cmdCtx.Cfg.Output)
}
