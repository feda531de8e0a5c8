package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clarkmcc/surrealdb/pkg/token"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Kind  string
	Input string
	Watch bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render [value...]",
		Short: "Render values as query literals",
		Long: `Render values as the literal text the query lexer reads back unchanged.

Values come from the arguments, from --input (one value per line), or from
piped stdin. When invoked without values on a terminal, enters interactive
REPL mode.`,
		Example: `  # Render an identifier
  surql render --kind ident "first name"

  # Render every line of a file as record id segments
  surql render --kind rid --input ids.txt

  # Re-render the file every time it is saved
  surql render --kind key --input keys.txt --watch

  # Piped input, JSON output
  printf 'a\n1\n' | surql render --kind ident -o json

  # Interactive mode
  surql render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "Literal kind: string, plain, key, ident, rid")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read values from file, one per line")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render --input whenever it changes")

	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(token.Kinds()))
		for _, k := range token.Kinds() {
			names = append(names, k.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *RenderOptions) error {
	cmdCtx := NewCommandContext(cmd)

	kindName := opts.Kind
	if kindName == "" {
		kindName = cmdCtx.Cfg.Kind
	}
	kind, err := token.ParseKind(kindName)
	if err != nil {
		return err
	}

	if opts.Watch && opts.Input == "" {
		return errors.New("--watch requires --input")
	}

	var values []string
	switch {
	case len(args) > 0:
		values = args
	case opts.Watch:
		return watchInput(cmd, cmdCtx, kind, opts.Input)
	case opts.Input != "":
		cmdCtx.Logger.Debug("rendering file", "kind", kind.String(), "path", opts.Input)
		return renderFile(cmd, kind, opts.Input)
	case !isTerminal(cmd.InOrStdin()):
		if values, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	default:
		return runREPL(cmd, cmdCtx, kind)
	}

	cmdCtx.Logger.Debug("rendering values", "kind", kind.String(), "count", len(values))
	return renderValues(cmd, kind, values)
}

// readLines returns every line of r without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
