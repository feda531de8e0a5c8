package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/clarkmcc/surrealdb/internal/render"
	"github.com/clarkmcc/surrealdb/pkg/token"
	"github.com/spf13/cobra"
)

// replSession holds the mutable state of an interactive render session.
type replSession struct {
	out    io.Writer
	errOut io.Writer
	kind   token.Kind
	compat bool
	styled bool
	svc    *render.Service
	ctx    *CommandContext
}

func newREPLSession(out, errOut io.Writer, cmdCtx *CommandContext, kind token.Kind) *replSession {
	return &replSession{
		out:    out,
		errOut: errOut,
		kind:   kind,
		compat: cmdCtx.Cfg.Compat,
		styled: colorEnabled(out),
		ctx:    cmdCtx,
		svc:    cmdCtx.Service,
	}
}

func (s *replSession) prompt() string {
	return fmt.Sprintf("surql[%s]> ", s.kind)
}

// handleLine processes one line of input. It returns true when the session
// should end.
func (s *replSession) handleLine(line string) bool {
	if strings.HasPrefix(strings.TrimSpace(line), ".") {
		return s.handleDotCommand(strings.TrimSpace(line))
	}

	res, err := s.svc.Render(render.Request{Kind: s.kind, Input: line})
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	_, _ = fmt.Fprintln(s.out, styleResult(res, s.styled))
	return false
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".kind":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "kind: %s\n", s.kind)
			return false
		}
		k, err := token.ParseKind(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		s.kind = k

	case ".compat":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "compat: %s\n", onOff(s.compat))
			return false
		}
		switch strings.ToLower(parts[1]) {
		case "on", "true":
			s.compat = true
		case "off", "false":
			s.compat = false
		default:
			_, _ = fmt.Fprintln(s.errOut, "Usage: .compat on|off")
			return false
		}
		s.svc = render.New(render.Config{Compat: s.compat, Workers: s.ctx.Cfg.Workers}, s.ctx.Logger)

	case ".kinds":
		if err := writeKinds(s.out); err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runREPL(cmd *cobra.Command, cmdCtx *CommandContext, kind token.Kind) error {
	session := newREPLSession(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmdCtx, kind)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          session.prompt(),
		HistoryFile:     historyFile(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "surql literal REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if session.handleLine(line) {
			break
		}
		rl.SetPrompt(session.prompt())
	}

	return nil
}

// historyFile returns the REPL history path, or "" to disable history.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".surql_history")
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help             Show this help message
  .kind [name]      Show or set the literal kind (string, plain, key, ident, rid)
  .compat [on|off]  Show or toggle legacy grammar compatibility for strands
  .kinds            List the escaping policies
  .quit / .exit     Exit the REPL

Every other line is rendered as the current kind. Leading and trailing
whitespace is kept.
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	kinds := make([]readline.PrefixCompleterInterface, 0, len(token.Kinds()))
	for _, k := range token.Kinds() {
		kinds = append(kinds, readline.PcItem(k.String()))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".kind", kinds...),
		readline.PcItem(".compat", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".kinds"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
