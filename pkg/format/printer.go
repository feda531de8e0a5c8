// Package format renders values and statements as query text, escaping every
// string, identifier, key and record id on the way out.
package format

import (
	"bytes"
	"strings"

	"github.com/clarkmcc/surrealdb/pkg/escape"
)

const indentSize = 4

// Printer writes query text with optional pretty indentation.
type Printer struct {
	oracle      escape.Oracle
	pretty      bool
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithPretty enables multi-line output.
func WithPretty() Option {
	return func(p *Printer) {
		p.pretty = true
	}
}

// WithOracle sets the oracle used to disambiguate strands. Without it strands
// are never prefixed.
func WithOracle(o escape.Oracle) Option {
	return func(p *Printer) {
		p.oracle = o
	}
}

func newPrinter(opts ...Option) *Printer {
	p := &Printer{
		oracle:      escape.NoopOracle{},
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// String returns the formatted output.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n")
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) keyword(s string) {
	p.write(strings.ToUpper(s))
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// clause starts a statement clause: a new indented line in pretty mode,
// otherwise a single space. The returned func closes the clause.
func (p *Printer) clause() func() {
	if !p.pretty {
		p.space()
		return func() {}
	}
	p.writeln()
	p.indent()
	return p.dedent
}

// formatList prints count items separated by sep.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
		}
	}
}
