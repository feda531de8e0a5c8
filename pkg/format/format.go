package format

// Node is anything the Printer can render.
type Node interface {
	print(p *Printer)
}

// Format renders n as query text.
func Format(n Node, opts ...Option) string {
	p := newPrinter(opts...)
	n.print(p)
	return p.String()
}
