package format

import (
	"sort"
	"strconv"

	"github.com/clarkmcc/surrealdb/pkg/escape"
)

// Strand is a string value.
type Strand string

// Ident is an identifier such as a table or field name.
type Ident string

// ID is a string record id segment.
type ID string

// Int is an integer value or numeric record id.
type Int int64

// Bool is a boolean value.
type Bool bool

// None is the absent value.
type None struct{}

// Array is an ordered list of values.
type Array []Node

// Object is a map of keys to values. Keys are printed in sorted order.
type Object map[string]Node

// Thing is a record id: table:id.
type Thing struct {
	Table string
	ID    Node
}

func (s Strand) print(p *Printer) {
	p.write(escape.QuotePlainStr(string(s), p.oracle))
}

func (i Ident) print(p *Printer) {
	p.write(escape.EscapeIdent(string(i)))
}

func (i ID) print(p *Printer) {
	p.write(escape.EscapeRid(string(i)))
}

func (i Int) print(p *Printer) {
	p.write(strconv.FormatInt(int64(i), 10))
}

func (b Bool) print(p *Printer) {
	p.write(strconv.FormatBool(bool(b)))
}

func (None) print(p *Printer) {
	p.keyword("none")
}

func (a Array) print(p *Printer) {
	p.write("[")
	p.formatList(len(a), func(i int) {
		a[i].print(p)
	}, ", ")
	p.write("]")
}

func (o Object) print(p *Printer) {
	if len(o) == 0 {
		p.write("{}")
		return
	}
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p.write("{ ")
	p.formatList(len(keys), func(i int) {
		p.write(escape.EscapeKey(keys[i]))
		p.write(": ")
		o[keys[i]].print(p)
	}, ", ")
	p.write(" }")
}

func (t Thing) print(p *Printer) {
	p.write(escape.EscapeRid(t.Table))
	p.write(":")
	if t.ID == nil {
		ID("").print(p)
		return
	}
	t.ID.print(p)
}
