// Package literal recognises the literal shapes of the legacy query grammar.
//
// The legacy grammar reads some quoted strings as richer values: a quoted
// uuid becomes a uuid, a quoted datetime becomes a datetime and a quoted
// `table:id` becomes a record id. Legacy exposes those recognisers as an
// escape.Oracle so string rendering can prefix ambiguous strands.
//
// Probes work on the raw text between the quotes, the way the legacy parser
// applied its sub-parsers. None of them fail; an unknown shape is false.
package literal

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/clarkmcc/surrealdb/pkg/escape"
)

// Legacy is the escape.Oracle of the legacy grammar. The zero value is ready
// to use.
type Legacy struct{}

var _ escape.Oracle = Legacy{}

// LooksLikeUUID implements escape.Oracle.
func (Legacy) LooksLikeUUID(quoted string) bool { return IsUUID(quoted) }

// LooksLikeDatetime implements escape.Oracle.
func (Legacy) LooksLikeDatetime(quoted string) bool { return IsDatetime(quoted) }

// LooksLikeRecordID implements escape.Oracle.
func (Legacy) LooksLikeRecordID(quoted string) bool { return IsRecordID(quoted) }

// body returns the raw text between matching single or double quotes.
func body(text string) (string, bool) {
	if len(text) < 2 {
		return "", false
	}
	q := text[0]
	if q != '\'' && q != '"' {
		return "", false
	}
	if text[len(text)-1] != q {
		return "", false
	}
	return text[1 : len(text)-1], true
}

// Unquote decodes text, which must be exactly one single- or double-quoted
// string literal. Recognised escapes are \\ \' \" \/ \b \f \n \r \t, \uXXXX
// and \u{X...}. The other quote character may appear raw.
func Unquote(text string) (string, bool) {
	if len(text) < 2 {
		return "", false
	}
	q := text[0]
	if q != '\'' && q != '"' {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(text) - 2)
	for i := 1; i < len(text); i++ {
		c := text[i]
		switch c {
		case q:
			if i != len(text)-1 {
				return "", false
			}
			return b.String(), true
		case '\\':
			i++
			if i >= len(text) {
				return "", false
			}
			switch e := text[i]; e {
			case '\\', '\'', '"', '/':
				b.WriteByte(e)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				r, n, ok := readUnicode(text[i+1:])
				if !ok {
					return "", false
				}
				b.WriteRune(r)
				i += n
			default:
				return "", false
			}
		default:
			b.WriteByte(c)
		}
	}
	// Unterminated
	return "", false
}

// readUnicode reads the code point after \u, either XXXX or {X...}.
// It returns the rune and the number of bytes consumed.
func readUnicode(s string) (rune, int, bool) {
	var hex string
	var n int
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 || end > 7 {
			return 0, 0, false
		}
		hex, n = s[1:end], end+1
	} else {
		if len(s) < 4 {
			return 0, 0, false
		}
		hex, n = s[:4], 4
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, 0, false
	}
	return r, n, true
}
