package escape

import (
	"strings"
	"unicode/utf8"
)

// Delimiters and escape sequences of the query language.
const (
	Single = '\''
	Double = '"'

	DoubleEsc = `\"`

	BracketL   = '⟨'
	BracketR   = '⟩'
	BracketEsc = `\⟩`

	Backtick    = '`'
	BacktickEsc = "\\`"
)

// QuoteStr quotes s with single quotes, or with double quotes when s
// contains a single quote. Backslashes are doubled. Double quotes are
// escaped only in double-quote mode; inside single quotes they stay raw
// because the lexer reads them as plain characters there.
func QuoteStr(s string) string {
	quote := byte(Single)
	if strings.IndexByte(s, Single) >= 0 {
		quote = Double
	}
	escapeDouble := quote == Double

	var b strings.Builder
	// Escapes may push this over.
	b.Grow(len(s) + 2)
	b.WriteByte(quote)

	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' && (c != Double || !escapeDouble) {
			continue
		}
		b.WriteString(s[last:i])
		if c == '\\' {
			b.WriteString(`\\`)
		} else {
			b.WriteString(DoubleEsc)
		}
		last = i + 1
	}
	b.WriteString(s[last:])

	b.WriteByte(quote)
	return b.String()
}

// QuotePlainStr quotes s like QuoteStr and prefixes the result with 's' when
// the oracle reports that the quoted text would otherwise re-parse as a uuid,
// a datetime or a record id. A nil oracle never prefixes.
func QuotePlainStr(s string, o Oracle) string {
	ret := QuoteStr(s)
	if Ambiguous(o, ret) {
		return "s" + ret
	}
	return ret
}

// EscapeKey escapes an object key if necessary.
func EscapeKey(s string) string {
	return EscapeNormal(s, Double, Double, DoubleEsc)
}

// EscapeRid escapes a record id segment if necessary.
func EscapeRid(s string) string {
	return EscapeNumeric(s, BracketL, BracketR, BracketEsc)
}

// EscapeIdent escapes an identifier if necessary.
func EscapeIdent(s string) string {
	return EscapeNumeric(s, Backtick, Backtick, BacktickEsc)
}

// EscapeNormal wraps s in l and r, replacing every r inside it with e, when s
// contains any byte outside [A-Za-z0-9_]. Otherwise s is returned unchanged.
func EscapeNormal(s string, l, r rune, e string) string {
	if !needsWrap(s, false) {
		return s
	}
	return wrap(s, l, r, e)
}

// EscapeNumeric behaves like EscapeNormal but also wraps s when every byte
// is an ASCII digit, so the result is not read back as a number. The empty
// string counts as all digits.
func EscapeNumeric(s string, l, r rune, e string) string {
	if !needsWrap(s, true) {
		return s
	}
	return wrap(s, l, r, e)
}

// needsWrap scans s once. With numeric set, all-digit input needs wrapping.
func needsWrap(s string, numeric bool) bool {
	digits := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isIdentByte(c) {
			return true
		}
		if !isDigit(c) {
			digits = false
		}
	}
	return numeric && digits
}

func wrap(s string, l, r rune, e string) string {
	var b strings.Builder
	b.Grow(len(s) + utf8.RuneLen(l) + utf8.RuneLen(r))
	b.WriteRune(l)
	b.WriteString(strings.ReplaceAll(s, string(r), e))
	b.WriteRune(r)
	return b.String()
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
