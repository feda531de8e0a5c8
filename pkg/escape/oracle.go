package escape

// Oracle reports whether a quoted string literal would be read as a richer
// literal by the grammar in use. Implementations must not fail: an
// unrecognised shape is reported as false.
type Oracle interface {
	LooksLikeUUID(quoted string) bool
	LooksLikeDatetime(quoted string) bool
	LooksLikeRecordID(quoted string) bool
}

// NoopOracle never reports an ambiguity. It matches grammars that only read
// uuids, datetimes and record ids from explicitly prefixed literals.
type NoopOracle struct{}

// LooksLikeUUID implements Oracle.
func (NoopOracle) LooksLikeUUID(string) bool { return false }

// LooksLikeDatetime implements Oracle.
func (NoopOracle) LooksLikeDatetime(string) bool { return false }

// LooksLikeRecordID implements Oracle.
func (NoopOracle) LooksLikeRecordID(string) bool { return false }

// Ambiguous reports whether o would read quoted as anything but a string.
func Ambiguous(o Oracle, quoted string) bool {
	if o == nil {
		return false
	}
	return o.LooksLikeUUID(quoted) || o.LooksLikeDatetime(quoted) || o.LooksLikeRecordID(quoted)
}
