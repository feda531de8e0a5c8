// Package token defines the literal kinds the renderer knows how to write.
//
// Built-in kinds are constants for switch performance. Further kinds are
// registered dynamically via Register() and paired with an escaping policy.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the lexical token a rendered value must re-lex as.
type Kind int32

const (
	// Invalid is the zero Kind.
	Invalid Kind = iota

	String   // 'text' or "text's"
	Plain    // string that must not re-parse as a uuid, datetime or record id
	Key      // object key
	Ident    // identifier
	RecordID // record id segment

	// Sentinel - dynamic kinds start after this
	maxBuiltin Kind = 999
)

// ErrUnknownKind is returned by ParseKind for names that are not registered.
var ErrUnknownKind = errors.New("unknown literal kind")

// kindNames maps builtin kinds to their names.
var kindNames = map[Kind]string{
	Invalid:  "invalid",
	String:   "string",
	Plain:    "plain",
	Key:      "key",
	Ident:    "ident",
	RecordID: "rid",
}

// kindAliases are the extra spellings accepted by ParseKind.
var kindAliases = map[string]Kind{
	"quote":      String,
	"quoted":     String,
	"strand":     Plain,
	"identifier": Ident,
	"record":     RecordID,
	"record_id":  RecordID,
	"thing":      RecordID,
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := getDynamicName(k); ok {
		return name
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

// Kinds returns the builtin kinds in declaration order.
func Kinds() []Kind {
	return []Kind{String, Plain, Key, Ident, RecordID}
}

// ParseKind resolves a kind by name, alias or registered dynamic name.
// Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, v := range kindNames {
		if k != Invalid && v == n {
			return k, nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	if k, ok := LookupDynamic(n); ok {
		return k, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
