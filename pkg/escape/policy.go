package escape

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/clarkmcc/surrealdb/pkg/token"
)

// Policy is the escaping configuration of one token kind: the delimiter
// pair, the sequence that replaces the close delimiter inside the wrapped
// value, and whether all-digit values must be wrapped.
type Policy struct {
	Kind    token.Kind
	Open    rune
	Close   rune
	Escape  string
	Numeric bool
}

// Apply escapes s under the policy. The boolean reports whether the value
// was wrapped; when false the returned string is s itself.
func (p Policy) Apply(s string) (string, bool) {
	if !needsWrap(s, p.Numeric) {
		return s, false
	}
	return wrap(s, p.Open, p.Close, p.Escape), true
}

// Validate checks the policy is usable.
func (p Policy) Validate() error {
	switch {
	case p.Kind == token.Invalid:
		return errors.New("policy kind is required")
	case p.Open == 0 || p.Close == 0:
		return fmt.Errorf("policy %s: delimiters are required", p.Kind)
	case p.Escape == "":
		return fmt.Errorf("policy %s: escape sequence is required", p.Kind)
	case p.Close < utf8.RuneSelf && isIdentByte(byte(p.Close)):
		return fmt.Errorf("policy %s: close delimiter %q is an identifier character", p.Kind, p.Close)
	}
	return nil
}

// Builtin policies.
var (
	KeyPolicy = Policy{
		Kind:   token.Key,
		Open:   Double,
		Close:  Double,
		Escape: DoubleEsc,
	}
	IdentPolicy = Policy{
		Kind:    token.Ident,
		Open:    Backtick,
		Close:   Backtick,
		Escape:  BacktickEsc,
		Numeric: true,
	}
	RecordIDPolicy = Policy{
		Kind:    token.RecordID,
		Open:    BracketL,
		Close:   BracketR,
		Escape:  BracketEsc,
		Numeric: true,
	}
)

var (
	policiesMu sync.RWMutex
	policies   = map[token.Kind]Policy{
		token.Key:      KeyPolicy,
		token.Ident:    IdentPolicy,
		token.RecordID: RecordIDPolicy,
	}
)

// ErrPolicyExists is returned when registering a policy for a kind that
// already has one.
var ErrPolicyExists = errors.New("policy already registered")

// RegisterPolicy adds the escaping policy for a new token kind.
func RegisterPolicy(p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}

	policiesMu.Lock()
	defer policiesMu.Unlock()
	if _, ok := policies[p.Kind]; ok {
		return fmt.Errorf("%w: %s", ErrPolicyExists, p.Kind)
	}
	policies[p.Kind] = p
	return nil
}

// PolicyFor returns the policy registered for kind.
func PolicyFor(kind token.Kind) (Policy, bool) {
	policiesMu.RLock()
	defer policiesMu.RUnlock()
	p, ok := policies[kind]
	return p, ok
}

// Policies returns all registered policies ordered by kind.
func Policies() []Policy {
	policiesMu.RLock()
	defer policiesMu.RUnlock()
	out := make([]Policy, 0, len(policies))
	for _, p := range policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
