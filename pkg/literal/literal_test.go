package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "single", input: `'cat'`, want: "cat", ok: true},
		{name: "double", input: `"cat's"`, want: "cat's", ok: true},
		{name: "empty single", input: `''`, want: "", ok: true},
		{name: "escaped double", input: `"cat's \"toy\""`, want: `cat's "toy"`, ok: true},
		{name: "raw double in single", input: `'say "hi"'`, want: `say "hi"`, ok: true},
		{name: "escaped backslash", input: `'a\\b'`, want: `a\b`, ok: true},
		{name: "control escapes", input: `'a\nb\tc\r\b\f\/'`, want: "a\nb\tc\r\b\f/", ok: true},
		{name: "unicode 4", input: `'\u00e9'`, want: "é", ok: true},
		{name: "unicode braces", input: `'\u{1F600}'`, want: "😀", ok: true},
		{name: "multibyte raw", input: `'⟨日本⟩'`, want: "⟨日本⟩", ok: true},
		{name: "no quotes", input: `cat`, ok: false},
		{name: "too short", input: `'`, ok: false},
		{name: "unterminated", input: `'cat`, ok: false},
		{name: "mismatched", input: `'cat"`, ok: false},
		{name: "trailing text", input: `'a'b'`, ok: false},
		{name: "dangling escape", input: `'a\`, ok: false},
		{name: "unknown escape", input: `'\q'`, ok: false},
		{name: "bad unicode", input: `'\u{}'`, ok: false},
		{name: "short unicode", input: `'\u12'`, ok: false},
		{name: "surrogate", input: `'\uD800'`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Unquote(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`'5ef4a4c2-8c3f-4a3e-9f2a-6a1b2c3d4e5f'`, true},
		{`"5EF4A4C2-8C3F-4A3E-9F2A-6A1B2C3D4E5F"`, true},
		{`'00000000-0000-0000-0000-000000000000'`, true},
		{`'5ef4a4c28c3f4a3e9f2a6a1b2c3d4e5f'`, false},
		{`'{5ef4a4c2-8c3f-4a3e-9f2a-6a1b2c3d4e5f}'`, false},
		{`'5ef4a4c2-8c3f-4a3e-9f2a-6a1b2c3d4e5g'`, false},
		{`5ef4a4c2-8c3f-4a3e-9f2a-6a1b2c3d4e5f`, false},
		{`'hello'`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.input))
		})
	}
}

func TestIsDatetime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`'2021-01-01'`, true},
		{`'2021-01-01T00:00:00Z'`, true},
		{`"2021-01-01T00:00:00Z"`, true},
		{`'2021-01-01T10:30:15.123456789+02:00'`, true},
		{`'2021-01-01T10:30:15.5-05:30'`, true},
		{`'-2021-01-01'`, true},
		{`'+2021-01-01T00:00:00Z'`, true},
		{`'2021-13-01'`, false},
		{`'2021-02-30'`, false},
		{`'2021-01-01 00:00:00Z'`, false},
		{`'2021-01-01T00:00:00'`, false},
		{`'2021-01-01T00:00:00.Z'`, false},
		{`'2021-01-01T00:00:00.1234567890Z'`, false},
		{`'21-01-01'`, false},
		{`'yesterday'`, false},
		{`2021-01-01`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDatetime(tt.input))
		})
	}
}

func TestIsRecordID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`'person:tobie'`, true},
		{`'person:100'`, true},
		{`'person:-5'`, true},
		{`'person:⟨tobie jaime⟩'`, true},
		{`'person:⟨a\⟩b⟩'`, true},
		{"'person:`tobie`'", true},
		{"'`my table`:1'", true},
		{`'⟨my table⟩:x'`, true},
		{`'person:[1, 2]'`, true},
		{`'person:["a]", 2]'`, true},
		{`"person:{a: 1, b: [2]}"`, true},
		{`'person:rand()'`, true},
		{`'person:ulid()'`, true},
		{`'person:uuid()'`, true},
		{`'person'`, false},
		{`'person:'`, false},
		{`':tobie'`, false},
		{`'person:tobie jaime'`, false},
		{`'person:[1, 2'`, false},
		{`'person:⟨open'`, false},
		{`'person:-'`, false},
		{`'hello world'`, false},
		{`'2021-01-01T00:00:00Z'`, false},
		{`person:tobie`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecordID(tt.input))
		})
	}
}

func TestLegacyOracle(t *testing.T) {
	var o Legacy

	assert.True(t, o.LooksLikeUUID(`'5ef4a4c2-8c3f-4a3e-9f2a-6a1b2c3d4e5f'`))
	assert.True(t, o.LooksLikeDatetime(`'2021-01-01T00:00:00Z'`))
	assert.True(t, o.LooksLikeRecordID(`'person:tobie'`))

	assert.False(t, o.LooksLikeUUID(`'cat'`))
	assert.False(t, o.LooksLikeDatetime(`'cat'`))
	assert.False(t, o.LooksLikeRecordID(`'cat'`))
}
