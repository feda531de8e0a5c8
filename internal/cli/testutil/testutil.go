// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Result holds the captured streams of an executed command.
type Result struct {
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
	Err    error
}

// Output returns the stdout output as a string.
func (r *Result) Output() string {
	return r.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (r *Result) ErrorOutput() string {
	return r.ErrOut.String()
}

// Execute runs cmd with args, feeding stdin and capturing both output streams.
func Execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) *Result {
	t.Helper()

	res := &Result{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}
	cmd.SetOut(res.Out)
	cmd.SetErr(res.ErrOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	res.Err = cmd.Execute()
	return res
}

// SetupConfigDir creates a temporary directory holding surql.yaml with the
// given content, changes into it for the duration of the test and returns it.
func SetupConfigDir(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "surql.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write surql.yaml: %v", err)
	}
	t.Chdir(dir)
	return dir
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertContains checks that the string contains the expected substring.
func AssertContains(t *testing.T, s, expected string) {
	t.Helper()
	if !strings.Contains(s, expected) {
		t.Errorf("string %q does not contain expected %q", s, expected)
	}
}

// AssertNotContains checks that the string does not contain the substring.
func AssertNotContains(t *testing.T, s, unexpected string) {
	t.Helper()
	if strings.Contains(s, unexpected) {
		t.Errorf("string %q unexpectedly contains %q", s, unexpected)
	}
}

// AssertLines checks that s consists of exactly the expected lines.
func AssertLines(t *testing.T, s string, expected ...string) {
	t.Helper()
	got := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(got) != len(expected) {
		t.Errorf("got %d lines %q, want %d lines %q", len(got), got, len(expected), expected)
		return
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("line %d: got %q, want %q", i+1, got[i], expected[i])
		}
	}
}
