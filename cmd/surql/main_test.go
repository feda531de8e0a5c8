// Package main provides tests for the surql CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clarkmcc/surrealdb/internal/cli"
	"github.com/clarkmcc/surrealdb/internal/cli/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := run(t, "", "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "surql v") {
		t.Errorf("version output should contain 'surql v', got: %s", output)
	}
}

func TestLiteralCommands(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"quote", "it's"}, "\"it's\"\n"},
		{[]string{"ident", "123"}, "`123`\n"},
		{[]string{"key", "a-b"}, "\"a-b\"\n"},
		{[]string{"rid", "a⟩b"}, "⟨a\\⟩b⟩\n"},
		{[]string{"thing", "x"}, "x\n"},
		{[]string{"strand", "hello"}, "'hello'\n"},
		{[]string{"--compat", "plain", "2021-01-01T10:00:00Z"}, "s'2021-01-01T10:00:00Z'\n"},
		{[]string{"plain", "2021-01-01T10:00:00Z"}, "'2021-01-01T10:00:00Z'\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			output, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("command error = %v", err)
			}
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestRenderFromStdin(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := run(t, "a b\n1\n", "render", "--kind", "ident")
	if err != nil {
		t.Fatalf("render command error = %v", err)
	}
	if output != "`a b`\n`1`\n" {
		t.Errorf("output = %q", output)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "surql.yaml"), []byte("compat: true\noutput: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	output, err := run(t, "", "plain", "person:tobie")
	if err != nil {
		t.Fatalf("plain command error = %v", err)
	}
	if !strings.Contains(output, `"output": "s'person:tobie'"`) {
		t.Errorf("expected JSON output with prefixed strand, got: %s", output)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "", "-o", "xml", "quote", "x")
	if err == nil {
		t.Error("expected error for invalid output format")
	}
}
