// Package config provides configuration management for the surql CLI.
package config

// Defaults.
const (
	DefaultOutput = "text"
	DefaultKind   = "string"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// OutputFormats lists the accepted output formats.
var OutputFormats = []string{OutputText, OutputJSON, OutputTable}

// Config holds all CLI configuration options.
type Config struct {
	Compat  bool   `koanf:"compat"`
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
	Workers int    `koanf:"workers"`
	Kind    string `koanf:"kind"`
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Kind:   DefaultKind,
	}
}
