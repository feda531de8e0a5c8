package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/clarkmcc/surrealdb/pkg/token"
)

// ErrInvalidOutput is returned for an unsupported output format.
var ErrInvalidOutput = errors.New("invalid output format")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrInvalidOutput, c.Output, OutputFormats)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := token.ParseKind(c.Kind); err != nil {
		return fmt.Errorf("invalid default kind: %w", err)
	}
	return nil
}
