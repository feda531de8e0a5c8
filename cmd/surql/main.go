// Package main provides the surql command, a literal renderer for SurrealQL.
package main

import (
	"os"

	"github.com/clarkmcc/surrealdb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
