// Package main provides the sqlint command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
