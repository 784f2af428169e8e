// Package ansi provides the ANSI SQL dialect definition.
// This is the baseline dialect: double-quoted identifiers, standard
// keyword set, no identifier exceptions.
package ansi

import (
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the baseline SQL dialect.
var ANSI = &dialect.Dialect{
	Name: "ansi",
	Identifiers: core.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},
	Keywords: dialect.StandardKeywords,
}
