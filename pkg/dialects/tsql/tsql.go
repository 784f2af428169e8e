// Package tsql provides the T-SQL (SQL Server) dialect definition.
// T-SQL quotes identifiers in square brackets.
package tsql

import (
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/dialect"
)

func init() {
	dialect.Register(TSQL)
}

// TSQL is the SQL Server dialect.
var TSQL = &dialect.Dialect{
	Name: "tsql",
	Identifiers: core.IdentifierConfig{
		Quote:    "[",
		QuoteEnd: "]",
		Escape:   "]]",
	},
	Keywords: append([]string{
		"TOP", "PIVOT", "UNPIVOT", "MERGE",
	}, dialect.StandardKeywords...),
}
