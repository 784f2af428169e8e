// Package bigquery provides the BigQuery SQL dialect definition.
// BigQuery quotes identifiers in back ticks.
package bigquery

import (
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/dialect"
)

func init() {
	dialect.Register(BigQuery)
}

// BigQuery is the BigQuery dialect.
var BigQuery = &dialect.Dialect{
	Name: "bigquery",
	Identifiers: core.IdentifierConfig{
		Quote:    "`",
		QuoteEnd: "`",
		Escape:   "``",
	},
	Keywords: append([]string{
		"QUALIFY", "STRUCT", "UNNEST", "WINDOW",
	}, dialect.StandardKeywords...),
}
