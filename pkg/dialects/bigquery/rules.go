// Identifier lint exceptions specific to BigQuery.
package bigquery

import (
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/segment"
)

func init() {
	lint.RegisterIdentifierException(TableWildcard)
}

// TableWildcard exempts BigQuery table references from the special-character
// identifier check for the pieces BigQuery legitimately allows there:
// back-ticked table references may contain dots (`project.dataset.table`)
// and a trailing star for wildcard tables
// (https://cloud.google.com/bigquery/docs/querying-wildcard-tables).
// Both are stripped before validation. The exception applies only when the
// nearest ancestor is a table reference; the same raw text anywhere else is
// validated unmodified.
var TableWildcard = lint.IdentifierException{
	Dialect:  "bigquery",
	Ancestor: segment.NameIs(segment.TableReference),
	Rewrite:  stripWildcardTableParts,
}

func stripWildcardTableParts(identifier string) string {
	identifier = strings.TrimSuffix(identifier, "*")
	return strings.ReplaceAll(identifier, ".", "")
}
