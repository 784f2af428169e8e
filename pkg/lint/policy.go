package lint

import (
	"github.com/leapstack-labs/sqlint/pkg/segment"
)

// IdentifierPolicies are the accepted values for the
// *_identifiers_policy rule options.
var IdentifierPolicies = []string{
	"all",
	"none",
	"aliases",
	"column_aliases",
	"table_aliases",
}

// ValidIdentifierPolicy reports whether policy is a known policy keyword.
// Rule constructors use it to reject malformed configuration.
func ValidIdentifierPolicy(policy string) bool {
	for _, p := range IdentifierPolicies {
		if policy == p {
			return true
		}
	}
	return false
}

// aliasShape matches the ancestor shapes that make an identifier an alias
// occurrence: an explicit alias expression, a column definition, or a CTE
// name in a WITH statement.
var aliasShape = segment.NameIs(
	segment.AliasExpression,
	segment.ColumnDefinition,
	segment.WithCompoundStatement,
)

// IdentifierPolicyApplicable resolves a configured policy keyword against a
// root-first ancestor stack and decides whether the identifier occurrence is
// in scope for checking. It is a pure function of its arguments:
//
//   - "all" is always in scope, "none" never.
//   - "aliases" is in scope when the immediate parent is an alias shape.
//   - "column_aliases" restricts that to aliases outside a FROM clause;
//     "table_aliases" to aliases inside one.
//
// Unknown policies resolve to false; validity is enforced at rule
// construction, not here.
func IdentifierPolicyApplicable(policy string, parents []*segment.Segment) bool {
	switch policy {
	case "all":
		return true
	case "none":
		return false
	}

	isAlias := len(parents) > 0 && aliasShape(parents[len(parents)-1])
	isInsideFrom := segment.Segments(parents).Any(segment.NameIs(segment.FromClause))

	switch policy {
	case "aliases":
		return isAlias
	case "column_aliases":
		return isAlias && !isInsideFrom
	case "table_aliases":
		return isAlias && isInsideFrom
	}
	return false
}
