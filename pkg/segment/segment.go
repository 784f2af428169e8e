// Package segment provides the hierarchical parse-tree node model and a
// functional selection API for querying it.
//
// Segments are produced by an external parser/dialect provider; this package
// only defines the node shape and read-only query primitives over it. The
// selection API is a small combinator layer: predicates compose with
// And/Or/Not, and traversal operators (Descendants, ChildrenWhere,
// NearestAncestor) return freshly constructed, restartable sequences without
// ever mutating the tree.
package segment

import "github.com/leapstack-labs/sqlint/pkg/core"

// Well-known segment names in the grammar vocabulary rules match against.
const (
	NakedIdentifier       = "naked_identifier"
	QuotedIdentifier      = "quoted_identifier"
	TableReference        = "table_reference"
	ColumnReference       = "column_reference"
	AliasExpression       = "alias_expression"
	ColumnDefinition      = "column_definition"
	WithCompoundStatement = "with_compound_statement"
	FromClause            = "from_clause"
	SelectClause          = "select_clause"
)

// Segment is a node in a hierarchical parse tree: a name, the raw text it
// covers, an optional source position, and ordered children. The tree owns
// its children; ancestor stacks handed to rules are observation-only copies.
type Segment struct {
	Name     string
	Raw      string
	Pos      core.Position
	Children []*Segment
}

// New constructs a segment with the given children.
func New(name, raw string, children ...*Segment) *Segment {
	return &Segment{Name: name, Raw: raw, Children: children}
}

// NewAt constructs a positioned segment with the given children.
func NewAt(name, raw string, pos core.Position, children ...*Segment) *Segment {
	return &Segment{Name: name, Raw: raw, Pos: pos, Children: children}
}

// Position returns the segment's source position.
func (s *Segment) Position() core.Position {
	return s.Pos
}

// Text returns the raw text the segment covers.
func (s *Segment) Text() string {
	return s.Raw
}
