// Package dialect provides SQL dialect configuration for the lint engine.
//
// This package contains the public contract for dialect definitions consumed
// by the splitter (keyword tagging) and the lint rules (identifier quoting,
// dialect-conditional behavior). Concrete dialect implementations are
// registered from pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/core"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// Keywords for lexical tagging (upper case).
	Keywords []string

	keywordSet map[string]bool
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// IdentifierQuoting returns the dialect's identifier quoting configuration.
func (d *Dialect) IdentifierQuoting() core.IdentifierConfig {
	return d.Identifiers
}

// IsKeyword reports whether word is a keyword in this dialect
// (case-insensitive).
func (d *Dialect) IsKeyword(word string) bool {
	return d.keywordSet[strings.ToUpper(word)]
}

// StandardKeywords is the ANSI keyword set shared by all dialects.
// Dialects extend it via Register rather than redefining it.
var StandardKeywords = []string{
	"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CREATE",
	"CROSS", "DESC", "DISTINCT", "ELSE", "END", "EXCEPT", "EXISTS", "FALSE",
	"FROM", "FULL", "GROUP", "HAVING", "IN", "INNER", "INSERT", "INTERSECT",
	"INTO", "IS", "JOIN", "LEFT", "LIKE", "LIMIT", "NATURAL", "NOT", "NULL",
	"OFFSET", "ON", "OR", "ORDER", "OUTER", "OVER", "PARTITION", "RIGHT",
	"SELECT", "SET", "TABLE", "THEN", "TRUE", "UNION", "UPDATE", "USING",
	"VALUES", "WHEN", "WHERE", "WITH",
}
