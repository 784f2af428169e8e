// Package rules contains the built-in sqlint rules.
//
// Rules are organized by prefix to indicate their category:
//
//   - cp_*.go: Capitalisation rules (keyword and identifier casing)
//   - cv_*.go: Convention rules (style and content preferences)
//   - lt_*.go: Layout rules (whitespace and line shape)
//   - rf_*.go: References rules (identifier and reference patterns)
//
// Import this package to register all rules:
//
//	import _ "github.com/leapstack-labs/sqlint/pkg/lint/rules"
package rules
