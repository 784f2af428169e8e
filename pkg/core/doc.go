// Package core defines the shared language of the sqlint system.
//
// This package contains:
//   - Severity levels for lint violations
//   - Source positions used to anchor violations
//   - Rule metadata DTOs (RuleInfo)
//   - Dialect identifier configuration (IdentifierConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
