// Package lint provides the rule/rule-set evaluation protocol of sqlint.
//
// # Architecture
//
// The package is built from a few small pieces:
//
//  1. Rule definitions (RuleDef): static metadata plus a factory that
//     validates configuration at construction time and returns an Evaluator.
//  2. The registry: an ordered, explicitly assembled mapping from rule ID to
//     definition, populated from init() functions in rule packages.
//  3. RuleSet: an ordered collection of configured rules evaluated against
//     flat chunks (chunk.Positioned), whole chunk strings (chunk.String), or
//     segment trees (segment.Segment).
//  4. Policy resolution and dialect identifier exceptions shared by
//     identifier-style rules.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/sqlint/pkg/lint/rules"
//
// # Ordering
//
// Evaluation is deterministic. For a chunk string the result order is
// chunk-major, rule-minor: every violation for chunk i precedes every
// violation for chunk i+1, and within one chunk violations follow the rule
// set's declared order. Tree evaluation orders by document position of the
// node first, rule order second.
//
// # Errors
//
// Malformed rule configuration fails RuleSet construction. A rule that
// errors (or panics) during evaluation is treated as having produced no
// violation for that unit; the failure is reported as an EvalError alongside
// the violations and never aborts the remaining rules or units.
package lint
