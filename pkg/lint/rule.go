package lint

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlint/pkg/core"
)

// ErrInvalidOption is wrapped by construction errors for malformed rule
// configuration values.
var ErrInvalidOption = errors.New("invalid rule option")

// Evaluator is a configured rule check. Evaluate inspects one unit - a
// chunk.Positioned or a *Context - and returns at most one violation.
// Evaluation must be a pure function of the evaluator's configuration and
// the unit: no mutable state may be retained between calls. An error means
// the invocation failed on this unit; it is never a lint finding.
type Evaluator interface {
	Evaluate(unit any) (*Violation, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(unit any) (*Violation, error)

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(unit any) (*Violation, error) {
	return f(unit)
}

// RuleDef is a data-driven rule definition. The static metadata describes
// the rule; New builds a configured Evaluator from the rule's options,
// validating them eagerly so that malformed configuration surfaces before
// any evaluation begins.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "RF05"
	Name        string        // Human-readable name, e.g., "references.special_chars"
	Group       string        // Category, e.g., "references", "layout"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	ConfigKeys  []string      // Configuration keys this rule accepts
	Dialects    []string      // Restrict to specific dialects; nil/empty means all dialects

	// New constructs the evaluator from rule options, validating them.
	New func(opts map[string]any) (Evaluator, error)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// AppliesTo reports whether the rule applies to the named dialect.
// Rules with no dialect restriction apply everywhere.
func (d RuleDef) AppliesTo(dialectName string) bool {
	if len(d.Dialects) == 0 || dialectName == "" {
		return true
	}
	for _, name := range d.Dialects {
		if name == dialectName {
			return true
		}
	}
	return false
}

// Info extracts metadata from a rule definition for documentation/tooling.
func (d RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              d.ID,
		Name:            d.Name,
		Group:           d.Group,
		Description:     d.Description,
		DefaultSeverity: d.Severity,
		ConfigKeys:      d.ConfigKeys,
		Dialects:        d.Dialects,
		Rationale:       d.Rationale,
		BadExample:      d.BadExample,
		GoodExample:     d.GoodExample,
		Fix:             d.Fix,
	}
}

// Rule is a configured instance of a rule definition: immutable after
// construction and reusable across any number of evaluations.
type Rule struct {
	def      RuleDef
	severity core.Severity
	eval     Evaluator
}

// NewRule constructs a rule instance, validating opts via the definition's
// factory. severity is the effective severity after any override.
func NewRule(def RuleDef, opts map[string]any, severity core.Severity) (*Rule, error) {
	if def.New == nil {
		return nil, fmt.Errorf("rule %s: no evaluator factory", def.ID)
	}
	eval, err := def.New(opts)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", def.ID, err)
	}
	return &Rule{def: def, severity: severity, eval: eval}, nil
}

// ID returns the rule's stable code.
func (r *Rule) ID() string { return r.def.ID }

// Name returns the rule's human-readable name.
func (r *Rule) Name() string { return r.def.Name }

// Group returns the rule's category.
func (r *Rule) Group() string { return r.def.Group }

// Severity returns the rule's effective severity.
func (r *Rule) Severity() core.Severity { return r.severity }

// Def returns the underlying definition.
func (r *Rule) Def() RuleDef { return r.def }

// Evaluate runs the configured check against one unit, stamping the rule's
// code and effective severity onto any violation produced.
func (r *Rule) Evaluate(unit any) (*Violation, error) {
	v, err := r.eval.Evaluate(unit)
	if err != nil || v == nil {
		return nil, err
	}
	v.RuleID = r.def.ID
	v.Severity = r.severity
	if !v.Pos.Valid() && v.Anchor != nil {
		v.Pos = v.Anchor.Position()
	}
	return v, nil
}
