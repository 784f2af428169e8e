package lint

import (
	"fmt"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/segment"
)

// RuleSet is an ordered collection of configured rules. The declared order
// is the tie-break order for violations on the same unit and never changes
// after construction.
type RuleSet struct {
	rules []*Rule
}

// NewRuleSet builds a rule set from definitions in the given order,
// applying config: disabled rules are skipped, severities overridden, and
// each rule constructed with its configured options. Malformed options fail
// construction with the offending rule's ID.
func NewRuleSet(defs []RuleDef, cfg *Config) (*RuleSet, error) {
	rules := make([]*Rule, 0, len(defs))
	for _, def := range defs {
		if cfg.IsDisabled(def.ID) {
			continue
		}
		severity := cfg.GetSeverity(def.ID, def.Severity)
		rule, err := NewRule(def, cfg.GetRuleOptions(def.ID), severity)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return &RuleSet{rules: rules}, nil
}

// NewRuleSetForDialect builds a rule set from all registered definitions
// applicable to the named dialect, in registration order.
func NewRuleSetForDialect(cfg *Config, dialectName string) (*RuleSet, error) {
	return NewRuleSet(ByDialect(dialectName), cfg)
}

// Rules returns the configured rules in declared order.
func (rs *RuleSet) Rules() []*Rule {
	out := make([]*Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Evaluate applies every rule in declared order to one unit (a
// chunk.Positioned or a *Context) and returns the violations in rule order.
// The returned slice is non-nil even when empty. A rule failure is isolated:
// it yields an EvalError and the remaining rules still run.
func (rs *RuleSet) Evaluate(unit any) ([]Violation, []EvalError) {
	violations := make([]Violation, 0, len(rs.rules))
	var errs []EvalError
	for _, rule := range rs.rules {
		v, err := runRule(rule, unit)
		if err != nil {
			errs = append(errs, EvalError{RuleID: rule.ID(), Pos: unitPos(unit), Err: err})
			continue
		}
		if v != nil {
			violations = append(violations, *v)
		}
	}
	return violations, errs
}

// EvaluateChunkString applies Evaluate to each chunk in sequence order and
// concatenates the results unit by unit: all violations for chunk i precede
// any for chunk i+1, and within a chunk the declared rule order holds.
func (rs *RuleSet) EvaluateChunkString(cs chunk.String) ([]Violation, []EvalError) {
	violations := make([]Violation, 0)
	var errs []EvalError
	for i := 0; i < cs.Len(); i++ {
		vs, es := rs.Evaluate(cs.At(i))
		violations = append(violations, vs...)
		errs = append(errs, es...)
	}
	return violations, errs
}

// EvaluateTree walks the segment tree depth-first in document order,
// constructing a fresh Context per node (root-first ancestor stack, target
// excluded) and applying Evaluate to it. Results are ordered node-major,
// rule-minor. Traversal is cycle-guarded: revisited nodes are skipped.
func (rs *RuleSet) EvaluateTree(root *segment.Segment, d DialectInfo) ([]Violation, []EvalError) {
	violations := make([]Violation, 0)
	var errs []EvalError
	if root == nil {
		return violations, errs
	}

	seen := make(map[*segment.Segment]bool)
	var stack []*segment.Segment

	var walk func(node *segment.Segment)
	walk = func(node *segment.Segment) {
		if node == nil || seen[node] {
			return
		}
		seen[node] = true

		parents := make([]*segment.Segment, len(stack))
		copy(parents, stack)
		ctx := &Context{Segment: node, ParentStack: parents, Dialect: d}

		vs, es := rs.Evaluate(ctx)
		violations = append(violations, vs...)
		errs = append(errs, es...)

		stack = append(stack, node)
		for _, child := range node.Children {
			walk(child)
		}
		stack = stack[:len(stack)-1]
	}
	walk(root)

	return violations, errs
}

// runRule invokes one rule on one unit, converting a panic into an error so
// that no rule can abort evaluation of the remaining rules or units.
func runRule(rule *Rule, unit any) (v *Violation, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v, err = nil, fmt.Errorf("rule panicked: %v", rec)
		}
	}()
	return rule.Evaluate(unit)
}

func unitPos(unit any) core.Position {
	switch u := unit.(type) {
	case chunk.Positioned:
		return u.Position()
	case *Context:
		if u != nil && u.Segment != nil {
			return u.Segment.Position()
		}
	}
	return core.Position{}
}
