package lint

import (
	"encoding/json"
	"fmt"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/segment"
)

// =============================================================================
// Dialect Interface
// =============================================================================

// DialectInfo is a minimal interface to avoid importing the full dialect
// package. Implemented by dialect.Dialect.
type DialectInfo interface {
	GetName() string
	IdentifierQuoting() core.IdentifierConfig
}

// =============================================================================
// Evaluation Context
// =============================================================================

// Context bundles a target segment with its ancestor stack and dialect
// metadata. It is constructed per evaluation by the tree traversal and never
// mutated; the parent stack is a root-first copy that observes the tree
// without owning it and never includes the target segment itself.
type Context struct {
	Segment     *segment.Segment
	ParentStack []*segment.Segment
	Dialect     DialectInfo
}

// Parent returns the immediate parent of the target segment, or nil at the
// tree root.
func (c *Context) Parent() *segment.Segment {
	if len(c.ParentStack) == 0 {
		return nil
	}
	return c.ParentStack[len(c.ParentStack)-1]
}

// DialectName returns the active dialect's name, or "" when no dialect was
// supplied.
func (c *Context) DialectName() string {
	if c.Dialect == nil {
		return ""
	}
	return c.Dialect.GetName()
}

// =============================================================================
// Violations
// =============================================================================

// Anchor is the unit a violation is attached to: a positioned chunk or a
// segment. Both expose their raw text and source position.
type Anchor interface {
	Text() string
	Position() core.Position
}

// Violation is the result record of a rule firing against a unit.
// Violations are immutable once produced and returned up the stack; rules
// never retain them.
type Violation struct {
	RuleID   string        `json:"rule_id"`
	Severity core.Severity `json:"severity"`
	Message  string        `json:"message"`
	Pos      core.Position `json:"pos"`
	Anchor   Anchor        `json:"-"`
}

// =============================================================================
// Evaluation Errors
// =============================================================================

// EvalError is a diagnostic for a rule invocation that failed on one unit.
// It is distinct from a Violation: the affected invocation is treated as
// "no violation" and evaluation of other rules and units continues.
type EvalError struct {
	RuleID string        `json:"rule_id"`
	Pos    core.Position `json:"pos"`
	Err    error         `json:"-"`
}

// MarshalJSON renders the underlying error as a plain message string.
func (e EvalError) MarshalJSON() ([]byte, error) {
	type alias struct {
		RuleID  string        `json:"rule_id"`
		Pos     core.Position `json:"pos"`
		Message string        `json:"message"`
	}
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(alias{RuleID: e.RuleID, Pos: e.Pos, Message: msg})
}

// Error implements the error interface.
func (e EvalError) Error() string {
	return fmt.Sprintf("rule %s at %s: %v", e.RuleID, e.Pos, e.Err)
}

// Unwrap returns the underlying error.
func (e EvalError) Unwrap() error {
	return e.Err
}
