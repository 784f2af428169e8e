package rules

import (
	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func init() {
	lint.Register(TrailingWhitespace)
}

// TrailingWhitespace flags whitespace runs at the end of a line. The
// splitter tags line-final whitespace distinctly, so the check stays a pure
// function of the single chunk.
var TrailingWhitespace = lint.RuleDef{
	ID:          "LT01",
	Name:        "layout.trailing_whitespace",
	Group:       "layout",
	Description: "Unnecessary trailing whitespace.",
	Severity:    core.SeverityHint,
	New:         newTrailingWhitespace,
	Rationale: "Trailing whitespace is invisible noise: it churns diffs and " +
		"trips editors configured to strip it.",
	Fix: "Delete the whitespace before the line break.",
}

type trailingWhitespace struct{}

func newTrailingWhitespace(map[string]any) (lint.Evaluator, error) {
	return trailingWhitespace{}, nil
}

func (trailingWhitespace) Evaluate(unit any) (*lint.Violation, error) {
	c, ok := unit.(chunk.Positioned)
	if !ok || c.Tag != chunk.TagTrailingWhitespace {
		return nil, nil
	}
	return &lint.Violation{
		Message: "Unnecessary trailing whitespace.",
		Anchor:  c,
	}, nil
}
