package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func init() {
	lint.Register(KeywordCapitalisation)
}

// KeywordCapitalisation enforces a consistent casing for SQL keywords.
var KeywordCapitalisation = lint.RuleDef{
	ID:          "CP01",
	Name:        "capitalisation.keywords",
	Group:       "capitalisation",
	Description: "Inconsistent capitalisation of keywords.",
	Severity:    core.SeverityHint,
	ConfigKeys:  []string{"capitalisation_policy"},
	New:         newKeywordCapitalisation,
	Rationale: "Mixed keyword casing makes SQL harder to scan; a single " +
		"convention keeps diffs quiet and queries readable.",
	BadExample:  "select id From users",
	GoodExample: "SELECT id FROM users",
}

type keywordCapitalisation struct {
	policy string
}

func newKeywordCapitalisation(opts map[string]any) (lint.Evaluator, error) {
	policy := lint.GetStringOption(opts, "capitalisation_policy", "upper")
	if policy != "upper" && policy != "lower" {
		return nil, fmt.Errorf("%w: capitalisation_policy %q", lint.ErrInvalidOption, policy)
	}
	return &keywordCapitalisation{policy: policy}, nil
}

func (r *keywordCapitalisation) Evaluate(unit any) (*lint.Violation, error) {
	c, ok := unit.(chunk.Positioned)
	if !ok || c.Tag != chunk.TagKeyword {
		return nil, nil
	}

	var want string
	switch r.policy {
	case "upper":
		want = strings.ToUpper(c.Content)
	case "lower":
		want = strings.ToLower(c.Content)
	}
	if c.Content == want {
		return nil, nil
	}
	return &lint.Violation{
		Message: fmt.Sprintf("Keyword %q should be %q.", c.Content, want),
		Anchor:  c,
	}, nil
}
