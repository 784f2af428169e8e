package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func init() {
	lint.Register(BlockedWords)
}

// BlockedWords warns about dangerous SQL keywords.
var BlockedWords = lint.RuleDef{
	ID:          "CV09",
	Name:        "convention.blocked_words",
	Group:       "convention",
	Description: "Block dangerous SQL keywords like DELETE, DROP, TRUNCATE.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{"blocked_words"},
	New:         newBlockedWords,
	Rationale: "Destructive statements rarely belong in reviewed SQL; blocking " +
		"them catches copy-paste accidents before they reach a database.",
	BadExample:  "DROP TABLE users",
	GoodExample: "SELECT id FROM users",
}

// Default blocked words
var defaultBlockedWords = []string{"DELETE", "DROP", "TRUNCATE"}

type blockedWords struct {
	blocked map[string]bool
}

func newBlockedWords(opts map[string]any) (lint.Evaluator, error) {
	words := lint.GetStringSliceOption(opts, "blocked_words", defaultBlockedWords)
	blocked := make(map[string]bool, len(words))
	for _, w := range words {
		blocked[strings.ToUpper(w)] = true
	}
	return &blockedWords{blocked: blocked}, nil
}

func (r *blockedWords) Evaluate(unit any) (*lint.Violation, error) {
	c, ok := unit.(chunk.Positioned)
	if !ok {
		return nil, nil
	}
	if c.Tag != chunk.TagKeyword && c.Tag != chunk.TagWord {
		return nil, nil
	}
	if !r.blocked[strings.ToUpper(c.Content)] {
		return nil, nil
	}
	return &lint.Violation{
		Message: fmt.Sprintf("Use of blocked word %q detected.", strings.ToUpper(c.Content)),
		Anchor:  c,
	}, nil
}
