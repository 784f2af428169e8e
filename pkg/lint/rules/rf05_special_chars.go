package rules

import (
	"fmt"
	"unicode"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/segment"
)

func init() {
	lint.Register(SpecialChars)
}

// SpecialChars flags identifiers containing characters other than
// alphanumerics and underscores.
var SpecialChars = lint.RuleDef{
	ID:          "RF05",
	Name:        "references.special_chars",
	Group:       "references",
	Description: "Do not use special characters in identifiers.",
	Severity:    core.SeverityWarning,
	ConfigKeys: []string{
		"unquoted_identifiers_policy",
		"quoted_identifiers_policy",
		"allow_space_in_identifier",
	},
	New: newSpecialChars,
	Rationale: "Special characters in identifiers force quoting everywhere the " +
		"object is referenced and break tooling that expects word-like names.",
	BadExample: "CREATE TABLE dbo.column_names (\n" +
		"    [Internal Space] INT,\n" +
		"    [Greater>Than] INT,\n" +
		"    Number# INT\n" +
		")",
	GoodExample: "CREATE TABLE dbo.column_names (\n" +
		"    internal_space INT,\n" +
		"    greater_than INT,\n" +
		"    number_val INT\n" +
		")",
	Fix: "Rename the object using only alphanumerics and underscores.",
}

// specialChars is the configured evaluator. Each branch of the check has
// its own policy: unquoted and quoted identifiers are distinct problems
// with distinct conventions.
type specialChars struct {
	unquotedPolicy string
	quotedPolicy   string
	allowSpace     bool
}

func newSpecialChars(opts map[string]any) (lint.Evaluator, error) {
	r := &specialChars{
		unquotedPolicy: lint.GetStringOption(opts, "unquoted_identifiers_policy", "all"),
		quotedPolicy:   lint.GetStringOption(opts, "quoted_identifiers_policy", "all"),
		allowSpace:     lint.GetBoolOption(opts, "allow_space_in_identifier", false),
	}
	if !lint.ValidIdentifierPolicy(r.unquotedPolicy) {
		return nil, fmt.Errorf("%w: unquoted_identifiers_policy %q", lint.ErrInvalidOption, r.unquotedPolicy)
	}
	if !lint.ValidIdentifierPolicy(r.quotedPolicy) {
		return nil, fmt.Errorf("%w: quoted_identifiers_policy %q", lint.ErrInvalidOption, r.quotedPolicy)
	}
	return r, nil
}

func (r *specialChars) Evaluate(unit any) (*lint.Violation, error) {
	ctx, ok := unit.(*lint.Context)
	if !ok || ctx.Segment == nil {
		return nil, nil
	}
	seg := ctx.Segment

	switch seg.Name {
	case segment.NakedIdentifier:
		if lint.IdentifierPolicyApplicable(r.unquotedPolicy, ctx.ParentStack) &&
			!alnumAfterUnderscoreStrip(seg.Raw) {
			return violationFor(seg), nil
		}

	case segment.QuotedIdentifier:
		identifier := unquote(ctx, seg.Raw)

		// Dialect conventions can legitimise characters in specific
		// ancestor contexts (BigQuery wildcard table references); those
		// are stripped before validation, never skipped past it.
		identifier = lint.ApplyIdentifierExceptions(ctx.DialectName(), identifier, ctx.Parent())

		if !lint.IdentifierPolicyApplicable(r.quotedPolicy, ctx.ParentStack) {
			return nil, nil
		}
		if alnumAfterUnderscoreStrip(identifier) {
			return nil, nil
		}
		if r.allowSpace && alnumAfterStrip(identifier, '_', ' ') {
			return nil, nil
		}
		return violationFor(seg), nil
	}

	return nil, nil
}

func violationFor(seg *segment.Segment) *lint.Violation {
	return &lint.Violation{
		Message: fmt.Sprintf("Identifier %q contains special characters.", seg.Raw),
		Anchor:  seg,
	}
}

// unquote strips the dialect's surrounding quote characters; without a
// dialect it falls back to dropping the first and last character.
func unquote(ctx *lint.Context, raw string) string {
	if ctx.Dialect != nil {
		return ctx.Dialect.IdentifierQuoting().Unquote(raw)
	}
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// alnumAfterUnderscoreStrip reports whether s, after removing underscores,
// is non-empty and entirely alphanumeric.
func alnumAfterUnderscoreStrip(s string) bool {
	return alnumAfterStrip(s, '_')
}

func alnumAfterStrip(s string, strip ...rune) bool {
	remaining := 0
	for _, r := range s {
		if stripped(r, strip) {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		remaining++
	}
	return remaining > 0
}

func stripped(r rune, strip []rune) bool {
	for _, s := range strip {
		if r == s {
			return true
		}
	}
	return false
}
