package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/segment"
)

// fireOnTag returns a definition whose evaluator flags every chunk with the
// given tag.
func fireOnTag(id, tag string) lint.RuleDef {
	return lint.RuleDef{
		ID:       id,
		Name:     "test." + id,
		Group:    "test",
		Severity: core.SeverityWarning,
		New: func(map[string]any) (lint.Evaluator, error) {
			return lint.EvaluatorFunc(func(unit any) (*lint.Violation, error) {
				c, ok := unit.(chunk.Positioned)
				if !ok || c.Tag != tag {
					return nil, nil
				}
				return &lint.Violation{Message: "flagged " + c.Content, Anchor: c}, nil
			}), nil
		},
	}
}

func TestRegistry(t *testing.T) {
	t.Cleanup(lint.Clear)
	lint.Clear()

	lint.Register(fireOnTag("T02", chunk.TagWord))
	lint.Register(fireOnTag("T01", chunk.TagKeyword))
	lint.Register(lint.RuleDef{
		ID: "T03", Group: "other", Dialects: []string{"bigquery"},
		New: func(map[string]any) (lint.Evaluator, error) {
			return lint.EvaluatorFunc(func(any) (*lint.Violation, error) { return nil, nil }), nil
		},
	})

	t.Run("registration order", func(t *testing.T) {
		defs := lint.All()
		require.Len(t, defs, 3)
		assert.Equal(t, "T02", defs[0].ID)
		assert.Equal(t, "T01", defs[1].ID)
		assert.Equal(t, "T03", defs[2].ID)
		assert.Equal(t, 3, lint.Count())
	})

	t.Run("re-register keeps position", func(t *testing.T) {
		updated := fireOnTag("T02", chunk.TagNumber)
		updated.Description = "updated"
		lint.Register(updated)

		defs := lint.All()
		require.Len(t, defs, 3)
		assert.Equal(t, "T02", defs[0].ID)
		assert.Equal(t, "updated", defs[0].Description)
	})

	t.Run("get", func(t *testing.T) {
		def, ok := lint.Get("T01")
		require.True(t, ok)
		assert.Equal(t, "test.T01", def.Name)

		_, ok = lint.Get("missing")
		assert.False(t, ok)
	})

	t.Run("by group", func(t *testing.T) {
		assert.Len(t, lint.ByGroup("test"), 2)
		assert.Len(t, lint.ByGroup("other"), 1)
		assert.Empty(t, lint.ByGroup("missing"))
	})

	t.Run("by dialect", func(t *testing.T) {
		// Unrestricted rules apply everywhere; T03 only to bigquery.
		assert.Len(t, lint.ByDialect("ansi"), 2)
		assert.Len(t, lint.ByDialect("bigquery"), 3)
	})
}

func TestNewRule_ConstructionError(t *testing.T) {
	def := lint.RuleDef{
		ID: "T10",
		New: func(opts map[string]any) (lint.Evaluator, error) {
			if _, ok := opts["bad"]; ok {
				return nil, lint.ErrInvalidOption
			}
			return lint.EvaluatorFunc(func(any) (*lint.Violation, error) { return nil, nil }), nil
		},
	}

	_, err := lint.NewRule(def, map[string]any{"bad": true}, core.SeverityWarning)
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrInvalidOption)
	assert.Contains(t, err.Error(), "T10")

	rule, err := lint.NewRule(def, nil, core.SeverityError)
	require.NoError(t, err)
	assert.Equal(t, "T10", rule.ID())
	assert.Equal(t, core.SeverityError, rule.Severity())
}

func TestRule_StampsViolation(t *testing.T) {
	rule, err := lint.NewRule(fireOnTag("T20", chunk.TagKeyword), nil, core.SeverityInfo)
	require.NoError(t, err)

	v, err := rule.Evaluate(chunk.New("SELECT", 2, 7, chunk.TagKeyword))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "T20", v.RuleID)
	assert.Equal(t, core.SeverityInfo, v.Severity)
	// Position filled from the anchor when the evaluator left it unset.
	assert.Equal(t, core.Position{Line: 2, Col: 7}, v.Pos)
}

func newRuleSet(t *testing.T, cfg *lint.Config, defs ...lint.RuleDef) *lint.RuleSet {
	t.Helper()
	rs, err := lint.NewRuleSet(defs, cfg)
	require.NoError(t, err)
	return rs
}

func TestRuleSet_Evaluate(t *testing.T) {
	kw := chunk.New("SELECT", 1, 1, chunk.TagKeyword)

	t.Run("non-nil empty result", func(t *testing.T) {
		rs := newRuleSet(t, lint.NewConfig(), fireOnTag("T30", chunk.TagNumber))
		violations, errs := rs.Evaluate(kw)
		assert.NotNil(t, violations)
		assert.Empty(t, violations)
		assert.Empty(t, errs)
	})

	t.Run("declared order on same unit", func(t *testing.T) {
		rs := newRuleSet(t, lint.NewConfig(),
			fireOnTag("T32", chunk.TagKeyword),
			fireOnTag("T31", chunk.TagKeyword),
		)
		violations, _ := rs.Evaluate(kw)
		require.Len(t, violations, 2)
		assert.Equal(t, "T32", violations[0].RuleID)
		assert.Equal(t, "T31", violations[1].RuleID)
	})

	t.Run("disabled rules skipped", func(t *testing.T) {
		cfg := lint.NewConfig().Disable("T31")
		rs := newRuleSet(t, cfg,
			fireOnTag("T31", chunk.TagKeyword),
			fireOnTag("T32", chunk.TagKeyword),
		)
		assert.Equal(t, 1, rs.Len())
		violations, _ := rs.Evaluate(kw)
		require.Len(t, violations, 1)
		assert.Equal(t, "T32", violations[0].RuleID)
	})

	t.Run("severity override", func(t *testing.T) {
		cfg := lint.NewConfig().SetSeverity("T31", core.SeverityError)
		rs := newRuleSet(t, cfg, fireOnTag("T31", chunk.TagKeyword))
		violations, _ := rs.Evaluate(kw)
		require.Len(t, violations, 1)
		assert.Equal(t, core.SeverityError, violations[0].Severity)
	})

	t.Run("construction error aborts", func(t *testing.T) {
		broken := lint.RuleDef{
			ID: "T39",
			New: func(map[string]any) (lint.Evaluator, error) {
				return nil, lint.ErrInvalidOption
			},
		}
		_, err := lint.NewRuleSet([]lint.RuleDef{fireOnTag("T31", chunk.TagKeyword), broken}, lint.NewConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "T39")
	})
}

func TestRuleSet_ErrorIsolation(t *testing.T) {
	boom := errors.New("boom")
	failing := lint.RuleDef{
		ID: "T40", Severity: core.SeverityWarning,
		New: func(map[string]any) (lint.Evaluator, error) {
			return lint.EvaluatorFunc(func(any) (*lint.Violation, error) {
				return nil, boom
			}), nil
		},
	}
	panicking := lint.RuleDef{
		ID: "T41", Severity: core.SeverityWarning,
		New: func(map[string]any) (lint.Evaluator, error) {
			return lint.EvaluatorFunc(func(any) (*lint.Violation, error) {
				panic("unexpected state")
			}), nil
		},
	}

	rs := newRuleSet(t, lint.NewConfig(), failing, panicking, fireOnTag("T42", chunk.TagKeyword))
	violations, errs := rs.Evaluate(chunk.New("SELECT", 1, 1, chunk.TagKeyword))

	// Failures surface as diagnostics; the healthy rule still ran.
	require.Len(t, violations, 1)
	assert.Equal(t, "T42", violations[0].RuleID)

	require.Len(t, errs, 2)
	assert.Equal(t, "T40", errs[0].RuleID)
	assert.ErrorIs(t, errs[0], boom)
	assert.Equal(t, "T41", errs[1].RuleID)
	assert.Contains(t, errs[1].Error(), "unexpected state")
	assert.Equal(t, core.Position{Line: 1, Col: 1}, errs[0].Pos)
}

func TestRuleSet_EvaluateChunkString(t *testing.T) {
	cs := chunk.NewString(
		chunk.New("SELECT", 1, 1, chunk.TagKeyword),
		chunk.New(" ", 1, 7, chunk.TagWhitespace),
		chunk.New("FROM", 1, 8, chunk.TagKeyword),
	)
	defA := fireOnTag("TA", chunk.TagKeyword)
	defB := fireOnTag("TB", chunk.TagKeyword)

	rs := newRuleSet(t, lint.NewConfig(), defA, defB)
	violations, errs := rs.EvaluateChunkString(cs)
	require.Empty(t, errs)
	require.Len(t, violations, 4)

	// Chunk-major, rule-minor: both rules on SELECT before either on FROM.
	got := make([][2]string, 0, len(violations))
	for _, v := range violations {
		got = append(got, [2]string{v.RuleID, v.Anchor.Text()})
	}
	assert.Equal(t, [][2]string{
		{"TA", "SELECT"}, {"TB", "SELECT"},
		{"TA", "FROM"}, {"TB", "FROM"},
	}, got)

	// Reordering the declarations reorders only the tie-break, never the
	// chunk-major grouping.
	rs = newRuleSet(t, lint.NewConfig(), defB, defA)
	violations, _ = rs.EvaluateChunkString(cs)
	require.Len(t, violations, 4)
	assert.Equal(t, "TB", violations[0].RuleID)
	assert.Equal(t, "SELECT", violations[1].Anchor.Text())
	assert.Equal(t, "FROM", violations[2].Anchor.Text())
}

// namedSegmentRule flags every segment with the given name and records the
// parent stack it observed.
func namedSegmentRule(id, name string, stacks map[string][]string) lint.RuleDef {
	return lint.RuleDef{
		ID: id, Severity: core.SeverityWarning,
		New: func(map[string]any) (lint.Evaluator, error) {
			return lint.EvaluatorFunc(func(unit any) (*lint.Violation, error) {
				ctx, ok := unit.(*lint.Context)
				if !ok {
					return nil, nil
				}
				if stacks != nil {
					names := make([]string, 0, len(ctx.ParentStack))
					for _, p := range ctx.ParentStack {
						names = append(names, p.Name)
					}
					stacks[ctx.Segment.Name] = names
				}
				if ctx.Segment.Name != name {
					return nil, nil
				}
				return &lint.Violation{Message: "flagged", Anchor: ctx.Segment}, nil
			}), nil
		},
	}
}

func TestRuleSet_EvaluateTree(t *testing.T) {
	root := segment.New("select_statement", "SELECT a FROM b",
		segment.New(segment.SelectClause, "SELECT a",
			segment.New(segment.NakedIdentifier, "a"),
		),
		segment.New(segment.FromClause, "FROM b",
			segment.New(segment.NakedIdentifier, "b"),
		),
	)

	stacks := make(map[string][]string)
	rs := newRuleSet(t, lint.NewConfig(), namedSegmentRule("T50", segment.NakedIdentifier, stacks))

	violations, errs := rs.EvaluateTree(root, nil)
	require.Empty(t, errs)
	require.Len(t, violations, 2)
	assert.Equal(t, "a", violations[0].Anchor.Text())
	assert.Equal(t, "b", violations[1].Anchor.Text())

	// Parent stacks are root-first and exclude the target.
	assert.Equal(t, []string{}, stacks["select_statement"])
	assert.Equal(t, []string{"select_statement"}, stacks[segment.SelectClause])
	assert.Equal(t, []string{"select_statement", segment.FromClause}, stacks[segment.NakedIdentifier])
}

func TestRuleSet_EvaluateTree_CycleGuard(t *testing.T) {
	a := segment.New("a", "a")
	b := segment.New("b", "b")
	a.Children = []*segment.Segment{b}
	b.Children = []*segment.Segment{a}

	rs := newRuleSet(t, lint.NewConfig(), namedSegmentRule("T51", "a", nil))
	violations, errs := rs.EvaluateTree(a, nil)
	require.Empty(t, errs)
	assert.Len(t, violations, 1)
}

func TestContext_Parent(t *testing.T) {
	stmt := segment.New("select_statement", "")
	fromClause := segment.New(segment.FromClause, "")

	ctx := &lint.Context{
		Segment:     segment.New(segment.NakedIdentifier, "t"),
		ParentStack: []*segment.Segment{stmt, fromClause},
	}
	assert.Same(t, fromClause, ctx.Parent())

	root := &lint.Context{Segment: stmt}
	assert.Nil(t, root.Parent())
}

func TestRuleSet_EvaluateTree_NilRoot(t *testing.T) {
	rs := newRuleSet(t, lint.NewConfig(), namedSegmentRule("T52", "a", nil))
	violations, errs := rs.EvaluateTree(nil, nil)
	assert.NotNil(t, violations)
	assert.Empty(t, violations)
	assert.Empty(t, errs)
}
