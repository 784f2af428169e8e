package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/rules"
)

func TestCP01_KeywordCapitalisation(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		c        chunk.Positioned
		wantDiag bool
		message  string
	}{
		{
			name:     "lowercase keyword under upper policy",
			policy:   "upper",
			c:        chunk.New("select", 1, 1, chunk.TagKeyword),
			wantDiag: true,
			message:  `Keyword "select" should be "SELECT".`,
		},
		{
			name:   "uppercase keyword under upper policy",
			policy: "upper",
			c:      chunk.New("SELECT", 1, 1, chunk.TagKeyword),
		},
		{
			name:     "mixed case under upper policy",
			policy:   "upper",
			c:        chunk.New("From", 2, 1, chunk.TagKeyword),
			wantDiag: true,
			message:  `Keyword "From" should be "FROM".`,
		},
		{
			name:     "uppercase keyword under lower policy",
			policy:   "lower",
			c:        chunk.New("SELECT", 1, 1, chunk.TagKeyword),
			wantDiag: true,
			message:  `Keyword "SELECT" should be "select".`,
		},
		{
			name:   "non-keyword word ignored",
			policy: "upper",
			c:      chunk.New("users", 1, 8, chunk.TagWord),
		},
		{
			name:   "string literal ignored",
			policy: "upper",
			c:      chunk.New("'select'", 1, 8, chunk.TagString),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := lint.NewRule(rules.KeywordCapitalisation,
				map[string]any{"capitalisation_policy": tt.policy}, core.SeverityHint)
			require.NoError(t, err)

			v, err := rule.Evaluate(tt.c)
			require.NoError(t, err)
			if tt.wantDiag {
				require.NotNil(t, v)
				assert.Equal(t, "CP01", v.RuleID)
				assert.Equal(t, tt.message, v.Message)
				assert.Equal(t, tt.c.Position(), v.Pos)
			} else {
				assert.Nil(t, v)
			}
		})
	}
}

func TestCP01_InvalidPolicy(t *testing.T) {
	_, err := lint.NewRule(rules.KeywordCapitalisation,
		map[string]any{"capitalisation_policy": "title"}, core.SeverityHint)
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrInvalidOption)
}

func TestLT01_TrailingWhitespace(t *testing.T) {
	rule, err := lint.NewRule(rules.TrailingWhitespace, nil, core.SeverityHint)
	require.NoError(t, err)

	t.Run("trailing whitespace flagged", func(t *testing.T) {
		v, err := rule.Evaluate(chunk.New("  ", 1, 10, chunk.TagTrailingWhitespace))
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "LT01", v.RuleID)
		assert.Equal(t, core.Position{Line: 1, Col: 10}, v.Pos)
	})

	t.Run("interior whitespace ignored", func(t *testing.T) {
		v, err := rule.Evaluate(chunk.New(" ", 1, 7, chunk.TagWhitespace))
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestCV09_BlockedWords(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		rule, err := lint.NewRule(rules.BlockedWords, nil, core.SeverityWarning)
		require.NoError(t, err)

		v, err := rule.Evaluate(chunk.New("DROP", 1, 1, chunk.TagKeyword))
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Contains(t, v.Message, `"DROP"`)

		// Case-insensitive match.
		v, err = rule.Evaluate(chunk.New("truncate", 1, 1, chunk.TagWord))
		require.NoError(t, err)
		assert.NotNil(t, v)

		v, err = rule.Evaluate(chunk.New("SELECT", 1, 1, chunk.TagKeyword))
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("custom word list replaces defaults", func(t *testing.T) {
		rule, err := lint.NewRule(rules.BlockedWords,
			map[string]any{"blocked_words": []string{"merge"}}, core.SeverityWarning)
		require.NoError(t, err)

		v, err := rule.Evaluate(chunk.New("MERGE", 1, 1, chunk.TagWord))
		require.NoError(t, err)
		assert.NotNil(t, v)

		v, err = rule.Evaluate(chunk.New("DROP", 1, 1, chunk.TagKeyword))
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("strings and comments ignored", func(t *testing.T) {
		rule, err := lint.NewRule(rules.BlockedWords, nil, core.SeverityWarning)
		require.NoError(t, err)

		v, err := rule.Evaluate(chunk.New("'DROP'", 1, 1, chunk.TagString))
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = rule.Evaluate(chunk.New("-- DROP", 1, 1, chunk.TagComment))
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
