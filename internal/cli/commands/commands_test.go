package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/config"
	"github.com/leapstack-labs/sqlint/internal/testutil"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/dialect"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"format", "disable", "rule", "severity", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"group", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestBuildLintConfig(t *testing.T) {
	base := &config.Config{}

	t.Run("empty options", func(t *testing.T) {
		cfg, err := buildLintConfig(base, &LintOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("CP01"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg, err := buildLintConfig(base, &LintOptions{Disable: []string{"CP01", " CV09 "}})
		require.NoError(t, err)
		assert.True(t, cfg.IsDisabled("CP01"))
		assert.True(t, cfg.IsDisabled("CV09"))
		assert.False(t, cfg.IsDisabled("RF05"))
	})

	t.Run("rule allowlist disables the rest", func(t *testing.T) {
		cfg, err := buildLintConfig(base, &LintOptions{Rules: []string{"RF05"}})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("RF05"))
		assert.True(t, cfg.IsDisabled("CP01"))
		assert.True(t, cfg.IsDisabled("CV09"))
	})

	t.Run("file config carried through", func(t *testing.T) {
		fileCfg := &config.Config{
			Severity: map[string]string{"CP01": "error"},
		}
		cfg, err := buildLintConfig(fileCfg, &LintOptions{})
		require.NoError(t, err)
		assert.Equal(t, core.SeverityError, cfg.GetSeverity("CP01", core.SeverityHint))
	})

	t.Run("invalid severity rejected", func(t *testing.T) {
		fileCfg := &config.Config{
			Severity: map[string]string{"CP01": "fatal"},
		}
		_, err := buildLintConfig(fileCfg, &LintOptions{})
		require.Error(t, err)
	})
}

func TestLintOnce(t *testing.T) {
	// Route the run's progress logs through the test output.
	prev := slog.Default()
	slog.SetDefault(testutil.NewTestLogger(t))
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1  \n"), 0o600))

	d, ok := dialect.Get("ansi")
	require.True(t, ok)
	ruleSet, err := lint.NewRuleSetForDialect(lint.NewConfig(), d.Name)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	r := output.NewRenderer(&out, &errOut, output.ModeText)

	total, err := lintOnce(r, ruleSet, d, []string{dir}, core.SeverityHint)
	require.NoError(t, err)
	// Lower-case keyword plus trailing whitespace.
	assert.GreaterOrEqual(t, total, 2)
	assert.Contains(t, out.String(), "CP01")
	assert.Contains(t, out.String(), "LT01")

	t.Run("threshold filters rendered violations", func(t *testing.T) {
		var out2 bytes.Buffer
		r2 := output.NewRenderer(&out2, &errOut, output.ModeText)
		total2, err := lintOnce(r2, ruleSet, d, []string{dir}, core.SeverityError)
		require.NoError(t, err)
		assert.Zero(t, total2)
	})
}

func TestCollectSQLFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	write := func(path string) {
		require.NoError(t, os.WriteFile(path, []byte("SELECT 1\n"), 0o600))
	}
	write(filepath.Join(dir, "b.sql"))
	write(filepath.Join(dir, "a.sql"))
	write(filepath.Join(dir, "notes.txt"))
	write(filepath.Join(sub, "c.SQL"))

	t.Run("directory walk", func(t *testing.T) {
		files, err := collectSQLFiles([]string{dir})
		require.NoError(t, err)
		require.Len(t, files, 3)
		// Sorted, recursive, extension case-insensitive, non-SQL skipped.
		assert.Equal(t, filepath.Join(dir, "a.sql"), files[0])
		assert.Equal(t, filepath.Join(dir, "b.sql"), files[1])
		assert.Equal(t, filepath.Join(sub, "c.SQL"), files[2])
	})

	t.Run("explicit file plus directory deduplicates", func(t *testing.T) {
		files, err := collectSQLFiles([]string{filepath.Join(dir, "a.sql"), dir})
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := collectSQLFiles([]string{filepath.Join(dir, "missing.sql")})
		require.Error(t, err)
	})
}

func TestFilterBySeverity(t *testing.T) {
	violations := []lint.Violation{
		{RuleID: "A", Severity: core.SeverityError},
		{RuleID: "B", Severity: core.SeverityWarning},
		{RuleID: "C", Severity: core.SeverityHint},
	}

	kept := filterBySeverity(violations, core.SeverityWarning)
	require.Len(t, kept, 2)
	assert.Equal(t, "A", kept[0].RuleID)
	assert.Equal(t, "B", kept[1].RuleID)

	assert.Len(t, filterBySeverity(violations, core.SeverityHint), 3)
	assert.Len(t, filterBySeverity(violations, core.SeverityError), 1)
}

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(file, []byte("SELECT 1\n"), 0o600))

	dirs := watchDirs([]string{dir, file})
	assert.Equal(t, []string{dir}, dirs)
}
