package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/chunker"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/config"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/dialect"
	_ "github.com/leapstack-labs/sqlint/pkg/dialects/ansi"     // register dialects
	_ "github.com/leapstack-labs/sqlint/pkg/dialects/bigquery" // register dialects
	_ "github.com/leapstack-labs/sqlint/pkg/dialects/tsql"     // register dialects
	"github.com/leapstack-labs/sqlint/pkg/lint"
	_ "github.com/leapstack-labs/sqlint/pkg/lint/rules" // register rules
)

// ErrIssuesFound signals a clean run that found lint issues; the root
// command maps it to exit code 1 without printing an error.
var ErrIssuesFound = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories
	Format   string   // Output format: text, json
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Severity string   // Minimum severity: error, warning, info, hint
	Watch    bool     // Re-lint on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Run lint rules on SQL files",
		Long: `Analyze SQL files for potential issues.

Runs the configured lint rules against each SQL file and reports any
violations found. Rules can be configured in sqlint.yaml.`,
		Example: `  # Lint the configured paths
  sqlint lint

  # Lint specific files or directories
  sqlint lint queries/ reports/summary.sql

  # Output as JSON
  sqlint lint --format json

  # Disable specific rules
  sqlint lint --disable CP01,CV09

  # Only report errors (ignore warnings/hints)
  sqlint lint --severity error

  # Re-lint whenever a file changes
  sqlint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint on file changes")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}

	if cfg.Dialect == "" {
		return dialect.ErrDialectRequired
	}
	d, ok := dialect.Get(cfg.Dialect)
	if !ok {
		return fmt.Errorf("unknown dialect %q (known: %s)", cfg.Dialect, strings.Join(dialect.List(), ", "))
	}

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q (expected one of: error, warning, info, hint)", opts.Severity)
	}

	ruleSet, err := lint.NewRuleSetForDialect(lintCfg, d.Name)
	if err != nil {
		return err
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = cfg.Paths
	}

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))

	if opts.Watch {
		return watchAndLint(cmd, r, ruleSet, d, paths, threshold)
	}

	total, err := lintOnce(r, ruleSet, d, paths, threshold)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrIssuesFound
	}
	return nil
}

// lintOnce lints every SQL file under paths and renders the results.
// Returns the number of violations rendered.
func lintOnce(r *output.Renderer, ruleSet *lint.RuleSet, d *dialect.Dialect, paths []string, threshold core.Severity) (int, error) {
	files, err := collectSQLFiles(paths)
	if err != nil {
		return 0, err
	}
	slog.Debug("linting", "files", len(files), "rules", ruleSet.Len(), "dialect", d.Name)

	splitter := chunker.New(d)

	results := make([]output.FileResult, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		violations, evalErrs := ruleSet.EvaluateChunkString(splitter.Split(string(data)))
		results = append(results, output.FileResult{
			Path:       path,
			Violations: filterBySeverity(violations, threshold),
			Errors:     evalErrs,
		})
	}

	return r.RenderLint(results)
}

// watchAndLint re-runs the lint pass whenever a watched SQL file changes.
// Blocks until the watcher fails or the process is interrupted.
func watchAndLint(cmd *cobra.Command, r *output.Renderer, ruleSet *lint.RuleSet, d *dialect.Dialect, paths []string, threshold core.Severity) error {
	if _, err := lintOnce(r, ruleSet, d, paths, threshold); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(paths) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	slog.Info("watching for changes", "paths", paths)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".sql") {
				continue
			}
			slog.Debug("file changed", "path", event.Name)
			if _, err := lintOnce(r, ruleSet, d, paths, threshold); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		}
	}
}

// buildLintConfig merges CLI flags into the project lint configuration.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg, err := cfg.LintConfig()
	if err != nil {
		return nil, err
	}
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}
	if len(opts.Rules) > 0 {
		keep := make(map[string]bool, len(opts.Rules))
		for _, id := range opts.Rules {
			keep[strings.TrimSpace(id)] = true
		}
		for _, def := range lint.All() {
			if !keep[def.ID] {
				lintCfg.Disable(def.ID)
			}
		}
	}
	return lintCfg, nil
}

// collectSQLFiles expands paths into a sorted list of .sql files.
func collectSQLFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot lint %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, entry os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.EqualFold(filepath.Ext(p), ".sql") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// watchDirs returns the directories to register with the watcher.
func watchDirs(paths []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, path := range paths {
		dir := path
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func filterBySeverity(violations []lint.Violation, threshold core.Severity) []lint.Violation {
	// Severity values order from error (0) to hint (3); keep anything at
	// or above the threshold.
	out := make([]lint.Violation, 0, len(violations))
	for _, v := range violations {
		if v.Severity <= threshold {
			out = append(out, v)
		}
	}
	return out
}
