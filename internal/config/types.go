// Package config provides project configuration for sqlint.
// This package is decoupled from CLI concerns so other embedders (editor
// integrations, CI wrappers) can load the same configuration.
package config

import (
	"fmt"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

// Config is the resolved sqlint configuration.
type Config struct {
	// Dialect names the SQL dialect rules and the splitter assume.
	Dialect string `koanf:"dialect"`

	// Paths are the files or directories linted when the CLI gets no
	// positional arguments.
	Paths []string `koanf:"paths"`

	// DisabledRules lists rule IDs to skip.
	DisabledRules []string `koanf:"disabled_rules"`

	// Severity overrides rule severities by ID ("error", "warning",
	// "info", "hint").
	Severity map[string]string `koanf:"severity"`

	// Rules holds per-rule option values keyed by rule ID.
	Rules map[string]map[string]any `koanf:"rules"`

	// LogLevel controls slog verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ProjectRoot is the directory relative paths resolve against.
	// Set by the loader, never by the config file.
	ProjectRoot string `koanf:"-"`
}

// LintConfig converts the file-level configuration into the lint package's
// evaluation config, validating severity names.
func (c *Config) LintConfig() (*lint.Config, error) {
	lc := lint.NewConfig()
	for _, id := range c.DisabledRules {
		lc.Disable(id)
	}
	for id, name := range c.Severity {
		sev, ok := core.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown severity %q for rule %s", name, id)
		}
		lc.SetSeverity(id, sev)
	}
	for id, opts := range c.Rules {
		for key, value := range opts {
			lc.SetRuleOption(id, key, value)
		}
	}
	return lc, nil
}
