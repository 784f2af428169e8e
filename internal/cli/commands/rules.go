package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
	_ "github.com/leapstack-labs/sqlint/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group (e.g. references, capitalisation, layout).
Pass a rule ID to see its full documentation including examples and
configuration options.`,
		Example: `  # List all rules
  sqlint rules

  # Show details for a specific rule
  sqlint rules RF05

  # List rules in the capitalisation group
  sqlint rules --group capitalisation

  # Output as JSON
  sqlint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))

	defs := lint.All()
	if opts.Group != "" {
		defs = lint.ByGroup(opts.Group)
	}

	infos := make([]core.RuleInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, def.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})

	return r.RenderRules(infos)
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))

	def, ok := lint.Get(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	return r.RenderRuleDetail(def.Info())
}
