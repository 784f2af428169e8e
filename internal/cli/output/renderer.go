// Package output renders lint results and rule listings for the CLI.
//
// Output adapts to the environment: styled text when writing to a terminal,
// plain text when piped, and machine-readable JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/leapstack-labs/sqlint/pkg/core"
	"github.com/leapstack-labs/sqlint/pkg/lint"
)

// Mode selects the output format.
type Mode string

// Output modes. ModeAuto picks text, styled when stdout is a terminal.
const (
	ModeAuto Mode = ""
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// FileResult bundles the outcome of linting one file.
type FileResult struct {
	Path       string           `json:"path"`
	Violations []lint.Violation `json:"violations"`
	Errors     []lint.EvalError `json:"errors,omitempty"`
}

// Renderer writes lint results and rule listings.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styled bool
}

// NewRenderer creates a renderer. With ModeAuto, styling is enabled when out
// is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	styled := false
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		styled = true
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styled: styled}
}

var (
	pathStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (r *Renderer) severityLabel(sev core.Severity) string {
	label := sev.String()
	if !r.styled {
		return label
	}
	switch sev {
	case core.SeverityError:
		return errorStyle.Render(label)
	case core.SeverityWarning:
		return warningStyle.Render(label)
	case core.SeverityInfo:
		return infoStyle.Render(label)
	default:
		return hintStyle.Render(label)
	}
}

// RenderLint writes the lint results. Returns the number of violations
// rendered.
func (r *Renderer) RenderLint(results []FileResult) (int, error) {
	if r.mode == ModeJSON {
		total := 0
		for _, res := range results {
			total += len(res.Violations)
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return total, enc.Encode(results)
	}

	total := 0
	for _, res := range results {
		if len(res.Violations) == 0 && len(res.Errors) == 0 {
			continue
		}
		name := res.Path
		if r.styled {
			name = pathStyle.Render(name)
		}
		fmt.Fprintln(r.out, name)
		for _, v := range res.Violations {
			fmt.Fprintf(r.out, "  %s  %-8s %s  %s\n",
				v.Pos, r.severityLabel(v.Severity), v.RuleID, v.Message)
			total++
		}
		for _, e := range res.Errors {
			fmt.Fprintf(r.errOut, "  %s  rule %s failed: %v\n", e.Pos, e.RuleID, e.Err)
		}
	}
	if total == 0 {
		fmt.Fprintln(r.out, "All files passed.")
	} else {
		fmt.Fprintf(r.out, "\nFound %d issue(s).\n", total)
	}
	return total, nil
}

// RenderRules writes a rule listing as a table (or JSON).
func (r *Renderer) RenderRules(infos []core.RuleInfo) error {
	if r.mode == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Dialects"})
	for _, info := range infos {
		dialects := "all"
		if len(info.Dialects) > 0 {
			dialects = fmt.Sprint(info.Dialects)
		}
		t.AppendRow(table.Row{info.ID, info.Name, info.Group, info.DefaultSeverity.String(), dialects})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// RenderRuleDetail writes the full documentation for one rule.
func (r *Renderer) RenderRuleDetail(info core.RuleInfo) error {
	if r.mode == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	title := fmt.Sprintf("%s: %s", info.ID, info.Name)
	if r.styled {
		title = pathStyle.Render(title)
	}
	fmt.Fprintln(r.out, title)
	fmt.Fprintf(r.out, "\n%s\n", info.Description)
	fmt.Fprintf(r.out, "\nSeverity: %s\n", info.DefaultSeverity)
	if len(info.ConfigKeys) > 0 {
		fmt.Fprintf(r.out, "Options:  %v\n", info.ConfigKeys)
	}
	if info.Rationale != "" {
		fmt.Fprintf(r.out, "\n%s\n", info.Rationale)
	}
	if info.BadExample != "" {
		fmt.Fprintf(r.out, "\nAnti-pattern:\n%s\n", indent(info.BadExample))
	}
	if info.GoodExample != "" {
		fmt.Fprintf(r.out, "\nBest practice:\n%s\n", indent(info.GoodExample))
	}
	if info.Fix != "" {
		fmt.Fprintf(r.out, "\nFix: %s\n", info.Fix)
	}
	return nil
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
