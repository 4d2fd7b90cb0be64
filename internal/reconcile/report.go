package reconcile

import (
	"fmt"
	"strings"

	"github.com/korvala/padmap/internal/mapping"
	"github.com/korvala/padmap/internal/ui"
)

// Column widths for matched report rows
const (
	propertyColWidth  = 6
	parameterColWidth = 2
	valueColWidth     = 25
)

// RenderHeader returns the device header shown before the rule rows.
func RenderHeader(d mapping.Descriptor) string {
	var b strings.Builder
	b.WriteString(ui.HeaderStyle.Render(fmt.Sprintf("NAME: %s", d.Name)))
	b.WriteString("\n")
	b.WriteString(ui.HeaderStyle.Render(fmt.Sprintf("TYPE: %s", d.Type)))
	return b.String()
}

// RenderRow returns the report line for one rule status: a green aligned
// YES row when the observed value matched, a red observed-vs-expected NO row
// when it did not.
func RenderRow(st RuleStatus) string {
	if st.Matched {
		return renderMatch(st)
	}
	return renderMismatch(st)
}

func renderMatch(st RuleStatus) string {
	row := fmt.Sprintf(" YES | %-*s | %*s | %-*s",
		propertyColWidth, st.Rule.Property,
		parameterColWidth, st.Rule.Parameter,
		valueColWidth, st.Rule.Value)

	rendered := ui.MatchRowStyle.Render(row)
	if st.Rule.Label != "" {
		rendered += ui.LabelStyle.Render(" | " + st.Rule.Label)
	}
	return rendered
}

func renderMismatch(st RuleStatus) string {
	return ui.MismatchRowStyle.Render(fmt.Sprintf("> NO | %s = %s | SHOULD BE: %s",
		st.Rule.Setting(),
		strings.TrimSpace(st.Observed),
		st.Rule.Value))
}

// RenderDivider returns a muted rule sized to the terminal.
func RenderDivider() string {
	return ui.MutedStyle.Render(strings.Repeat("-", ui.GetTerminalWidth()))
}

// RenderSummary returns the banner printed after a Checking pass.
func RenderSummary(matched bool) string {
	if matched {
		return ui.ConvergedStyle.Render("ALL GOOD!")
	}
	return ui.MismatchBannerStyle.Render("MAPPING DID NOT MATCH!")
}
