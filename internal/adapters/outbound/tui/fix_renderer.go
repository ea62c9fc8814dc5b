package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// RenderFixReport renders the outcome of a fix batch and the resulting status.
func RenderFixReport(report domain.FixReport) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n\n",
		sectionHeaderStyle.Render("Fixes"),
		dimStyle.Render(fmt.Sprintf("%s → %s", report.Before.Status, report.After.Status)),
	)

	attempted := 0
	for _, o := range report.Outcomes {
		if !o.Attempted {
			continue
		}
		attempted++
		if o.Converged {
			fmt.Fprintf(&b, "    %s %s %s\n", passStyle.Render("✓"), padRight(o.Validator, 26), faintStyle.Render(o.Result.Message))
		} else {
			fmt.Fprintf(&b, "    %s %s %s\n", failStyle.Render("✗"), padRight(o.Validator, 26), dimStyle.Render(o.Result.Message))
		}
	}
	if attempted == 0 {
		b.WriteString("    " + dimStyle.Render("No fixable validators were selected.") + "\n")
	}

	if pending := report.Unconverged(); len(pending) > 0 {
		b.WriteString("\n  " + warnTagStyle.Render("Could not fix automatically: "+strings.Join(pending, ", ")) + "\n")
	}

	if report.Written != "" {
		b.WriteString("\n  " + dimStyle.Render("Wrote "+report.Written) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}
