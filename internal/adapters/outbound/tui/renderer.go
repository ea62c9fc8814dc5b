package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusColors = map[string]lipgloss.Color{
		domain.StatusPass:    success,
		domain.StatusWarn:    warning,
		domain.StatusFail:    danger,
		domain.StatusPending: info,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a validation report: a status box, one line per
// validator, then the blocking and non-blocking failures.
func RenderReport(report domain.ValidationReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("assetkraft")
	subtitle := dimStyle.Render("Asset Validation")
	if report.AssetType != "" {
		subtitle = dimStyle.Render(fmt.Sprintf("Asset Validation  ·  %s", report.AssetType))
	}
	statusStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(report.Status)).
		Render(strings.ToUpper(report.Status))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + statusStyled))
	b.WriteString("\n\n")

	// ── Validators ──
	for _, res := range report.Results {
		renderResult(&b, res)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Summary ──
	if len(report.Errors) == 0 && len(report.Warnings) == 0 {
		if len(report.Pending) > 0 {
			b.WriteString("  " + infoTagStyle.Render(plural(len(report.Pending), "validator")+" not run yet.") + "\n")
		} else {
			b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if n := len(report.Errors); n > 0 {
		b.WriteString(errorTagStyle.Render(plural(n, "error")))
		b.WriteString("  ")
	}
	if n := len(report.Warnings); n > 0 {
		b.WriteString(warnTagStyle.Render(plural(n, "warning")))
	}
	b.WriteString("\n\n")

	for _, res := range report.Results {
		if !res.Validated || res.Valid {
			continue
		}
		fmt.Fprintf(&b, "    %s %s\n", categoryTag(res.Category), titleStyle.Render(res.Name))
		fmt.Fprintf(&b, "          %s\n", dimStyle.Render(res.Message))
	}
	if report.Blocking() {
		b.WriteString("\n  " + failStyle.Render("Errors block upload. Run `assetkraft fix` to repair what can be fixed automatically.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderResult(b *strings.Builder, res domain.ValidatorResult) {
	name := padRight(res.Name, 26)

	var icon string
	switch {
	case !res.Validated:
		fmt.Fprintf(b, "  %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render(res.Message),
		)
		return
	case res.Valid:
		icon = passStyle.Render("●")
	case res.Category == domain.CategoryError:
		icon = failStyle.Render("●")
	default:
		icon = warnStyle.Render("●")
	}

	fmt.Fprintf(b, "  %s %s %s\n", icon, name, faintStyle.Render(res.Message))
}

func categoryTag(cat domain.Category) string {
	switch cat {
	case domain.CategoryError:
		return errorTagStyle.Render("error")
	case domain.CategoryWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func statusColor(status string) lipgloss.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return fg
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats recorded validation runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		statusStyled := lipgloss.NewStyle().
			Foreground(statusColor(e.Status)).
			Render(padRight(e.Status, 7))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			statusStyled,
			e.SceneFile,
		)

		issues := len(e.Errors) + len(e.Warnings)
		if i > 0 {
			prev := len(entries[i-1].Errors) + len(entries[i-1].Warnings)
			if diff := issues - prev; diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
