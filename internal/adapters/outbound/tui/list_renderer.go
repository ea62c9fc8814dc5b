package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/assetkraft/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderValidators lists the registered validators with their category and
// whether they can be fixed automatically.
func RenderValidators(infos []domain.ValidatorInfo) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n\n",
		sectionHeaderStyle.Render("Validators"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(infos))),
	)

	for _, v := range infos {
		fixable := skipStyle.Render("     ")
		if v.Fixable {
			fixable = passStyle.Render("fix  ")
		}
		fmt.Fprintf(&b, "    %s %s %s\n", categoryTag(v.Category), fixable, titleStyle.Render(v.Name))
		fmt.Fprintf(&b, "               %s\n", dimStyle.Render(v.Description))
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Error validators block upload; warnings are advisory."))
	b.WriteString("\n")
	return b.String()
}
