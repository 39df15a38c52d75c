package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/handover/pkg/guide"
)

// renderSidebar draws the search box, the filtered section list and, on
// wide enough terminals, the usage card.
func (m Model) renderSidebar(width, height int) string {
	t := m.theme
	r := t.Renderer
	inner := width - 2 // right border plus one cell of padding

	var lines []string
	lines = append(lines, t.PrimaryBold.Render("Sections"))

	switch {
	case m.focus == focusSearch:
		lines = append(lines, m.search.View())
	case m.state.Query() != "":
		lines = append(lines, t.Base.Render(truncate("/ "+m.state.Query(), inner)))
	default:
		lines = append(lines, t.MutedText.Render("/ search sections"))
	}
	lines = append(lines, t.RenderDivider(inner))

	visible := m.state.Visible()
	if len(visible) == 0 {
		lines = append(lines, t.WarnText.Render(truncate("No sections match", inner)))
	}
	active := m.state.ActiveID()
	for i, sec := range visible {
		lines = append(lines, m.renderNavItem(sec, i == m.cursor, sec.ID == active, inner))
	}

	if m.width >= narrowWidth {
		lines = append(lines, "", t.RenderDivider(inner))
		lines = append(lines, r.NewStyle().Bold(true).Foreground(t.Navy).Render("How to use this guide"))
		for _, tip := range guide.UsageTips() {
			for j, l := range wrapWords(tip, inner-2) {
				prefix := "  "
				if j == 0 {
					prefix = "• "
				}
				lines = append(lines, t.MutedText.Render(prefix+l))
			}
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return r.NewStyle().
		Width(width-1).
		PaddingRight(1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(t.Border).
		Render(strings.Join(lines, "\n"))
}

// renderNavItem formats one row: cursor marker, shortcut number, icon and
// label. The number is the section's position in the full list, so it
// stays stable while filtering.
func (m Model) renderNavItem(sec guide.Section, cursor, active bool, width int) string {
	t := m.theme
	marker := "  "
	if cursor {
		marker = "› "
	}
	label := fmt.Sprintf("%s%d %s %s", marker, guide.IndexOf(sec.ID)+1, sec.Icon, sec.Label)
	if active {
		label += " ●"
	}
	label = padRight(truncate(label, width), width)

	switch {
	case cursor && active:
		return t.Selected.Render(label)
	case cursor:
		return t.PrimaryBold.Render(label)
	case active:
		return t.ActiveItem.Render(label)
	default:
		return t.Base.Render(label)
	}
}
