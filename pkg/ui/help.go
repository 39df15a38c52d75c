package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpContent = `Navigation
  j/k  ↑/↓    Move through the section list
  Enter/Spc   Open the highlighted section
  1-8         Jump to a section by number
  Tab/S-Tab   Next / previous section

Search
  /           Focus the search box
  Enter       Open the highlighted match
  Esc         Clear the search

Panel
  ^d/^u       Half page down / up
  J/K         Scroll one line
  g/G         Top / bottom

Copy
  c           Copy the next toolkit template
  y           Copy this section as markdown

  ?           Toggle this help
  q           Quit`

// RenderHelp renders the key reference modal.
func RenderHelp(theme Theme, width, height int) string {
	r := theme.Renderer

	modalWidth := 52
	if modalWidth > width-2 {
		modalWidth = width - 2
	}
	if modalWidth < 10 {
		modalWidth = 10
	}

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(theme.Navy)

	contentStyle := r.NewStyle().
		Foreground(theme.Subtext)

	footerStyle := r.NewStyle().
		Foreground(theme.Muted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	b.WriteString(theme.RenderDivider(modalWidth - 6))
	b.WriteString("\n\n")
	b.WriteString(contentStyle.Render(helpContent))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("? or Esc to close"))

	modalStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Width(modalWidth).
		MaxHeight(height)

	return modalStyle.Render(b.String())
}
