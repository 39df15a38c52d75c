package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/handover/pkg/guide"
)

// ══════════════════════════════════════════════════════════════════════════════
// PILL BACKGROUNDS - Subtle tints behind tone-coloured tags
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorPillNeutralBg = lipgloss.AdaptiveColor{Light: "#EEF3FB", Dark: "#1C2B45"}
	ColorPillInfoBg    = lipgloss.AdaptiveColor{Light: "#E6F1FF", Dark: "#12305A"}
	ColorPillGoodBg    = lipgloss.AdaptiveColor{Light: "#E7F7EE", Dark: "#123A26"}
	ColorPillWarnBg    = lipgloss.AdaptiveColor{Light: "#FFFBEB", Dark: "#3D2E12"}
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
// ══════════════════════════════════════════════════════════════════════════════

// RenderPill returns a tone-coloured tag.
func (t Theme) RenderPill(p guide.Pill) string {
	var bg lipgloss.AdaptiveColor
	switch p.Tone {
	case guide.ToneInfo:
		bg = ColorPillInfoBg
	case guide.ToneGood:
		bg = ColorPillGoodBg
	case guide.ToneWarn:
		bg = ColorPillWarnBg
	default:
		bg = ColorPillNeutralBg
	}
	return t.Renderer.NewStyle().
		Foreground(t.ToneColor(p.Tone)).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(p.Text)
}

// RenderStat renders a hero stat as "label value".
func (t Theme) RenderStat(s guide.Stat) string {
	return t.MutedText.Render(s.Label+" ") + t.PrimaryBold.Render(s.Value)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func (t Theme) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}
