package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/handover/pkg/guide"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Theme is the guide's blue corporate palette, adapted for light and dark
// terminals.
type Theme struct {
	Renderer *lipgloss.Renderer

	// Brand
	Navy    lipgloss.AdaptiveColor
	Primary lipgloss.AdaptiveColor

	// Text
	Text    lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor

	// Tones
	Info lipgloss.AdaptiveColor
	Good lipgloss.AdaptiveColor
	Warn lipgloss.AdaptiveColor

	// UI elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	// Styles
	Base     lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style

	// Pre-computed styles used on every frame.
	MutedText   lipgloss.Style // hints, footer
	PrimaryBold lipgloss.Style // nav cursor, titles
	ActiveItem  lipgloss.Style // active section in the nav
	WarnText    lipgloss.Style // filter notices
	GoodText    lipgloss.Style // copy confirmations
}

// DefaultTheme returns the navy/blue handover theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Navy:    lipgloss.AdaptiveColor{Light: "#002D72", Dark: "#6FA8FF"},
		Primary: lipgloss.AdaptiveColor{Light: "#0071CE", Dark: "#4DA3FF"},

		Text:    lipgloss.AdaptiveColor{Light: "#0B1B33", Dark: "#E8EEF9"},
		Subtext: lipgloss.AdaptiveColor{Light: "#51607A", Dark: "#B4C0D6"},
		Muted:   lipgloss.AdaptiveColor{Light: "#5E6B80", Dark: "#7D8AA3"},

		Info: lipgloss.AdaptiveColor{Light: "#0071CE", Dark: "#4DA3FF"},
		Good: lipgloss.AdaptiveColor{Light: "#055F2B", Dark: "#5CD68D"},
		Warn: lipgloss.AdaptiveColor{Light: "#7A4B00", Dark: "#FFC266"},

		Border:    lipgloss.AdaptiveColor{Light: "#B9CCE8", Dark: "#2B3F63"},
		Highlight: lipgloss.AdaptiveColor{Light: "#DCEBFF", Dark: "#18345E"},
	}

	t.Base = r.NewStyle().Foreground(t.Text)

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Foreground(t.Navy).
		Bold(true)

	t.Header = r.NewStyle().
		Background(lipgloss.Color("#002D72")).
		Foreground(ThemeFg("#FFFFFF")).
		Bold(true).
		Padding(0, 1)

	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.PrimaryBold = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.ActiveItem = r.NewStyle().Foreground(t.Navy).Bold(true)
	t.WarnText = r.NewStyle().Foreground(t.Warn)
	t.GoodText = r.NewStyle().Foreground(t.Good)

	return t
}

// ToneColor maps a block tone to its foreground color.
func (t Theme) ToneColor(tone guide.Tone) lipgloss.AdaptiveColor {
	switch tone {
	case guide.ToneInfo:
		return t.Info
	case guide.ToneGood:
		return t.Good
	case guide.ToneWarn:
		return t.Warn
	default:
		return t.Subtext
	}
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
