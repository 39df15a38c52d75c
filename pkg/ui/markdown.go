package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/handover/pkg/config"
	"github.com/vanderheijden86/handover/pkg/debug"
	"github.com/vanderheijden86/handover/pkg/metrics"
)

// MarkdownRenderer renders panel markdown for the terminal with glamour.
// Building a glamour renderer is expensive, so one is kept per
// (width, style) pair and rebuilt only when either changes.
type MarkdownRenderer struct {
	width    int
	style    string
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer that wraps at width cells using
// the named style (auto, dark, light or notty).
func NewMarkdownRenderer(width int, style string) *MarkdownRenderer {
	m := &MarkdownRenderer{}
	m.Configure(width, style)
	return m
}

// Configure rebuilds the underlying renderer when width or style change.
func (m *MarkdownRenderer) Configure(width int, style string) {
	if width < 10 {
		width = 10
	}
	if style == "" {
		style = config.StyleAuto
	}
	if m.renderer != nil && width == m.width && style == m.style {
		metrics.RendererCache.Hit()
		return
	}
	metrics.RendererCache.Miss()
	m.width = width
	m.style = style

	r, err := glamour.NewTermRenderer(styleOption(style), glamour.WithWordWrap(width))
	if err != nil {
		debug.Log("markdown: glamour init failed for style %q: %v", style, err)
		m.renderer = nil
		return
	}
	m.renderer = r
}

// Width returns the current wrap width.
func (m *MarkdownRenderer) Width() int {
	return m.width
}

// Render returns styled output. When glamour is unavailable or fails the
// raw markdown is returned along with the error.
func (m *MarkdownRenderer) Render(md string) (string, error) {
	if m.renderer == nil {
		return md, errNoRenderer
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md, err
	}
	// glamour pads the document with blank lines on both ends
	return strings.Trim(out, "\n"), nil
}

func styleOption(style string) glamour.TermRendererOption {
	switch style {
	case config.StyleDark:
		return glamour.WithStandardStyle("dark")
	case config.StyleLight:
		return glamour.WithStandardStyle("light")
	case config.StyleNoTTY:
		return glamour.WithStandardStyle("notty")
	default:
		if lipgloss.HasDarkBackground() {
			return glamour.WithStandardStyle("dark")
		}
		return glamour.WithStandardStyle("light")
	}
}

var errNoRenderer = errors.New("markdown renderer unavailable")
