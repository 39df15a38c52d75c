package export

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/handover/pkg/guide"
	"github.com/vanderheijden86/handover/pkg/version"
)

// RobotSection is one entry of the navigation list. Position is the
// 1-based place in the full list, which is also the TUI shortcut key.
type RobotSection struct {
	ID       guide.SectionID `json:"id"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	Position int             `json:"position"`
}

// RobotSectionsOutput is the --robot-sections document.
type RobotSectionsOutput struct {
	GeneratedAt     string          `json:"generated_at"`
	Version         string          `json:"version"`
	Query           string          `json:"query"`
	NormalizedQuery string          `json:"normalized_query"`
	Active          guide.SectionID `json:"active"`
	ActiveVisible   bool            `json:"active_visible"`
	Total           int             `json:"total"`
	Sections        []RobotSection  `json:"sections"`
}

// RobotTemplate is a copyable message from a panel.
type RobotTemplate struct {
	Title string `json:"title"`
	Tone  string `json:"tone"`
	Text  string `json:"text"`
}

// RobotPanelOutput is the --robot-panel document.
type RobotPanelOutput struct {
	GeneratedAt string          `json:"generated_at"`
	Version     string          `json:"version"`
	ID          guide.SectionID `json:"id"`
	Label       string          `json:"label"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Templates   []RobotTemplate `json:"templates,omitempty"`
	Markdown    string          `json:"markdown"`
}

// RobotSections describes the navigation list for state.
func RobotSections(state guide.ViewState, now time.Time) RobotSectionsOutput {
	visible := state.Visible()
	out := RobotSectionsOutput{
		GeneratedAt:     now.UTC().Format(time.RFC3339),
		Version:         version.Version,
		Query:           state.Query(),
		NormalizedQuery: guide.NormalizeQuery(state.Query()),
		Active:          state.ActiveID(),
		ActiveVisible:   state.ActiveVisible(),
		Total:           guide.SectionCount,
		Sections:        make([]RobotSection, 0, len(visible)),
	}
	for _, sec := range visible {
		out.Sections = append(out.Sections, RobotSection{
			ID:       sec.ID,
			Label:    sec.Label,
			Icon:     sec.Icon,
			Position: guide.IndexOf(sec.ID) + 1,
		})
	}
	return out
}

// RobotPanel describes the active panel of state.
func RobotPanel(state guide.ViewState, now time.Time) RobotPanelOutput {
	p := state.Panel()
	out := RobotPanelOutput{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Version:     version.Version,
		ID:          p.ID,
		Label:       state.Active().Label,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Markdown:    p.Markdown(),
	}
	for _, t := range p.Templates() {
		out.Templates = append(out.Templates, RobotTemplate{Title: t.Title, Tone: t.Tone.String(), Text: t.Text})
	}
	return out
}

// WriteRobotJSON encodes v as indented JSON.
func WriteRobotJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding robot output: %w", err)
	}
	return nil
}
