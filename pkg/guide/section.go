// Package guide holds the Interns Program handover guide: the fixed list of
// sections, the panel content for each one, and the view state that decides
// which sections are listed and which panel is shown.
//
// Everything here is pure data and in-memory state. Rendering to a terminal
// lives in pkg/ui; file and JSON output lives in pkg/export.
package guide

import "strings"

// SectionID identifies one of the guide's sections. The set is closed.
type SectionID string

const (
	Overview      SectionID = "overview"
	Role          SectionID = "role"
	Cadence       SectionID = "cadence"
	Governance    SectionID = "governance"
	Success       SectionID = "success"
	Risks         SectionID = "risks"
	Opportunities SectionID = "opps"
	Toolkit       SectionID = "toolkit"
)

// DefaultSection is the section shown when nothing else was selected.
const DefaultSection = Overview

// Section is one entry of the navigation list.
type Section struct {
	ID    SectionID
	Label string
	Icon  string // single-cell glyph shown in the sidebar
}

// sections is the navigation order. It is an array so callers can never
// mutate the shared copy.
var sections = [...]Section{
	{ID: Overview, Label: "Program overview", Icon: "▤"},
	{ID: Role, Label: "Your role", Icon: "◈"},
	{ID: Cadence, Label: "Cadence & activities", Icon: "◷"},
	{ID: Governance, Label: "Governance", Icon: "◎"},
	{ID: Success, Label: "Success criteria", Icon: "✓"},
	{ID: Risks, Label: "Risk signals", Icon: "▲"},
	{ID: Opportunities, Label: "Opportunities", Icon: "✦"},
	{ID: Toolkit, Label: "Toolkit", Icon: "✎"},
}

// SectionCount is the number of sections in the guide.
const SectionCount = len(sections)

// Sections returns the full navigation list in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections[:])
	return out
}

// Valid reports whether id belongs to the fixed section list.
func (id SectionID) Valid() bool {
	return IndexOf(id) >= 0
}

// IndexOf returns the position of id in the navigation list, or -1.
func IndexOf(id SectionID) int {
	for i := range sections {
		if sections[i].ID == id {
			return i
		}
	}
	return -1
}

// SectionByID looks up a section by id.
func SectionByID(id SectionID) (Section, bool) {
	if i := IndexOf(id); i >= 0 {
		return sections[i], true
	}
	return Section{}, false
}

// SectionAt returns the section at position i of the full list.
func SectionAt(i int) (Section, bool) {
	if i < 0 || i >= len(sections) {
		return Section{}, false
	}
	return sections[i], true
}

// ParseSectionID resolves user input (an id or a label, any case) to a
// section id.
func ParseSectionID(s string) (SectionID, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, sec := range sections {
		if string(sec.ID) == s || strings.ToLower(sec.Label) == s {
			return sec.ID, true
		}
	}
	return "", false
}

// NormalizeQuery is the form of a search query that labels are matched
// against: surrounding whitespace removed, lower-cased.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// VisibleSections returns the sections whose label contains query, in
// navigation order. Matching is case-insensitive substring containment on
// the trimmed query; a blank query returns the full list.
func VisibleSections(query string) []Section {
	q := NormalizeQuery(query)
	if q == "" {
		return Sections()
	}

	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		if strings.Contains(strings.ToLower(sec.Label), q) {
			out = append(out, sec)
		}
	}
	return out
}
