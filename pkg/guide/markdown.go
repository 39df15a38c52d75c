package guide

import (
	"fmt"
	"strings"
)

// Markdown renders the panel as a standalone markdown document.
func (p Panel) Markdown() string {
	var sb strings.Builder
	writePanel(&sb, p, 1)
	return sb.String()
}

// Markdown renders the hero banner.
func (h Hero) Markdown() string {
	var sb strings.Builder
	writeHero(&sb, h, 2)
	return sb.String()
}

// Markdown renders a single template, ready to paste.
func (t Template) Markdown() string {
	var sb strings.Builder
	writeBlock(&sb, t, 3)
	return sb.String()
}

// GuideMarkdown renders the whole guide: header, hero, table of contents,
// every panel in navigation order, footer.
func GuideMarkdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", GuideTitle))
	sb.WriteString(fmt.Sprintf("*%s*\n\n", HubName))

	writeHero(&sb, PageHero(), 2)

	sb.WriteString("## Contents\n\n")
	for i, sec := range sections {
		sb.WriteString(fmt.Sprintf("%d. [%s](#%s)\n", i+1, sec.Label, AnchorFor(sec.ID)))
	}
	sb.WriteString("\n")

	sb.WriteString("## How to use this guide\n\n")
	for _, tip := range UsageTips() {
		sb.WriteString(fmt.Sprintf("- %s\n", tip))
	}
	sb.WriteString("\n")

	for _, sec := range sections {
		sb.WriteString(fmt.Sprintf("<a id=\"%s\"></a>\n\n", AnchorFor(sec.ID)))
		writePanel(&sb, RenderPanel(sec.ID), 2)
		sb.WriteString("---\n\n")
	}

	sb.WriteString(fmt.Sprintf("*%s*\n", Footer))
	return sb.String()
}

// AnchorFor is the fragment id a section gets in whole-guide documents.
func AnchorFor(id SectionID) string {
	return "section-" + string(id)
}

func writeHero(sb *strings.Builder, h Hero, level int) {
	sb.WriteString(fmt.Sprintf("%s %s\n\n", heading(level), h.Title))
	if len(h.Pills) > 0 {
		sb.WriteString(pillLine(h.Pills))
		sb.WriteString("\n\n")
	}
	sb.WriteString(h.Intro)
	sb.WriteString("\n\n")

	if len(h.Stats) > 0 {
		sb.WriteString("| Metric | Value |\n|--------|-------|\n")
		for _, s := range h.Stats {
			sb.WriteString(fmt.Sprintf("| %s | **%s** |\n", escapeCell(s.Label), escapeCell(s.Value)))
		}
		sb.WriteString("\n")
	}
	if h.LastUpdated != "" {
		sb.WriteString(fmt.Sprintf("*Last updated: %s. %s.*\n\n", h.LastUpdated, h.Note))
	}
}

func writePanel(sb *strings.Builder, p Panel, level int) {
	sb.WriteString(fmt.Sprintf("%s %s\n\n", heading(level), p.Title))
	if p.Subtitle != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n\n", p.Subtitle))
	}
	for _, b := range p.Blocks {
		writeBlock(sb, b, level+1)
	}
}

func writeBlock(sb *strings.Builder, b Block, level int) {
	switch b := b.(type) {
	case Pills:
		sb.WriteString(pillLine(b.Items))
		sb.WriteString("\n\n")

	case Paragraph:
		if b.Strong {
			sb.WriteString(fmt.Sprintf("**%s**\n\n", b.Text))
		} else {
			sb.WriteString(b.Text + "\n\n")
		}

	case List:
		sb.WriteString(fmt.Sprintf("%s %s%s\n\n", heading(level), toneMarker(b.Tone), b.Title))
		for _, it := range b.Items {
			sb.WriteString(fmt.Sprintf("- %s\n", it))
		}
		sb.WriteString("\n")

	case Table:
		if len(b.Columns) == 0 {
			return
		}
		cells := make([]string, len(b.Columns))
		for i, c := range b.Columns {
			cells[i] = escapeCell(c)
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		sb.WriteString("|" + strings.Repeat("---|", len(b.Columns)) + "\n")
		for _, row := range b.Rows {
			for i := range cells {
				cells[i] = ""
				if i < len(row) {
					cells[i] = escapeCell(row[i])
				}
			}
			sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}
		sb.WriteString("\n")

	case Callout:
		sb.WriteString(fmt.Sprintf("> %s**%s**\n>\n> %s\n\n", toneMarker(b.Tone), b.Title, b.Text))

	case Tiles:
		if b.Title != "" {
			sb.WriteString(fmt.Sprintf("%s %s\n\n", heading(level), b.Title))
		}
		for _, t := range b.Items {
			title := t.Title
			if t.Kicker != "" {
				title = fmt.Sprintf("%s · %s", t.Kicker, t.Title)
			}
			sb.WriteString(fmt.Sprintf("**%s%s**", toneMarker(b.Tone), title))
			if t.Text != "" {
				sb.WriteString(" — " + t.Text)
			}
			sb.WriteString("\n\n")
			for _, bullet := range t.Bullets {
				sb.WriteString(fmt.Sprintf("- %s\n", bullet))
			}
			if len(t.Bullets) > 0 {
				sb.WriteString("\n")
			}
		}

	case Template:
		sb.WriteString(fmt.Sprintf("%s %s%s\n\n", heading(level), toneMarker(b.Tone), b.Title))
		sb.WriteString("```text\n")
		sb.WriteString(b.Text)
		sb.WriteString("\n```\n\n")
		sb.WriteString(fmt.Sprintf("*%s*\n\n", TemplateTip))

	case Checklist:
		sb.WriteString(fmt.Sprintf("%s %s\n\n", heading(level), b.Title))
		for _, it := range b.Items {
			sb.WriteString(fmt.Sprintf("- [ ] %s\n", it))
		}
		sb.WriteString("\n")

	case Banner:
		sb.WriteString(fmt.Sprintf("> ★ **%s**\n>\n> %s\n\n", b.Title, b.Text))
	}
}

func heading(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level)
}

func pillLine(pills []Pill) string {
	parts := make([]string, len(pills))
	for i, p := range pills {
		parts[i] = "`" + p.Text + "`"
	}
	return strings.Join(parts, " · ")
}

func toneMarker(t Tone) string {
	switch t {
	case ToneInfo:
		return "ℹ "
	case ToneGood:
		return "✔ "
	case ToneWarn:
		return "⚠ "
	default:
		return ""
	}
}

// escapeCell keeps pipes and newlines from breaking a table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
