package ui_test

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/handover/pkg/config"
	"github.com/vanderheijden86/handover/pkg/guide"
	"github.com/vanderheijden86/handover/pkg/ui"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.GlamourStyle = config.StyleNoTTY
	return cfg
}

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, s)
	return nil
}

func newTestModel(t *testing.T, opts ...ui.Option) (ui.Model, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	opts = append([]ui.Option{ui.WithClipboard(cb.write), ui.WithTheme(ui.TestTheme())}, opts...)
	m := ui.NewModel(testConfig(), opts...)
	return update(m, tea.WindowSizeMsg{Width: 120, Height: 40}), cb
}

func update(m ui.Model, msg tea.Msg) ui.Model {
	updated, _ := m.Update(msg)
	return updated.(ui.Model)
}

func keys(m ui.Model, s string) ui.Model {
	for _, r := range s {
		m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func key(m ui.Model, k tea.KeyType) ui.Model {
	return update(m, tea.KeyMsg{Type: k})
}

func TestNewModelStartsOnConfiguredSection(t *testing.T) {
	m, _ := newTestModel(t)
	if m.ActiveID() != guide.Overview {
		t.Errorf("default active = %q, want overview", m.ActiveID())
	}

	cfg := testConfig()
	cfg.UI.DefaultSection = "Toolkit"
	m = ui.NewModel(cfg)
	if m.ActiveID() != guide.Toolkit {
		t.Errorf("configured active = %q, want toolkit", m.ActiveID())
	}
	if m.Cursor() != guide.IndexOf(guide.Toolkit) {
		t.Errorf("cursor = %d, want it on the active section", m.Cursor())
	}
}

func TestWithQueryAndSection(t *testing.T) {
	m, _ := newTestModel(t, ui.WithQuery("Risk"), ui.WithSection(guide.Role))
	if m.Query() != "Risk" {
		t.Errorf("Query() = %q", m.Query())
	}
	if got := m.VisibleSections(); len(got) != 1 || got[0].ID != guide.Risks {
		t.Errorf("visible = %v, want only risks", got)
	}
	if m.ActiveID() != guide.Role {
		t.Errorf("active = %q, want role", m.ActiveID())
	}

	m, _ = newTestModel(t, ui.WithSection("nope"))
	if m.ActiveID() != guide.Overview {
		t.Errorf("unknown section should be ignored, got %q", m.ActiveID())
	}
}

func TestSearchFiltersAndEnterActivates(t *testing.T) {
	m, _ := newTestModel(t)

	m = keys(m, "/")
	if !m.Searching() {
		t.Fatal("expected search focus after /")
	}
	m = keys(m, "risk")
	if m.Query() != "risk" {
		t.Fatalf("Query() = %q, want risk", m.Query())
	}
	visible := m.VisibleSections()
	if len(visible) != 1 || visible[0].ID != guide.Risks {
		t.Fatalf("visible = %v, want only risks", visible)
	}
	if m.ActiveID() != guide.Overview {
		t.Errorf("typing must not change the active section, got %q", m.ActiveID())
	}

	m = key(m, tea.KeyEnter)
	if m.Searching() {
		t.Error("enter should return focus to the nav list")
	}
	if m.ActiveID() != guide.Risks {
		t.Errorf("active = %q, want risks", m.ActiveID())
	}
	if m.Query() != "risk" {
		t.Errorf("enter should keep the query, got %q", m.Query())
	}
}

func TestSearchTypingQDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "/")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q inside the search box must not quit")
		}
	}
}

func TestEscClearsSearch(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "/zzz")
	if n := len(m.VisibleSections()); n != 0 {
		t.Fatalf("expected no matches for zzz, got %d", n)
	}
	m = key(m, tea.KeyEsc)
	if m.Searching() {
		t.Error("esc should leave search")
	}
	if m.Query() != "" {
		t.Errorf("esc should clear the query, got %q", m.Query())
	}
	if n := len(m.VisibleSections()); n != guide.SectionCount {
		t.Errorf("visible = %d, want all %d", n, guide.SectionCount)
	}
}

func TestEnterWithNoMatchesKeepsActive(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "/zzz")
	m = key(m, tea.KeyEnter)
	if m.ActiveID() != guide.Overview {
		t.Errorf("active = %q, want overview", m.ActiveID())
	}
}

func TestHiddenActiveSectionIsReported(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "/kit")
	if m.ActiveID() != guide.Overview {
		t.Fatalf("active = %q, want overview", m.ActiveID())
	}
	if !strings.Contains(m.View(), "active: Program overview (hidden by filter)") {
		t.Error("status bar should report the hidden active section")
	}
}

func TestNumberKeysIgnoreFilter(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "/kit")
	m = key(m, tea.KeyEnter)
	if m.ActiveID() != guide.Toolkit {
		t.Fatalf("active = %q, want toolkit", m.ActiveID())
	}

	m = keys(m, "2")
	if m.ActiveID() != guide.Role {
		t.Errorf("2 should open the second section even when filtered out, got %q", m.ActiveID())
	}
	m = keys(m, "9")
	if m.ActiveID() != guide.Role {
		t.Errorf("9 has no section and should be ignored, got %q", m.ActiveID())
	}
}

func TestTabCyclesThroughAllSections(t *testing.T) {
	m, _ := newTestModel(t)
	m = key(m, tea.KeyTab)
	if m.ActiveID() != guide.Role {
		t.Errorf("tab from overview = %q, want role", m.ActiveID())
	}
	m = key(m, tea.KeyShiftTab)
	m = key(m, tea.KeyShiftTab)
	if m.ActiveID() != guide.Toolkit {
		t.Errorf("shift+tab should wrap to toolkit, got %q", m.ActiveID())
	}
}

func TestCursorStaysWithinVisibleList(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "k")
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d after k at top", m.Cursor())
	}
	m = keys(m, strings.Repeat("j", 20))
	if m.Cursor() != guide.SectionCount-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor(), guide.SectionCount-1)
	}
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.ActiveID() != guide.Toolkit {
		t.Errorf("space should activate the cursor row, got %q", m.ActiveID())
	}

	// Narrowing the list pulls the cursor back in.
	m = keys(m, "/o")
	if c, n := m.Cursor(), len(m.VisibleSections()); c >= n {
		t.Errorf("cursor %d outside %d visible rows", c, n)
	}
}

func TestCopyTemplatesCycles(t *testing.T) {
	m, cb := newTestModel(t)
	templates := guide.RenderPanel(guide.Toolkit).Templates()
	if len(templates) == 0 {
		t.Fatal("toolkit has no templates")
	}

	for i := 0; i <= len(templates); i++ {
		m = keys(m, "c")
	}
	if len(cb.writes) != len(templates)+1 {
		t.Fatalf("got %d clipboard writes", len(cb.writes))
	}
	for i, tmpl := range templates {
		if cb.writes[i] != tmpl.Text {
			t.Errorf("write %d = %q, want %q", i, cb.writes[i], tmpl.Text)
		}
	}
	if cb.writes[len(templates)] != templates[0].Text {
		t.Error("copying should wrap around to the first template")
	}
	msg, isErr := m.StatusMessage()
	if isErr || !strings.Contains(msg, "Copied template 1/") {
		t.Errorf("status = %q (error=%v)", msg, isErr)
	}
}

func TestCopyPanelMarkdown(t *testing.T) {
	m, cb := newTestModel(t)
	m = keys(m, "3y")
	if len(cb.writes) != 1 {
		t.Fatalf("got %d clipboard writes", len(cb.writes))
	}
	if want := guide.RenderPanel(guide.Cadence).Markdown(); cb.writes[0] != want {
		t.Error("y should copy the active panel's markdown")
	}
}

func TestClipboardErrorIsReported(t *testing.T) {
	m, cb := newTestModel(t)
	cb.err = errors.New("no clipboard")
	m = keys(m, "c")
	msg, isErr := m.StatusMessage()
	if !isErr || !strings.Contains(msg, "no clipboard") {
		t.Errorf("status = %q (error=%v)", msg, isErr)
	}

	// A failed copy does not advance the template cycle.
	cb.err = nil
	m = keys(m, "c")
	if want := guide.RenderPanel(guide.Toolkit).Templates()[0].Text; cb.writes[0] != want {
		t.Error("first successful copy should be the first template")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "?")
	if !m.ShowingHelp() {
		t.Fatal("expected help after ?")
	}
	if !strings.Contains(m.View(), "Keyboard shortcuts") {
		t.Error("help overlay not rendered")
	}
	m = keys(m, "j")
	if m.Cursor() != 0 {
		t.Error("keys other than ?/esc/q should be swallowed by the help overlay")
	}
	m = key(m, tea.KeyEsc)
	if m.ShowingHelp() {
		t.Error("esc should close help")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected a command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestScrollResetsOnSectionChange(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 12})
	m = keys(m, "G")
	if m.ScrollOffset() == 0 {
		t.Fatal("expected G to scroll a long panel")
	}
	m = key(m, tea.KeyTab)
	if m.ScrollOffset() != 0 {
		t.Errorf("scroll offset = %d after changing section", m.ScrollOffset())
	}
	m = keys(m, "G")
	m = keys(m, "g")
	if m.ScrollOffset() != 0 {
		t.Errorf("g should return to the top, got %d", m.ScrollOffset())
	}
}

func TestConfigReload(t *testing.T) {
	m, _ := newTestModel(t)

	cfg := testConfig()
	cfg.UI.SidebarWidth = 44
	m = update(m, ui.ConfigReloadedMsg{Config: cfg})
	if m.Config().UI.SidebarWidth != 44 {
		t.Errorf("sidebar width = %d, want 44", m.Config().UI.SidebarWidth)
	}
	if msg, isErr := m.StatusMessage(); isErr || msg != "Config reloaded" {
		t.Errorf("status = %q (error=%v)", msg, isErr)
	}

	m = update(m, ui.ConfigReloadedMsg{Err: errors.New("bad yaml")})
	if m.Config().UI.SidebarWidth != 44 {
		t.Error("a failed reload must keep the previous config")
	}
	if msg, isErr := m.StatusMessage(); !isErr || !strings.Contains(msg, "bad yaml") {
		t.Errorf("status = %q (error=%v)", msg, isErr)
	}
}

func TestConfigReloadKeepsActiveSection(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "5")
	cfg := testConfig()
	cfg.UI.DefaultSection = "toolkit"
	m = update(m, ui.ConfigReloadedMsg{Config: cfg})
	if m.ActiveID() != guide.Success {
		t.Errorf("reload changed the active section to %q", m.ActiveID())
	}
}

func TestUsageCardHiddenWhenNarrow(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(m.View(), "How to use this guide") {
		t.Error("usage card should show on wide terminals")
	}
	m = update(m, tea.WindowSizeMsg{Width: 50, Height: 40})
	if strings.Contains(m.View(), "How to use this guide") {
		t.Error("usage card should be hidden below 60 columns")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := ui.NewModel(testConfig())
	if got := m.View(); !strings.Contains(got, "Loading") {
		t.Errorf("View() before sizing = %q", got)
	}
}

func TestViewShowsActivePanel(t *testing.T) {
	m, _ := newTestModel(t)
	m = keys(m, "8")
	view := m.View()
	if !strings.Contains(view, "Toolkit") {
		t.Error("view should include the toolkit panel")
	}
	if !strings.Contains(view, guide.HubName) {
		t.Error("header should include the hub name")
	}
}
