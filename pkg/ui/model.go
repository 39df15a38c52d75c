package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/handover/pkg/config"
	"github.com/vanderheijden86/handover/pkg/debug"
	"github.com/vanderheijden86/handover/pkg/guide"
	"github.com/vanderheijden86/handover/pkg/metrics"
)

// focus is the pane that receives key presses.
type focus int

const (
	focusNav focus = iota
	focusSearch
)

func (f focus) String() string {
	if f == focusSearch {
		return "search"
	}
	return "nav"
}

// Layout constants, in terminal rows and cells.
const (
	headerHeight    = 2
	statusHeight    = 1
	narrowWidth     = 60 // below this the usage card is hidden
	minMainWidth    = 20
	minSidebarWidth = 12
)

// ConfigReloadedMsg carries a freshly loaded config into the running UI.
// A non-nil Err keeps the current config and reports the problem.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

// Option customizes a Model at construction.
type Option func(*Model)

// WithQuery pre-fills the search box.
func WithQuery(q string) Option {
	return func(m *Model) {
		m.search.SetValue(q)
		m.state.SetQuery(q)
	}
}

// WithSection overrides the configured start section. Unknown ids are
// ignored.
func WithSection(id guide.SectionID) Option {
	return func(m *Model) {
		m.state.SetActive(id)
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// Model is the handover guide TUI: a filterable section list on the left
// and the active section's panel on the right.
type Model struct {
	state guide.ViewState
	cfg   config.Config
	theme Theme

	search   textinput.Model
	viewport viewport.Model
	md       *MarkdownRenderer

	focus       focus
	cursor      int // index into the visible list
	templateIdx int // next toolkit template to copy
	showHelp    bool

	statusMsg     string
	statusIsError bool

	width  int
	height int
	ready  bool

	rendered guide.SectionID // section currently loaded in the viewport
	copyFn   func(string) error
}

// NewModel builds the UI from cfg.
func NewModel(cfg config.Config, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "search sections..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	state := guide.NewViewState()
	state.SetActive(cfg.StartSection())

	m := Model{
		state:    state,
		cfg:      cfg,
		theme:    DefaultTheme(lipgloss.DefaultRenderer()),
		search:   ti,
		viewport: viewport.New(0, 0),
		copyFn:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.syncCursorToActive()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshContent(false)
		return m, nil

	case ConfigReloadedMsg:
		return m.applyConfig(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			return m.handleHelpKeys(msg)
		}
		if m.focus == focusSearch {
			return m.handleSearchKeys(msg)
		}
		return m.handleNavKeys(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc":
		m.showHelp = false
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleNavKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.statusIsError = false

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "esc":
		if m.state.Query() != "" {
			m.setQuery("")
			m.syncCursorToActive()
		}
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "enter", " ":
		m.activateCursor()
	case "1", "2", "3", "4", "5", "6", "7", "8":
		if sec, ok := guide.SectionAt(int(key[0] - '1')); ok {
			m.activate(sec.ID)
			m.syncCursorToActive()
		}
	case "tab":
		m.cycleActive(1)
	case "shift+tab":
		m.cycleActive(-1)
	case "pgdown", "ctrl+d":
		m.scroll(m.halfPage())
	case "pgup", "ctrl+u":
		m.scroll(-m.halfPage())
	case "J", "ctrl+e":
		m.scroll(1)
	case "K", "ctrl+y":
		m.scroll(-1)
	case "g", "home":
		m.viewport.GotoTop()
	case "G", "end":
		m.viewport.GotoBottom()
	case "c":
		m.copyNextTemplate()
	case "y":
		m.copyPanel()
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setQuery("")
		m.leaveSearch()
		m.syncCursorToActive()
		return m, nil
	case "enter":
		m.activateCursor()
		m.leaveSearch()
		return m, nil
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, nil
	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.state.SetQuery(after)
		m.cursor = 0
	}
	return m, cmd
}

func (m *Model) leaveSearch() {
	m.focus = focusNav
	m.search.Blur()
}

// setQuery updates both the search box and the view state.
func (m *Model) setQuery(q string) {
	m.search.SetValue(q)
	m.state.SetQuery(q)
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.state.Visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor, 0, n-1)
}

// syncCursorToActive moves the cursor onto the active section when it is
// visible.
func (m *Model) syncCursorToActive() {
	active := m.state.ActiveID()
	for i, sec := range m.state.Visible() {
		if sec.ID == active {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) activateCursor() {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return
	}
	m.activate(visible[m.cursor].ID)
}

func (m *Model) cycleActive(delta int) {
	i := guide.IndexOf(m.state.ActiveID())
	next := (i + delta + guide.SectionCount) % guide.SectionCount
	if sec, ok := guide.SectionAt(next); ok {
		m.activate(sec.ID)
		m.syncCursorToActive()
	}
}

func (m *Model) activate(id guide.SectionID) {
	if !m.state.SetActive(id) {
		return
	}
	debug.Log("ui: active section %s", id)
	m.refreshContent(false)
}

func (m *Model) scroll(delta int) {
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

func (m Model) halfPage() int {
	if h := m.viewport.Height / 2; h > 0 {
		return h
	}
	return 1
}

func (m *Model) copyNextTemplate() {
	templates := guide.RenderPanel(guide.Toolkit).Templates()
	if len(templates) == 0 {
		return
	}
	idx := m.templateIdx % len(templates)
	t := templates[idx]
	if err := m.copyFn(t.Text); err != nil {
		m.statusMsg = fmt.Sprintf("Clipboard error: %v", err)
		m.statusIsError = true
		return
	}
	m.templateIdx = idx + 1
	m.statusMsg = fmt.Sprintf("Copied template %d/%d: %s", idx+1, len(templates), t.Title)
}

func (m *Model) copyPanel() {
	p := m.state.Panel()
	if err := m.copyFn(p.Markdown()); err != nil {
		m.statusMsg = fmt.Sprintf("Clipboard error: %v", err)
		m.statusIsError = true
		return
	}
	m.statusMsg = fmt.Sprintf("Copied %q as markdown", p.Title)
}

func (m Model) applyConfig(msg ConfigReloadedMsg) Model {
	if msg.Err != nil {
		m.statusMsg = fmt.Sprintf("Config reload failed: %v", msg.Err)
		m.statusIsError = true
		return m
	}
	m.cfg = msg.Config
	m.layout()
	m.refreshContent(true)
	m.statusMsg = "Config reloaded"
	m.statusIsError = false
	return m
}

// sidebarWidth is the configured width, shrunk to leave room for the panel.
func (m Model) sidebarWidth() int {
	w := config.ClampSidebarWidth(m.cfg.UI.SidebarWidth)
	if m.width > 0 && w > m.width-minMainWidth {
		w = m.width - minMainWidth
	}
	if w < minSidebarWidth {
		w = minSidebarWidth
	}
	return w
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight - statusHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) layout() {
	sw := m.sidebarWidth()
	m.search.Width = sw - 4

	mainWidth := m.width - sw - 1
	if mainWidth < 1 {
		mainWidth = 1
	}
	m.viewport.Width = mainWidth - 1
	m.viewport.Height = m.bodyHeight()

	wrap := m.viewport.Width
	if ww := m.cfg.UI.WordWrap; ww > 0 && ww < wrap {
		wrap = ww
	}
	if m.md == nil {
		m.md = NewMarkdownRenderer(wrap, m.cfg.UI.GlamourStyle)
	} else {
		m.md.Configure(wrap, m.cfg.UI.GlamourStyle)
	}
}

// refreshContent loads the active panel into the viewport. Scroll position
// resets when the section changed unless keepOffset is set.
func (m *Model) refreshContent(keepOffset bool) {
	if !m.ready || m.md == nil {
		return
	}
	stop := metrics.Timer(metrics.PanelRender)
	out, err := m.md.Render(m.state.Panel().Markdown())
	stop()
	if err != nil {
		debug.Log("ui: rendering %s as raw markdown: %v", m.state.ActiveID(), err)
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(out)
	if keepOffset || m.rendered == m.state.ActiveID() {
		m.viewport.SetYOffset(offset)
	} else {
		m.viewport.GotoTop()
	}
	m.rendered = m.state.ActiveID()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading handover guide..."
	}

	header := m.renderHeader()

	sw := m.sidebarWidth()
	sidebar := m.renderSidebar(sw, m.bodyHeight())

	var main string
	if m.showHelp {
		main = lipgloss.Place(m.viewport.Width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			RenderHelp(m.theme, m.viewport.Width, m.bodyHeight()))
	} else {
		main = m.theme.Renderer.NewStyle().PaddingLeft(1).Render(m.viewport.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatusBar())
}

func (m Model) renderHeader() string {
	t := m.theme
	r := t.Renderer
	hero := guide.PageHero()

	title := t.Header.Width(m.width).MaxWidth(m.width).
		Render(truncate(guide.GuideTitle+"  ·  "+guide.HubName, m.width-2))

	var parts []string
	for _, p := range hero.Pills {
		parts = append(parts, t.RenderPill(p))
	}
	for _, s := range hero.Stats {
		parts = append(parts, t.RenderStat(s))
	}
	parts = append(parts, t.MutedText.Render("Updated "+hero.LastUpdated))
	meta := r.NewStyle().MaxWidth(m.width).Render(" " + strings.Join(parts, "  "))

	return title + "\n" + meta
}

func (m Model) renderStatusBar() string {
	t := m.theme
	r := t.Renderer

	mode := r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B1B33"}).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(m.focus.String()))

	var msg string
	switch {
	case m.statusMsg != "" && m.statusIsError:
		msg = t.WarnText.Render(m.statusMsg)
	case m.statusMsg != "":
		msg = t.GoodText.Render(m.statusMsg)
	case !m.state.ActiveVisible():
		msg = t.WarnText.Render(fmt.Sprintf("active: %s (hidden by filter)", m.state.Active().Label))
	default:
		msg = t.MutedText.Render(fmt.Sprintf("%d/%d sections", len(m.state.Visible()), guide.SectionCount))
	}

	scroll := t.MutedText.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	hints := t.MutedText.Render("/ search · 1-8 jump · c template · y copy · ? help · q quit")

	left := mode + " " + msg
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints) - lipgloss.Width(scroll) - 2
	if gap < 1 {
		return r.NewStyle().MaxWidth(m.width).Render(left + "  " + scroll)
	}
	return left + strings.Repeat(" ", gap) + hints + "  " + scroll
}

// ActiveID returns the active section.
func (m Model) ActiveID() guide.SectionID {
	return m.state.ActiveID()
}

// Query returns the search text.
func (m Model) Query() string {
	return m.state.Query()
}

// VisibleSections returns the filtered navigation list.
func (m Model) VisibleSections() []guide.Section {
	return m.state.Visible()
}

// Cursor returns the highlighted row in the navigation list.
func (m Model) Cursor() int {
	return m.cursor
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.focus == focusSearch
}

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// StatusMessage returns the status bar message and whether it is an error.
func (m Model) StatusMessage() (string, bool) {
	return m.statusMsg, m.statusIsError
}

// Config returns the config currently applied.
func (m Model) Config() config.Config {
	return m.cfg
}

// ScrollOffset returns the panel's vertical scroll position.
func (m Model) ScrollOffset() int {
	return m.viewport.YOffset
}
