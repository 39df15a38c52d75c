package guide

// ViewState is the guide's mutable state: which section is active and what
// the user typed into the search box. The zero value is ready to use and
// shows the default section with no filter.
//
// The active section is independent of the filter. A section hidden by the
// current query stays active until another one is selected.
type ViewState struct {
	active  SectionID
	query   string
	visible []Section // nil until the first SetQuery
}

// NewViewState returns a state showing the default section.
func NewViewState() ViewState {
	return ViewState{active: DefaultSection}
}

// SetQuery stores the search text as typed and recomputes the visible
// navigation list.
func (s *ViewState) SetQuery(text string) {
	s.query = text
	s.visible = VisibleSections(text)
}

// SetActive makes id the active section. Any id from the full section list
// is accepted, including one the current query hides. Ids outside the list
// are ignored and SetActive reports false.
func (s *ViewState) SetActive(id SectionID) bool {
	if !id.Valid() {
		return false
	}
	s.active = id
	return true
}

// Query returns the search text exactly as it was set.
func (s ViewState) Query() string {
	return s.query
}

// ActiveID returns the active section id.
func (s ViewState) ActiveID() SectionID {
	if s.active == "" {
		return DefaultSection
	}
	return s.active
}

// Active returns the active section.
func (s ViewState) Active() Section {
	sec, _ := SectionByID(s.ActiveID())
	return sec
}

// Visible returns the navigation list for the current query.
func (s ViewState) Visible() []Section {
	if s.visible == nil {
		return Sections()
	}
	out := make([]Section, len(s.visible))
	copy(out, s.visible)
	return out
}

// ActiveVisible reports whether the active section is in the filtered list.
func (s ViewState) ActiveVisible() bool {
	active := s.ActiveID()
	for _, sec := range s.Visible() {
		if sec.ID == active {
			return true
		}
	}
	return false
}

// Panel returns the content panel for the active section.
func (s ViewState) Panel() Panel {
	return RenderPanel(s.ActiveID())
}
