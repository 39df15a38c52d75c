package guide

// Tone colours a block the way the printed guide does: neutral cards, blue
// info notes, green confirmations and amber warnings.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneInfo
	ToneGood
	ToneWarn
)

func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneGood:
		return "good"
	case ToneWarn:
		return "warn"
	default:
		return "neutral"
	}
}

// Block is one piece of panel content. The set of block types is closed;
// consumers type-switch over the concrete types below.
type Block interface {
	isBlock()
}

// Pill is a short tag.
type Pill struct {
	Text string
	Tone Tone
}

// Pills is a row of tags.
type Pills struct {
	Items []Pill
}

// Paragraph is free text. Strong paragraphs are rendered bold.
type Paragraph struct {
	Text   string
	Strong bool
}

// List is a titled bullet list ("What it IS", "HR owns", ...).
type List struct {
	Title string
	Tone  Tone
	Items []string
}

// Table is a header row plus data rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Callout is a highlighted rule or note.
type Callout struct {
	Title string
	Text  string
	Tone  Tone
}

// Tile is one card in a Tiles group.
type Tile struct {
	Kicker  string // small label above the title, e.g. "70%"
	Title   string
	Text    string
	Bullets []string
}

// Tiles is a group of cards under an optional heading.
type Tiles struct {
	Title string
	Tone  Tone
	Items []Tile
}

// Template is a copy/paste-ready message.
type Template struct {
	Title string
	Text  string
	Tone  Tone
}

// TemplateTip is printed under every template.
const TemplateTip = "Tip: adapt names, keep it short, send as a friendly governance ping."

// Checklist is a titled list of things to tick off.
type Checklist struct {
	Title string
	Items []string
}

// Banner is the strong highlighted block used for recommendations.
type Banner struct {
	Title string
	Text  string
}

func (Pills) isBlock()     {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}
func (Table) isBlock()     {}
func (Callout) isBlock()   {}
func (Tiles) isBlock()     {}
func (Template) isBlock()  {}
func (Checklist) isBlock() {}
func (Banner) isBlock()    {}

// Panel is the content shown for one section.
type Panel struct {
	ID       SectionID
	Title    string
	Subtitle string
	Blocks   []Block
}

// Templates returns the copyable templates in the panel, in order.
func (p Panel) Templates() []Template {
	var out []Template
	for _, b := range p.Blocks {
		if t, ok := b.(Template); ok {
			out = append(out, t)
		}
	}
	return out
}
