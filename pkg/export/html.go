package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/vanderheijden86/handover/pkg/guide"
	"github.com/vanderheijden86/handover/pkg/metrics"
	"github.com/vanderheijden86/handover/pkg/version"
)

// HTMLOptions controls the static page.
type HTMLOptions struct {
	Title     string    // defaults to the guide title
	Generated time.Time // omitted from the page when zero
}

type navLink struct {
	Anchor string
	Label  string
	Icon   string
}

type pageData struct {
	Title       string
	Hub         string
	Hero        guide.Hero
	Nav         []navLink
	Content     template.HTML
	Footer      string
	Version     string
	GeneratedAt string
}

// newMarkdown returns the converter used for the page. Raw HTML is passed
// through so the section anchors survive.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// RenderHTML writes the guide as a self-contained HTML page.
func RenderHTML(w io.Writer, opts HTMLOptions) error {
	defer metrics.Timer(metrics.HTMLExport)()

	var body bytes.Buffer
	if err := newMarkdown().Convert([]byte(guide.GuideMarkdown()), &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	data := pageData{
		Title:   opts.Title,
		Hub:     guide.HubName,
		Hero:    guide.PageHero(),
		Content: template.HTML(body.String()),
		Footer:  guide.Footer,
		Version: version.Version,
	}
	if data.Title == "" {
		data.Title = guide.GuideTitle
	}
	if !opts.Generated.IsZero() {
		data.GeneratedAt = opts.Generated.UTC().Format(time.RFC3339)
	}
	for _, sec := range guide.Sections() {
		data.Nav = append(data.Nav, navLink{
			Anchor: guide.AnchorFor(sec.ID),
			Label:  sec.Label,
			Icon:   sec.Icon,
		})
	}

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// SaveHTML writes the HTML page to path.
func SaveHTML(path string, opts HTMLOptions) error {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving html: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="handover {{.Version}}">
<title>{{.Title}}</title>
<style>
:root {
  --navy: #002D72;
  --blue: #0071CE;
  --ice: #F4F8FF;
  --ink: #0B1B33;
  --sub: #51607A;
  --line: #DCE6F5;
  --warn: #7A4B00;
  --warn-bg: #FFFBEB;
  --good: #055F2B;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--ink); background: var(--ice); }
header { background: linear-gradient(135deg, var(--navy), var(--blue)); color: #fff; padding: 28px 32px; }
header h1 { margin: 0 0 6px; font-size: 26px; }
header .hub { opacity: .85; font-size: 14px; }
header .intro { max-width: 760px; margin: 12px 0; line-height: 1.5; }
.pills span { display: inline-block; margin-right: 8px; padding: 3px 10px; border-radius: 999px; background: rgba(255,255,255,.18); font-size: 12px; font-weight: 600; }
.stats { display: flex; gap: 12px; margin-top: 16px; flex-wrap: wrap; }
.stat { background: rgba(255,255,255,.12); border-radius: 12px; padding: 10px 14px; min-width: 140px; }
.stat b { display: block; font-size: 22px; }
.layout { display: grid; grid-template-columns: 260px 1fr; gap: 24px; padding: 24px 32px; max-width: 1280px; margin: 0 auto; }
nav { position: sticky; top: 16px; align-self: start; background: #fff; border: 1px solid var(--line); border-radius: 14px; padding: 14px; }
nav a { display: block; padding: 8px 10px; border-radius: 10px; color: var(--navy); text-decoration: none; font-weight: 600; }
nav a:hover { background: var(--ice); }
main { background: #fff; border: 1px solid var(--line); border-radius: 14px; padding: 8px 28px 28px; min-width: 0; }
main h2 { color: var(--navy); border-bottom: 2px solid var(--line); padding-bottom: 6px; margin-top: 32px; }
main h3 { color: var(--blue); }
table { border-collapse: collapse; width: 100%; margin: 12px 0; }
th, td { border: 1px solid var(--line); padding: 8px 10px; text-align: left; vertical-align: top; }
th { background: var(--ice); color: var(--navy); }
blockquote { margin: 12px 0; padding: 10px 14px; border-left: 4px solid var(--blue); background: var(--ice); border-radius: 0 10px 10px 0; }
pre { background: var(--ice); border: 1px solid var(--line); border-radius: 10px; padding: 12px; white-space: pre-wrap; }
code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 13px; }
footer { color: var(--sub); font-size: 13px; text-align: center; padding: 8px 32px 32px; }
@media (max-width: 820px) { .layout { grid-template-columns: 1fr; } nav { position: static; } }
</style>
</head>
<body>
<header>
  <h1>{{.Hero.Title}}</h1>
  <div class="hub">{{.Hub}}</div>
  <p class="intro">{{.Hero.Intro}}</p>
  <div class="pills">{{range .Hero.Pills}}<span>{{.Text}}</span>{{end}}<span>Last updated: {{.Hero.LastUpdated}}</span></div>
  <div class="stats">{{range .Hero.Stats}}<div class="stat"><b>{{.Value}}</b>{{.Label}}</div>{{end}}</div>
</header>
<div class="layout">
  <nav>
    {{range .Nav}}<a href="#{{.Anchor}}">{{.Icon}} {{.Label}}</a>
    {{end}}
  </nav>
  <main>
{{.Content}}
  </main>
</div>
<footer>{{.Footer}}{{if .GeneratedAt}} · generated {{.GeneratedAt}}{{end}}</footer>
</body>
</html>
`
