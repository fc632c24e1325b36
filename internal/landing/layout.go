package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/seo"
	"github.com/nfrund/cloudx/internal/view"
)

// DocumentConfig is the document-level metadata of the page.
type DocumentConfig struct {
	Title        string
	Description  string
	CanonicalURL string
	Organization seo.Organization
	// Static drops htmx and loads the script that drives the static
	// variants instead.
	Static bool
}

// noscriptStyle shows reveal sections when scripts are disabled.
const noscriptStyle = `[data-reveal] > div { opacity: 1 !important; transform: none !important; }`

// Document wraps body in the html shell with the stylesheets and scripts the
// page relies on.
func Document(cfg DocumentConfig, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("pt-BR"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cfg.Title)),
				Meta(Name("description"), Content(cfg.Description)),
				g.If(cfg.CanonicalURL != "", Link(Rel("canonical"), Href(cfg.CanonicalURL))),

				Meta(g.Attr("property", "og:title"), Content(cfg.Title)),
				Meta(g.Attr("property", "og:description"), Content(cfg.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:locale"), Content("pt_BR")),

				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Playfair+Display:ital@1&display=swap")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("/static/js/tailwind.config.js")),
				Link(Rel("stylesheet"), Href("/static/css/app.css")),

				g.If(!cfg.Static, Script(Src("https://unpkg.com/htmx.org@2.0.4"))),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),

				view.AdaptTemplToGomponent(seo.Script(cfg.Organization)),
				NoScript(StyleEl(g.Raw(noscriptStyle))),
			),
			Body(
				Class("min-h-screen bg-bg-primary text-text-primary font-sans antialiased selection:bg-primary selection:text-white"),
				g.Group(body),

				Script(Src("/static/js/reveal.js"), Defer()),
				g.If(!cfg.Static, Script(Src("/static/js/brand.js"), Defer())),
				g.If(cfg.Static, Script(Src("/static/js/static.js"), Defer())),
			),
		),
	})
}
