package landing

import (
	"io"
	"log/slog"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/seo"
	"github.com/nfrund/cloudx/internal/toggle"
)

// Options are the per-deployment settings of a page.
type Options struct {
	FormURL string
	LogoURL string
	BaseURL string
	// Observer watches section visibility. Nil disables the reveal
	// animation and renders every section visible.
	Observer reveal.Observer
	// Now stamps the footer year. Defaults to time.Now.
	Now func() time.Time
	// Static renders the variants that work without the fragment
	// endpoints, for hosting the page as plain files.
	Static bool
}

// Sections animated on scroll, in page order.
var revealTargets = []string{"problema", "solucao", "squad", "resultados", "entregas", "agendar", "faq"}

// Page is one render of the landing page. It owns the reveal trackers of its
// sections; Close releases them.
type Page struct {
	cat      *content.Catalog
	opts     Options
	trackers map[string]*reveal.Tracker
}

// NewPage mounts a reveal tracker per animated section.
func NewPage(cat *content.Catalog, opts Options) *Page {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	p := &Page{
		cat:      cat,
		opts:     opts,
		trackers: make(map[string]*reveal.Tracker, len(revealTargets)),
	}
	for _, target := range revealTargets {
		tr := reveal.NewTracker(target, reveal.DefaultConfig)
		if err := tr.Mount(opts.Observer); err != nil {
			slog.Warn("Section reveal disabled", "section", target, "error", err)
		}
		p.trackers[target] = tr
	}
	return p
}

// Tracker returns the tracker of the named section, nil if it is not animated.
func (p *Page) Tracker(name string) *reveal.Tracker {
	return p.trackers[name]
}

// Close disposes every watch acquired by the page.
func (p *Page) Close() {
	for _, tr := range p.trackers {
		tr.Unmount()
	}
}

// Node builds the full document.
func (p *Page) Node() g.Node {
	cat, opts := p.cat, p.opts
	year := opts.Now().Year()

	nav := Navbar(cat, opts.FormURL, opts.LogoURL, toggle.NewMenu(toggle.MenuClosed))
	faq := FAQ(cat.FAQ, toggle.NewAccordion(), p.Tracker("faq"))
	footer := SiteFooter(cat, opts.LogoURL, year)
	if opts.Static {
		nav = StaticNavbar(cat, opts.FormURL, opts.LogoURL)
		faq = StaticFAQ(cat.FAQ, p.Tracker("faq"))
		footer = StaticSiteFooter(cat, opts.LogoURL, year)
	}

	return Document(DocumentConfig{
		Title:        cat.Brand.Name + " | " + cat.Brand.FallbackText,
		Description:  cat.Brand.Description,
		CanonicalURL: canonical(opts.BaseURL),
		Organization: seo.NewOrganization(cat, opts.BaseURL, opts.LogoURL),
		Static:       opts.Static,
	},
		nav,
		Main(
			Hero(cat.Hero, opts.FormURL),
			Problem(cat.Problem, p.Tracker("problema")),
			Solution(cat.Solution, opts.FormURL, p.Tracker("solucao")),
			Squad(cat.Squad, p.Tracker("squad")),
			Metrics(cat.Metrics, p.Tracker("resultados")),
			Deliverables(cat.Deliverables, p.Tracker("entregas")),
			FinalCTA(cat.FinalCTA, opts.FormURL, p.Tracker("agendar")),
			faq,
		),
		footer,
	)
}

// Render writes the full document to w.
func (p *Page) Render(w io.Writer) error {
	return p.Node().Render(w)
}

func canonical(base string) string {
	if base == "" {
		return ""
	}
	return base + "/"
}
