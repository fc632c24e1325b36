package landing

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/toggle"
	"github.com/nfrund/cloudx/internal/ui"
)

// SiteFooter closes the page with the brand, social links and the legal row.
func SiteFooter(cat *content.Catalog, logoURL string, year int) g.Node {
	return siteFooter(cat, BrandMark(MarkFooter, logoURL, cat.Brand.Name, cat.Brand.FallbackText, toggle.Fallback{}), year)
}

// StaticSiteFooter is the footer for hosting without fragment endpoints.
func StaticSiteFooter(cat *content.Catalog, logoURL string, year int) g.Node {
	return siteFooter(cat, StaticBrandMark(MarkFooter, logoURL, cat.Brand.Name, cat.Brand.FallbackText), year)
}

func siteFooter(cat *content.Catalog, brand g.Node, year int) g.Node {
	f := cat.Footer
	return Footer(
		g.Attr("data-section", "footer"),
		Class("bg-bg-secondary border-t border-white/5 py-12 px-6"),
		Div(
			Class("max-w-[1200px] mx-auto flex flex-col md:flex-row justify-between items-center gap-6"),
			Div(
				Class("flex flex-col items-center md:items-start gap-4"),
				Div(brand),
			),
			Div(
				Class("flex items-center gap-4"),
				g.Map(f.Social, func(s content.SocialLink) g.Node {
					return A(
						Href(s.Href),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Class("text-text-muted hover:text-primary transition-colors p-2 border border-white/10 rounded-full hover:border-primary/50"),
						g.Attr("aria-label", s.Label),
						ui.Icon(s.Icon, "w-5 h-5"),
					)
				}),
			),
		),
		Div(
			Class("max-w-[1200px] mx-auto mt-12 pt-8 border-t border-white/5 flex flex-col md:flex-row justify-between items-center gap-4 text-xs text-text-muted font-light text-center md:text-left"),
			Div(
				Class("flex flex-col md:flex-row gap-2 md:gap-6"),
				Span(g.Text(f.Company)),
				g.If(f.CNPJ != "", g.Group{
					Span(Class("hidden md:inline text-white/20"), g.Text("|")),
					Span(g.Text("CNPJ: "+f.CNPJ)),
				}),
			),
			Div(Class("font-mono opacity-50"), g.Text(fmt.Sprintf("© %d %s", year, f.Copyright))),
		),
	)
}
