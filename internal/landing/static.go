package landing

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/ui"
)

// The static variants below render the same regions for hosting without the
// fragment endpoints. State lives in native <details> elements; static.js
// closes the menu on navigation and swaps a broken logo for its text mark.

// StaticNavMenu is the mobile menu as a disclosure. The panel is always in
// the markup; the browser shows it while the element is open.
func StaticNavMenu(cat *content.Catalog, formURL string) g.Node {
	return Details(
		ID(NavMenuID),
		Class("md:hidden group"),
		g.Attr("data-menu", "static"),
		Summary(
			Class("list-none cursor-pointer text-text-primary p-2 [&::-webkit-details-marker]:hidden"),
			g.Attr("aria-label", "Menu"),
			g.Attr("aria-controls", NavMenuID+"-panel"),
			ui.Icon("menu", "w-6 h-6 group-open:hidden"),
			ui.Icon("x", "w-6 h-6 hidden group-open:inline-block"),
		),
		Div(
			ID(NavMenuID+"-panel"),
			Class("absolute top-24 left-0 w-full bg-bg-primary border-b border-white/5 p-8 flex flex-col gap-6 h-[calc(100vh-6rem)]"),
			g.Map(cat.Nav.Links, func(l content.NavLink) g.Node {
				return A(Href(l.Href), Class("text-text-primary text-xl font-light"), g.Text(l.Label))
			}),
			ui.Button(ui.ButtonProps{Href: formURL, FullWidth: true}, g.Text(cat.Nav.MobileCTA)),
		),
	)
}

// StaticFAQList renders every entry as a disclosure sharing one group name,
// so opening an entry closes the previous one. All answers are in the markup.
func StaticFAQList(entries []content.FAQEntry) g.Node {
	items := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		items = append(items, Details(
			Name("faq"),
			Class("group border transition-all duration-300 rounded-sm overflow-hidden border-white/10 bg-transparent open:border-primary/50 open:bg-white/5"),
			g.Attr("data-faq-index", fmt.Sprint(i)),
			Summary(
				Class("list-none flex items-center justify-between w-full p-6 text-left cursor-pointer focus:outline-none [&::-webkit-details-marker]:hidden"),
				Span(Class("text-base md:text-lg font-medium transition-colors text-text-secondary group-open:text-white"), g.Text(e.Question)),
				Div(
					Class("p-1 rounded-full border transition-all border-white/20 text-text-muted group-open:border-primary group-open:text-primary group-open:rotate-180"),
					ui.Icon("plus", "w-4 h-4 group-open:hidden"),
					ui.Icon("minus", "w-4 h-4 hidden group-open:inline-block"),
				),
			),
			Div(
				ID(fmt.Sprintf("faq-answer-%d", i)),
				Class("px-6 pb-6 text-text-muted font-light leading-relaxed"),
				answer(e.Answer),
			),
		))
	}
	return Div(
		ID(FAQListID),
		Class("max-w-3xl mx-auto space-y-4"),
		g.Attr("data-open", "static"),
		g.Group(items),
	)
}

// StaticBrandMark renders the logo followed by its hidden text mark. When no
// logo is configured only the text mark is rendered.
func StaticBrandMark(slot MarkSlot, logoURL, alt, fallbackText string) g.Node {
	if logoURL == "" {
		return BrandText(slot, fallbackText)
	}
	return g.Group{
		Img(
			Src(logoURL),
			Alt(alt),
			Class(brandImageClass(slot)),
			g.Attr("data-brand", slot.String()),
			g.Attr("data-brand-static", ""),
		),
		Span(Class("hidden"), g.Attr("data-brand-fallback", slot.String()), BrandText(slot, fallbackText)),
	}
}
