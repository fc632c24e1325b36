package landing

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/toggle"
	"github.com/nfrund/cloudx/internal/ui"
)

// Navbar is the fixed top bar. The mobile menu starts in the given state.
func Navbar(cat *content.Catalog, formURL, logoURL string, menu toggle.Menu) g.Node {
	return navbar(cat, formURL,
		BrandMark(MarkNav, logoURL, cat.Brand.Name, cat.Brand.FallbackText, toggle.Fallback{}),
		NavMenu(cat, formURL, menu),
	)
}

// StaticNavbar is the top bar for hosting without fragment endpoints.
func StaticNavbar(cat *content.Catalog, formURL, logoURL string) g.Node {
	return navbar(cat, formURL,
		StaticBrandMark(MarkNav, logoURL, cat.Brand.Name, cat.Brand.FallbackText),
		StaticNavMenu(cat, formURL),
	)
}

func navbar(cat *content.Catalog, formURL string, brand, menu g.Node) g.Node {
	return Nav(
		g.Attr("data-section", "nav"),
		Class("fixed top-0 left-0 w-full z-50 bg-bg-primary/95 backdrop-blur-sm border-b border-white/5 transition-all duration-300"),
		Div(
			Class("max-w-[1200px] mx-auto px-6 h-24 flex items-center justify-between"),
			Div(
				Class("flex items-center flex-shrink-0"),
				A(
					Href("#"),
					g.Attr("aria-label", cat.Brand.Name),
					brand,
				),
			),
			Div(
				Class("hidden md:flex items-center gap-10"),
				g.Map(cat.Nav.Links, func(l content.NavLink) g.Node {
					return A(
						Href(l.Href),
						Class("text-text-muted hover:text-white transition-colors text-sm font-medium tracking-wide"),
						g.Text(ui.Upper(l.Label)),
					)
				}),
				ui.Button(ui.ButtonProps{
					Href:  formURL,
					Class: "py-2 px-5 text-xs tracking-widest",
				}, g.Text(ui.Upper(cat.Nav.CTA))),
			),
			menu,
		),
	)
}

// NavMenu is the mobile menu region: the toggle control and, when open, the
// link panel. It is the unit swapped by the menu fragment.
func NavMenu(cat *content.Catalog, formURL string, menu toggle.Menu) g.Node {
	icon, label := "menu", "Abrir menu"
	if menu.IsOpen() {
		icon, label = "x", "Fechar menu"
	}

	return Div(
		ID(NavMenuID),
		Class("md:hidden"),
		g.Attr("data-menu", menu.State().String()),
		Button(
			Type("button"),
			Class("text-text-primary p-2"),
			g.Attr("aria-label", label),
			g.Attr("aria-expanded", boolAttr(menu.IsOpen())),
			g.Attr("aria-controls", NavMenuID+"-panel"),
			hx.Get(menuURL(menu.State(), EventToggle)),
			hx.Target("#"+NavMenuID),
			hx.Swap("outerHTML"),
			ui.Icon(icon, "w-6 h-6"),
		),
		g.If(menu.IsOpen(), Div(
			ID(NavMenuID+"-panel"),
			Class("absolute top-24 left-0 w-full bg-bg-primary border-b border-white/5 p-8 flex flex-col gap-6 h-[calc(100vh-6rem)]"),
			g.Map(cat.Nav.Links, func(l content.NavLink) g.Node {
				return A(
					Href(l.Href),
					Class("text-text-primary text-xl font-light"),
					hx.Get(menuURL(menu.State(), EventClose)),
					hx.Target("#"+NavMenuID),
					hx.Swap("outerHTML show:"+l.Href+":top"),
					g.Text(l.Label),
				)
			}),
			ui.Button(ui.ButtonProps{Href: formURL, FullWidth: true}, g.Text(cat.Nav.MobileCTA)),
		)),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
