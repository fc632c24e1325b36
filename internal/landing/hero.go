package landing

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/ui"
)

// Hero is the opening banner. It is always rendered in its final state.
func Hero(h content.Hero, formURL string) g.Node {
	return ui.Section(ui.SectionProps{
		Name:  "hero",
		Class: "pt-40 pb-24 md:pt-52 md:pb-32 min-h-screen flex flex-col justify-center border-b border-white/5",
	},
		Div(
			Class("max-w-5xl mx-auto relative z-10"),
			Div(
				Class("flex flex-col items-start md:items-center md:text-center"),
				Div(
					Class("inline-block mb-8"),
					Span(
						Class("text-primary text-xs font-bold tracking-widest border border-primary/30 px-3 py-1 rounded-sm bg-primary/5"),
						g.Text(ui.Upper(h.Eyebrow)),
					),
				),
				H1(
					Class("text-4xl md:text-6xl lg:text-7xl font-semibold text-white leading-[1.1] mb-8 tracking-tight"),
					heroTitle(h.Title, h.Highlight),
				),
				P(
					Class("text-lg md:text-xl text-text-muted mb-12 max-w-2xl mx-auto leading-relaxed font-light"),
					g.Text(h.Subtitle),
				),
				Div(
					Class("flex flex-col sm:flex-row items-center gap-6 w-full md:w-auto"),
					ui.Button(ui.ButtonProps{
						Href:     formURL,
						Variant:  ui.VariantTertiary,
						WithIcon: true,
						Class:    "w-full sm:w-auto",
					}, g.Text(h.CTA)),
					g.If(h.Assurance != "", Div(
						Class("flex items-center gap-3 text-text-muted text-xs tracking-wide"),
						ui.Icon("shield-check", "w-4 h-4 text-primary"),
						Span(g.Text(ui.Upper(h.Assurance))),
					)),
				),
			),
		),
	)
}

// heroTitle renders each line of the title with a break between lines. The
// highlight applies to its first occurrence across the whole title.
func heroTitle(title, highlight string) g.Node {
	lines := strings.Split(title, "\n")
	nodes := make(g.Group, 0, 2*len(lines))
	done := false
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Br(Class("hidden md:block")))
		}
		if !done {
			if _, _, _, ok := ui.SplitHighlight(line, highlight); ok {
				nodes = append(nodes, ui.Highlight(line, highlight, "text-primary italic font-serif"))
				done = true
				continue
			}
		}
		nodes = append(nodes, g.Text(line))
	}
	return nodes
}
