package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/ui"
)

// Problem lists the pain points, closed by a summary card.
func Problem(p content.Problem, tr *reveal.Tracker) g.Node {
	return ui.Section(ui.SectionProps{ID: "problema", Name: "problema", Reveal: tr},
		ui.SectionHeader(ui.HeaderProps{Title: p.Title, HighlightWord: p.Highlight, Center: true}),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6 mb-12"),
			g.Map(p.PainPoints, func(pp content.PainPoint) g.Node {
				return Div(
					Class("group p-8 bg-transparent border border-white/10 hover:border-white/30 transition-colors duration-300 rounded-sm"),
					Div(
						Class("mb-6 w-8 h-8 flex items-center justify-center"),
						ui.Icon("x", "text-accent-error w-6 h-6"),
					),
					P(Class("text-text-secondary text-base font-light leading-relaxed"), g.Text(pp.Text)),
				)
			}),
			g.If(p.ClosingTitle != "", Div(
				Class("p-8 bg-white/5 border border-white/10 rounded-sm flex flex-col justify-center items-center text-center"),
				P(Class("text-lg font-medium text-white mb-2"), g.Text(p.ClosingTitle)),
				P(Class("text-text-muted font-light text-sm"), ui.Highlight(p.ClosingText, p.ClosingHighlight, "text-white")),
			)),
		),
	)
}
