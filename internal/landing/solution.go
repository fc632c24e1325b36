package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/ui"
)

// Solution presents the three pillars of the method.
func Solution(s content.Solution, formURL string, tr *reveal.Tracker) g.Node {
	return ui.Section(ui.SectionProps{ID: "solucao", Name: "solucao", Background: ui.BackgroundSecondary, Reveal: tr},
		ui.SectionHeader(ui.HeaderProps{Title: s.Title, Subtitle: s.Subtitle, Center: true}),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
			g.Map(s.Pillars, pillarCard),
		),
		Div(
			Class("mt-20 text-center"),
			ui.Button(ui.ButtonProps{Href: formURL, Variant: ui.VariantSecondary}, g.Text(s.CTA)),
		),
	)
}

func pillarCard(p content.Pillar) g.Node {
	return Div(
		Class("bg-bg-primary border border-white/5 p-10 hover:border-primary/50 transition-colors duration-300 group rounded-sm"),
		Div(Class("mb-8"), ui.Icon(p.Icon, "w-10 h-10 text-primary")),
		H3(Class("text-lg font-semibold text-white mb-4 tracking-wide"), g.Text(ui.Upper(p.Title))),
		P(Class("text-text-muted mb-8 font-light leading-relaxed h-12"), g.Text(p.Description)),
		Div(
			Class("border-t border-white/5 pt-6"),
			Ul(
				Class("space-y-3"),
				g.Map(p.Items, func(item string) g.Node {
					return Li(
						Class("flex items-center text-sm text-text-muted/80"),
						Span(Class("w-1 h-1 bg-primary rounded-full mr-3")),
						g.Text(item),
					)
				}),
			),
		),
	)
}
