package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/ui"
)

// Metrics is the results strip.
func Metrics(m content.Metrics, tr *reveal.Tracker) g.Node {
	return ui.Section(ui.SectionProps{
		ID:         "resultados",
		Name:       "resultados",
		Background: ui.BackgroundSecondary,
		Class:      "border-t border-white/5",
		Reveal:     tr,
	},
		Div(
			Class("flex justify-center"),
			Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-8 max-w-5xl mx-auto"),
				g.Map(m.Items, func(it content.Metric) g.Node {
					return Div(
						Class("text-center group"),
						Div(Class("text-3xl md:text-5xl font-light text-white mb-3 group-hover:text-primary transition-colors duration-500"), g.Text(it.Value)),
						Div(Class("text-xs tracking-widest text-text-muted"), g.Text(ui.Upper(it.Label))),
					)
				}),
			),
		),
	)
}
