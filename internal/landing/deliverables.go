package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/ui"
)

// Deliverables lists what the engagement delivers.
func Deliverables(d content.Deliverables, tr *reveal.Tracker) g.Node {
	return ui.Section(ui.SectionProps{Name: "entregas", Reveal: tr},
		ui.SectionHeader(ui.HeaderProps{Title: d.Title, Subtitle: d.Subtitle}),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-1"),
			g.Map(d.Items, func(it content.Deliverable) g.Node {
				return Div(
					Class("flex gap-6 p-8 bg-bg-primary border border-white/5 hover:bg-bg-secondary transition-colors"),
					Div(Class("shrink-0 pt-1"), ui.Icon(it.Icon, "w-6 h-6 text-primary")),
					Div(
						H4(Class("text-base font-semibold text-white mb-2 tracking-wide"), g.Text(ui.Upper(it.Title))),
						P(Class("text-sm text-text-muted font-light"), g.Text(it.Description)),
					),
				)
			}),
		),
	)
}
