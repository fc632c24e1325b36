package landing

import (
	"log/slog"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/ui"
)

// FinalCTA is the closing call to schedule a meeting, followed by the
// numbered steps of the application process.
func FinalCTA(f content.FinalCTA, formURL string, tr *reveal.Tracker) g.Node {
	variant, ok := ui.ParseVariant(f.Variant)
	if !ok && f.Variant != "" {
		slog.Warn("Unknown CTA variant, using primary", "variant", f.Variant)
	}
	return ui.Section(ui.SectionProps{
		ID:     "agendar",
		Name:   "agendar",
		Class:  "border-t border-white/5 py-32 text-center",
		Reveal: tr,
	},
		Div(
			Class("max-w-3xl mx-auto"),
			H2(Class("text-3xl md:text-5xl font-semibold text-white mb-8 tracking-tight"), g.Text(f.Title)),
			P(Class("text-lg text-text-muted mb-12 font-light"), g.Text(f.Text)),
			ui.Button(ui.ButtonProps{Variant: variant, Href: formURL}, g.Text(f.CTA)),
			g.If(f.Note != "", P(Class("mt-8 text-text-muted text-xs tracking-widest"), g.Text(ui.Upper(f.Note)))),
			g.If(len(f.Steps) > 0, Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-6 max-w-4xl mx-auto mt-20 text-left"),
				g.Group(stepCards(f.Steps)),
			)),
		),
	)
}

func stepCards(steps []content.Step) []g.Node {
	nodes := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		nodes = append(nodes, Div(
			Class("bg-bg-secondary border border-white/10 p-6 rounded-sm flex gap-4 items-start hover:border-white/20 transition-colors"),
			Span(
				Class("flex-shrink-0 w-8 h-8 flex items-center justify-center bg-primary/10 text-primary font-bold rounded-sm border border-primary/20"),
				g.Text(strconv.Itoa(i+1)),
			),
			Div(
				H4(Class("text-white font-medium mb-2"), g.Text(s.Title)),
				P(Class("text-sm text-text-muted font-light leading-relaxed"), g.Text(s.Text)),
			),
		))
	}
	return nodes
}
