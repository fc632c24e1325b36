package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/ui"
)

// Squad presents the team roles next to the comparison table.
func Squad(s content.Squad, tr *reveal.Tracker) g.Node {
	return ui.Section(ui.SectionProps{ID: "squad", Name: "squad", Reveal: tr},
		Div(
			Class("grid grid-cols-1 lg:grid-cols-2 gap-20 items-start"),
			Div(
				ui.SectionHeader(ui.HeaderProps{Title: s.Title, Subtitle: s.Subtitle}),
				Div(
					Class("grid grid-cols-1 gap-4 mt-10"),
					g.Map(s.Members, func(m content.TeamMember) g.Node {
						return Div(
							Class("flex items-center gap-4 p-4 border-b border-white/5 hover:border-primary/50 transition-colors group"),
							ui.Icon(m.Icon, "w-5 h-5 text-text-muted group-hover:text-primary transition-colors"),
							Span(Class("text-white font-medium"), g.Text(m.Role)),
						)
					}),
				),
			),
			ComparisonTable(s.Comparison),
		),
	)
}

// ComparisonTable contrasts the squad model with traditional hiring.
func ComparisonTable(c content.Comparison) g.Node {
	return Div(
		g.Attr("data-section", "comparacao"),
		Class("bg-bg-secondary p-10 border border-white/5 rounded-sm"),
		H3(
			Class("text-xl font-bold text-white mb-8"),
			g.Text(c.Ours+" "),
			Span(Class("text-text-muted font-normal text-sm mx-2"), g.Text(c.Versus)),
			g.Text(" "+c.Theirs),
		),
		Div(
			Class("space-y-6"),
			g.Map(c.Rows, comparisonRow),
			g.If(c.Footnote != "", Div(
				Class("pt-6 mt-6 border-t border-white/5"),
				P(
					Class("text-xs text-text-muted leading-relaxed"),
					g.If(c.FootnoteLabel != "", Span(Class("text-accent-error"), g.Text(c.FootnoteLabel))),
					g.Text(" "+c.Footnote),
				),
			)),
		),
	)
}

func comparisonRow(r content.ComparisonRow) g.Node {
	mark := ui.LabelledIcon("check", "w-4 h-4 text-primary", "Incluso")
	if !r.Included {
		mark = ui.LabelledIcon("x", "w-4 h-4 text-accent-error", "Não incluso")
	}
	return Div(
		Class("flex items-center justify-between"),
		g.Attr("data-included", boolAttr(r.Included)),
		Span(Class("text-text-muted text-sm"), g.Text(r.Text)),
		Div(Class("flex items-center gap-2"), mark),
	)
}
