package landing

import (
	"fmt"
	"log/slog"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/reveal"
	"github.com/nfrund/cloudx/internal/toggle"
	"github.com/nfrund/cloudx/internal/ui"
)

// FAQ is the accordion of frequently asked questions.
func FAQ(f content.FAQ, acc toggle.Accordion, tr *reveal.Tracker) g.Node {
	return faqSection(f, FAQList(f.Entries, acc), tr)
}

// StaticFAQ is the accordion for hosting without fragment endpoints.
func StaticFAQ(f content.FAQ, tr *reveal.Tracker) g.Node {
	return faqSection(f, StaticFAQList(f.Entries), tr)
}

func faqSection(f content.FAQ, list g.Node, tr *reveal.Tracker) g.Node {
	return ui.Section(ui.SectionProps{
		ID:         "faq",
		Name:       "faq",
		Background: ui.BackgroundSecondary,
		Class:      "border-t border-white/5",
		Reveal:     tr,
	},
		ui.SectionHeader(ui.HeaderProps{Title: f.Title, Center: true}),
		list,
	)
}

// FAQList renders every entry with at most one expanded. Collapsed answers
// stay in the markup, hidden from view and from assistive technology.
func FAQList(entries []content.FAQEntry, acc toggle.Accordion) g.Node {
	items := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		items = append(items, faqItem(i, e, acc))
	}
	return Div(
		ID(FAQListID),
		Class("max-w-3xl mx-auto space-y-4"),
		g.Attr("data-open", acc.Param()),
		g.Group(items),
	)
}

func faqItem(i int, e content.FAQEntry, acc toggle.Accordion) g.Node {
	open := acc.IsOpen(i)
	answerID := fmt.Sprintf("faq-answer-%d", i)

	frame := "border transition-all duration-300 rounded-sm overflow-hidden border-white/10 bg-transparent"
	question := "text-base md:text-lg font-medium transition-colors text-text-secondary"
	badge := "p-1 rounded-full border transition-all border-white/20 text-text-muted"
	panel := "overflow-hidden transition-all duration-300 ease-in-out max-h-0 opacity-0"
	icon := "plus"
	if open {
		frame = "border transition-all duration-300 rounded-sm overflow-hidden border-primary/50 bg-white/5"
		question = "text-base md:text-lg font-medium transition-colors text-white"
		badge = "p-1 rounded-full border transition-all border-primary text-primary rotate-180"
		panel = "overflow-hidden transition-all duration-300 ease-in-out max-h-96 opacity-100"
		icon = "minus"
	}

	return Div(
		Class(frame),
		g.Attr("data-faq-index", fmt.Sprint(i)),
		Button(
			Type("button"),
			Class("flex items-center justify-between w-full p-6 text-left focus:outline-none"),
			g.Attr("aria-expanded", boolAttr(open)),
			g.Attr("aria-controls", answerID),
			hx.Get(faqURL(acc, i)),
			hx.Target("#"+FAQListID),
			hx.Swap("outerHTML"),
			Span(Class(question), g.Text(e.Question)),
			Div(Class(badge), ui.Icon(icon, "w-4 h-4")),
		),
		Div(
			ID(answerID),
			Class(panel),
			g.If(!open, g.Attr("aria-hidden", "true")),
			Div(Class("px-6 pb-6 text-text-muted font-light leading-relaxed"), answer(e.Answer)),
		),
	)
}

func answer(src string) g.Node {
	rendered, err := content.RenderMarkdown(src)
	if err != nil {
		slog.Warn("FAQ answer markdown failed, rendering as text", "error", err)
		return P(g.Text(src))
	}
	return g.Raw(rendered)
}
