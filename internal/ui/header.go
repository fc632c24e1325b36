package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// SplitHighlight splits title around the first occurrence of word. The match
// is literal and case-sensitive; ok is false when word is empty or absent.
func SplitHighlight(title, word string) (before, match, after string, ok bool) {
	if word == "" {
		return title, "", "", false
	}
	before, after, ok = strings.Cut(title, word)
	if !ok {
		return title, "", "", false
	}
	return before, word, after, true
}

// Highlight renders text with the first occurrence of word wrapped in a span
// carrying class. Without a match the text is rendered unchanged.
func Highlight(text, word, class string) g.Node {
	before, match, after, ok := SplitHighlight(text, word)
	if !ok {
		return g.Text(text)
	}
	return g.Group{
		g.Text(before),
		html.Span(html.Class(class), g.Text(match)),
		g.Text(after),
	}
}

// HeaderProps configures a section header.
type HeaderProps struct {
	Title         string
	Subtitle      string
	HighlightWord string
	Center        bool
	Class         string
}

// SectionHeader renders the title block that opens most sections.
func SectionHeader(p HeaderProps) g.Node {
	classes := "mb-16 md:mb-20"
	subtitle := "text-base md:text-lg text-text-muted max-w-2xl font-light leading-relaxed"
	divider := "h-[1px] w-12 bg-primary mt-8"
	if p.Center {
		classes += " text-center"
		subtitle += " mx-auto"
		divider += " mx-auto"
	}
	if p.Class != "" {
		classes += " " + p.Class
	}

	return html.Div(
		html.Class(classes),
		html.H2(
			html.Class("text-3xl md:text-4xl font-semibold text-text-primary leading-tight mb-4 tracking-tight"),
			Highlight(p.Title, p.HighlightWord, "text-primary"),
		),
		g.If(p.Subtitle != "", html.P(html.Class(subtitle), g.Text(p.Subtitle))),
		html.Div(html.Class(divider)),
	)
}
