package ui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Icon renders a decorative lucide icon through iconify.
func Icon(name, class string) g.Node {
	return html.Span(
		html.Class(iconClasses(class)),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// LabelledIcon is an icon that carries meaning on its own, such as the only
// content of a link.
func LabelledIcon(name, class, label string) g.Node {
	return html.Span(
		html.Class(iconClasses(class)),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("role", "img"),
		g.Attr("aria-label", label),
	)
}

func iconClasses(extra string) string {
	if extra == "" {
		return "iconify inline-block"
	}
	return "iconify inline-block " + extra
}

// Upper upper-cases s with Portuguese rules, for small-caps style labels.
// A Caser is stateful, so each call gets its own.
func Upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(s)
}
