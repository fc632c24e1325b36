package ui

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Variant is the visual treatment of a call-to-action. Variants are
// mutually exclusive.
type Variant uint8

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantTertiary
	VariantGhost
)

var variantNames = []string{"primary", "secondary", "tertiary", "ghost"}

// ParseVariant maps a name to a Variant. Unknown names report false.
func ParseVariant(s string) (Variant, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range variantNames {
		if name == s {
			return Variant(i), true
		}
	}
	return VariantPrimary, false
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return variantNames[VariantPrimary]
}

const buttonBase = "inline-flex items-center justify-center font-medium transition-colors duration-300 rounded-sm focus:outline-none disabled:opacity-50 disabled:cursor-not-allowed tracking-wide"

func (v Variant) classes() string {
	switch v {
	case VariantSecondary:
		return "bg-transparent text-white border border-white/20 hover:border-primary hover:text-primary px-6 py-3 text-sm"
	case VariantTertiary:
		return "bg-primary text-white hover:bg-primary-dark text-lg px-8 py-4"
	case VariantGhost:
		return "bg-transparent text-text-muted hover:text-primary hover:bg-white/5 px-6 py-3 text-sm"
	default:
		return "bg-primary text-white hover:bg-primary-dark px-6 py-3 text-sm"
	}
}

// ButtonProps configures a call-to-action.
type ButtonProps struct {
	Variant   Variant
	FullWidth bool
	WithIcon  bool
	// Href turns the control into a link.
	Href string
	// External opens Href in a new browsing context without referrer or opener.
	External bool
	Disabled bool
	Class    string
	// Attrs are passed through unchanged. The activation handler goes here
	// (hx-get and friends).
	Attrs []g.Node
}

// Button renders a call-to-action as a link when Href is set, otherwise as
// an in-page button. Children are always rendered as given.
func Button(p ButtonProps, children ...g.Node) g.Node {
	classes := []string{buttonBase, p.Variant.classes()}
	if p.FullWidth {
		classes = append(classes, "w-full")
	}
	if p.Class != "" {
		classes = append(classes, p.Class)
	}

	content := g.Group{
		g.Group(children),
		g.If(p.WithIcon, Icon("arrow-right", "ml-2 w-4 h-4")),
	}

	if p.Href != "" {
		if p.Disabled {
			classes = append(classes, "opacity-50 pointer-events-none")
			return html.A(
				html.Class(strings.Join(classes, " ")),
				g.Attr("aria-disabled", "true"),
				g.Group(p.Attrs),
				content,
			)
		}
		return html.A(
			html.Href(string(templ.URL(p.Href))),
			g.If(p.External, html.Target("_blank")),
			g.If(p.External, html.Rel("noopener noreferrer")),
			html.Class(strings.Join(classes, " ")),
			g.Group(p.Attrs),
			content,
		)
	}

	return html.Button(
		html.Type("button"),
		html.Class(strings.Join(classes, " ")),
		g.If(p.Disabled, html.Disabled()),
		g.Group(p.Attrs),
		content,
	)
}
