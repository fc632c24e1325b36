package ui

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/reveal"
)

// Background is one of the three surface tiers of the palette.
type Background uint8

const (
	BackgroundPrimary Background = iota
	BackgroundSecondary
	BackgroundTertiary
)

func (b Background) class() string {
	switch b {
	case BackgroundSecondary:
		return "bg-bg-secondary"
	case BackgroundTertiary:
		return "bg-bg-tertiary"
	default:
		return "bg-bg-primary"
	}
}

// SectionProps configures a page section.
type SectionProps struct {
	// ID is the anchor other links point at. Optional.
	ID string
	// Name is written to data-section and identifies the block in the page
	// structure.
	Name       string
	Class      string
	Background Background
	// Reveal animates the section into view. Nil renders it in its final
	// state with no transition.
	Reveal *reveal.Tracker
}

const (
	sectionBase  = "py-16 md:py-24 lg:py-32 px-6 relative overflow-hidden"
	sectionInner = "max-w-[1200px] mx-auto relative z-10"

	revealTransition = "transition-all duration-1000 ease-out transform"
	revealHidden     = "opacity-0 translate-y-12"
	revealShown      = "opacity-100 translate-y-0"
)

// Section wraps children in the shared section layout. The reveal
// transition applies to the inner container; the section itself is the
// observed region.
func Section(p SectionProps, children ...g.Node) g.Node {
	outer := []string{sectionBase, p.Background.class()}
	if p.Class != "" {
		outer = append(outer, p.Class)
	}
	inner := []string{sectionInner}

	var revealAttrs g.Group
	if t := p.Reveal; t != nil && t.Animated() {
		inner = append(inner, revealTransition)
		if t.Visible() {
			inner = append(inner, revealShown)
		} else {
			inner = append(inner, revealHidden)
			cfg := t.Config()
			revealAttrs = g.Group{
				g.Attr("data-reveal", t.Target()),
				g.Attr("data-reveal-threshold", strconv.FormatFloat(cfg.Threshold, 'f', -1, 64)),
				g.Attr("data-reveal-margin", cfg.RootMargin),
			}
		}
	}

	return html.Section(
		g.If(p.ID != "", html.ID(p.ID)),
		g.If(p.Name != "", g.Attr("data-section", p.Name)),
		html.Class(strings.Join(outer, " ")),
		revealAttrs,
		html.Div(html.Class(strings.Join(inner, " ")), g.Group(children)),
	)
}
