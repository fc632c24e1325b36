package landing

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/cloudx/internal/toggle"
)

// MarkSlot is where a brand mark is placed.
type MarkSlot uint8

const (
	MarkNav MarkSlot = iota
	MarkFooter
)

func (s MarkSlot) String() string {
	if s == MarkFooter {
		return "footer"
	}
	return "nav"
}

// ParseMarkSlot maps the wire form to a MarkSlot.
func ParseMarkSlot(s string) (MarkSlot, bool) {
	switch s {
	case "nav":
		return MarkNav, true
	case "footer":
		return MarkFooter, true
	default:
		return MarkNav, false
	}
}

// BrandMark renders the logo image, or the text mark once the image failed.
// A failed load swaps the image for the text mark of the same slot.
func BrandMark(slot MarkSlot, logoURL, alt, fallbackText string, fb toggle.Fallback) g.Node {
	if fb.ShowText() || logoURL == "" {
		return BrandText(slot, fallbackText)
	}

	return Img(
		Src(logoURL),
		Alt(alt),
		Class(brandImageClass(slot)),
		g.Attr("data-brand", slot.String()),
		hx.Get(brandURL(slot)),
		hx.Trigger("error"),
		hx.Swap("outerHTML"),
	)
}

func brandImageClass(slot MarkSlot) string {
	if slot == MarkFooter {
		return "h-14 md:h-20 w-auto object-contain opacity-100 hover:opacity-90 transition-all duration-300"
	}
	return "h-6 md:h-8 w-auto object-contain cursor-pointer transition-transform duration-300 hover:scale-[1.02]"
}

// BrandText is the text mark shown when the logo cannot be loaded.
func BrandText(slot MarkSlot, text string) g.Node {
	class := "text-xl font-bold text-white tracking-tight cursor-pointer"
	if slot == MarkFooter {
		class = "text-lg font-bold text-text-muted hover:text-white transition-colors tracking-tight"
	}
	return Span(Class(class), g.Attr("data-brand", slot.String()), g.Text(text))
}
