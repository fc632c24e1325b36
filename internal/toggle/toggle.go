// Package toggle holds the small state machines behind the interactive parts
// of the landing page. Each value belongs to one component instance; the
// browser sends the current state back with every fragment request.
package toggle

import "strconv"

// MenuState is the mobile navigation state.
type MenuState uint8

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// ParseMenuState reads the wire form; anything but "open" is closed.
func ParseMenuState(s string) MenuState {
	if s == "open" {
		return MenuOpen
	}
	return MenuClosed
}

// Menu is the mobile menu of the navigation bar.
type Menu struct {
	state MenuState
}

// NewMenu returns a menu in the given state.
func NewMenu(s MenuState) Menu { return Menu{state: s} }

// Toggle flips the menu.
func (m *Menu) Toggle() {
	if m.state == MenuOpen {
		m.state = MenuClosed
	} else {
		m.state = MenuOpen
	}
}

// Close is sent when a menu link is activated.
func (m *Menu) Close() { m.state = MenuClosed }

func (m Menu) State() MenuState { return m.state }
func (m Menu) IsOpen() bool { return m.state == MenuOpen }

// None is the accordion index when every entry is collapsed.
const None = -1

// Accordion keeps at most one entry expanded.
type Accordion struct {
	open int
}

// NewAccordion returns an accordion with every entry collapsed.
func NewAccordion() Accordion { return Accordion{open: None} }

// AccordionAt returns an accordion with entry i expanded. Negative values
// mean no entry.
func AccordionAt(i int) Accordion {
	if i < 0 {
		return NewAccordion()
	}
	return Accordion{open: i}
}

// Toggle activates entry i: the open entry collapses, any other entry opens
// and replaces the previous one.
func (a *Accordion) Toggle(i int) {
	if a.open == i {
		a.open = None
		return
	}
	a.open = i
}

// Open returns the expanded index, or None.
func (a Accordion) Open() int { return a.open }

func (a Accordion) IsOpen(i int) bool { return a.open != None && a.open == i }

// Param is the wire form of the open index.
func (a Accordion) Param() string { return strconv.Itoa(a.open) }

// MarkState is what a brand mark currently shows.
type MarkState uint8

const (
	MarkImage MarkState = iota
	MarkText
)

func (s MarkState) String() string {
	if s == MarkText {
		return "text"
	}
	return "image"
}

// Fallback switches a brand mark from image to text after a load failure.
// The switch never reverts.
type Fallback struct {
	state MarkState
}

// Fail records an image load failure and reports whether it changed state.
func (f *Fallback) Fail() bool {
	if f.state == MarkText {
		return false
	}
	f.state = MarkText
	return true
}

func (f Fallback) State() MarkState { return f.state }
func (f Fallback) ShowText() bool { return f.state == MarkText }
