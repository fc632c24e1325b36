// Package reveal models the one-shot "reveal on scroll" behaviour of page
// sections.
//
// Viewport observation is a capability of the host environment, so it sits
// behind the Observer interface. The server renders with Deferred, which
// hands observation over to the browser script; tests drive a Manual
// observer instead of a real viewport.
package reveal

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by an Observer that cannot watch the viewport.
// Trackers treat it as "feature disabled", never as a failure.
var ErrUnsupported = errors.New("reveal: viewport observation unsupported")

// State is the visibility of a tracked section.
type State uint8

const (
	Hidden State = iota
	Revealed
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Config controls when a watched region counts as visible.
type Config struct {
	// Threshold is the fraction of the region that must be visible.
	Threshold float64
	// RootMargin shrinks or grows the viewport, CSS margin syntax.
	RootMargin string
}

// DefaultConfig triggers when 15% of a section is visible, 50px above the
// bottom edge of the viewport.
var DefaultConfig = Config{
	Threshold:  0.15,
	RootMargin: "0px 0px -50px 0px",
}

// Entry is a single visibility notification.
type Entry struct {
	Intersecting bool
	Ratio        float64
}

// Observer registers visibility watches on page regions.
type Observer interface {
	Observe(target string, cfg Config, notify func(Entry)) (Watch, error)
}

// Watch is an active registration. Dispose must be safe to call repeatedly.
type Watch interface {
	Dispose()
}

// Tracker owns the reveal state of one section instance.
//
// State machine: Hidden --(intersecting, ratio >= threshold)--> Revealed.
// Revealed is terminal.
type Tracker struct {
	target   string
	cfg      Config
	state    State
	animated bool
	watch    Watch
}

// NewTracker returns a hidden tracker for the element with the given id.
func NewTracker(target string, cfg Config) *Tracker {
	return &Tracker{
		target:   target,
		cfg:      cfg,
		state:    Hidden,
		animated: true,
	}
}

// Mount registers the one-time watch. A nil observer, or one reporting
// ErrUnsupported, disables the reveal: the section is shown as-is.
func (t *Tracker) Mount(obs Observer) error {
	if t.watch != nil || t.state == Revealed {
		return nil
	}
	if obs == nil {
		t.degrade()
		return nil
	}

	w, err := obs.Observe(t.target, t.cfg, t.notify)
	if errors.Is(err, ErrUnsupported) {
		t.degrade()
		return nil
	}
	if err != nil {
		t.degrade()
		return fmt.Errorf("observe %q: %w", t.target, err)
	}
	t.watch = w
	return nil
}

// Unmount disposes the watch, if any. Further notifications are ignored.
func (t *Tracker) Unmount() {
	if t.watch != nil {
		t.watch.Dispose()
		t.watch = nil
	}
}

// State reports the current visibility.
func (t *Tracker) State() State { return t.state }

// Visible is shorthand for State() == Revealed.
func (t *Tracker) Visible() bool { return t.state == Revealed }

// Animated reports whether the entry transition applies. It is false once the
// observation capability turned out to be missing.
func (t *Tracker) Animated() bool { return t.animated }

// Target is the id of the observed element.
func (t *Tracker) Target() string { return t.target }

// Config returns the trigger configuration.
func (t *Tracker) Config() Config { return t.cfg }

// Observing reports whether a watch is still registered.
func (t *Tracker) Observing() bool { return t.watch != nil }

func (t *Tracker) notify(e Entry) {
	if t.watch == nil || t.state == Revealed {
		return
	}
	if !e.Intersecting || e.Ratio < t.cfg.Threshold {
		return
	}
	t.state = Revealed
	t.Unmount()
}

func (t *Tracker) degrade() {
	t.animated = false
	t.state = Revealed
}
