package reveal

import "sync"

// Deferred leaves observation to the browser. Its watches never fire on the
// server, so sections render hidden and carry the data attributes the client
// script needs.
type Deferred struct{}

func (Deferred) Observe(string, Config, func(Entry)) (Watch, error) {
	return noopWatch{}, nil
}

type noopWatch struct{}

func (noopWatch) Dispose() {}

// Unsupported models a host without viewport observation.
type Unsupported struct{}

func (Unsupported) Observe(string, Config, func(Entry)) (Watch, error) {
	return nil, ErrUnsupported
}

// Manual is an Observer driven by explicit Fire calls.
type Manual struct {
	mu      sync.Mutex
	next    int
	watches map[string]map[int]func(Entry)
}

// NewManual returns an empty Manual observer.
func NewManual() *Manual {
	return &Manual{watches: make(map[string]map[int]func(Entry))}
}

func (m *Manual) Observe(target string, _ Config, notify func(Entry)) (Watch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.next
	m.next++
	if m.watches[target] == nil {
		m.watches[target] = make(map[int]func(Entry))
	}
	m.watches[target][id] = notify
	return &manualWatch{m: m, target: target, id: id}, nil
}

// Fire delivers e to every active watch on target and returns how many
// watches received it.
func (m *Manual) Fire(target string, e Entry) int {
	m.mu.Lock()
	fns := make([]func(Entry), 0, len(m.watches[target]))
	for _, fn := range m.watches[target] {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
	return len(fns)
}

// Active counts the registered watches on target.
func (m *Manual) Active(target string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.watches[target])
}

type manualWatch struct {
	m      *Manual
	target string
	id     int
}

func (w *manualWatch) Dispose() {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	delete(w.m.watches[w.target], w.id)
	if len(w.m.watches[w.target]) == 0 {
		delete(w.m.watches, w.target)
	}
}
