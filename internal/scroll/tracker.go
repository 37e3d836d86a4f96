package scroll

import (
	"sort"
	"sync"
)

// Event is one scroll notification from a page.
type Event struct {
	Viewport Viewport
	Bounds   BoundsLookup
}

// Listener receives scroll events.
type Listener func(Event)

// Source is anything that emits scroll events, such as a page's window.
// AddListener returns the function that removes the listener again.
type Source interface {
	AddListener(Listener) (remove func())
}

// Dispatcher is a synchronous Source. Dispatch calls every listener in
// registration order on the caller's goroutine.
type Dispatcher struct {
	mu        sync.Mutex
	next      int
	listeners map[int]Listener
}

// AddListener registers l. The returned remove func is safe to call more
// than once.
func (d *Dispatcher) AddListener(l Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listeners == nil {
		d.listeners = make(map[int]Listener)
	}
	id := d.next
	d.next++
	d.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch delivers ev to every registered listener.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	ids := make([]int, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ls := make([]Listener, len(ids))
	for i, id := range ids {
		ls[i] = d.listeners[id]
	}
	d.mu.Unlock()

	for _, l := range ls {
		l(ev)
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Tracker owns the scroll State of one page instance. Every scroll event
// recomputes the state and publishes it; there is no debouncing.
type Tracker struct {
	sections []string
	publish  func(State)

	mu    sync.Mutex
	state State
}

// NewTracker creates a Tracker for the given section order. The first
// section starts active. publish, if non-nil, is called with every new
// state.
func NewTracker(sections []string, publish func(State)) *Tracker {
	t := &Tracker{
		sections: append([]string(nil), sections...),
		publish:  publish,
	}
	if len(t.sections) > 0 {
		t.state.Active = t.sections[0]
	}
	return t
}

// Attach subscribes the tracker to src. Callers must run the returned
// detach func when the page goes away, typically with defer.
func (t *Tracker) Attach(src Source) (detach func()) {
	return src.AddListener(t.OnScroll)
}

// OnScroll recomputes the state from ev and publishes it.
func (t *Tracker) OnScroll(ev Event) {
	t.mu.Lock()
	t.state = Compute(ev.Viewport, t.sections, ev.Bounds, t.state)
	s := t.state
	t.mu.Unlock()

	if t.publish != nil {
		t.publish(s)
	}
}

// SetActive overrides the active section and publishes the result.
func (t *Tracker) SetActive(id string) {
	t.mu.Lock()
	t.state.Active = id
	s := t.state
	t.mu.Unlock()

	if t.publish != nil {
		t.publish(s)
	}
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Sections returns the tracked section order.
func (t *Tracker) Sections() []string {
	return append([]string(nil), t.sections...)
}
