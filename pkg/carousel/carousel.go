package carousel

import (
	"sync"
)

// Event names a carousel notification.
type Event string

const (
	EventSelect Event = "select"
	EventReInit Event = "reInit"
)

// Listener receives the event and the selected index after it.
type Listener func(event Event, selected int)

// Align is the snap alignment of slides.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Options mirror the scroll-snap settings of the widget.
type Options struct {
	Loop      bool
	Align     Align
	SkipSnaps bool
}

// DefaultOptions loops and aligns slides to the start.
func DefaultOptions() Options {
	return Options{Loop: true, Align: AlignStart}
}

// Option adjusts Options.
type Option func(*Options)

// WithLoop wraps from the last slide to the first and back.
func WithLoop(loop bool) Option { return func(o *Options) { o.Loop = loop } }

// WithAlign sets the snap alignment. Unknown values are ignored.
func WithAlign(a Align) Option {
	return func(o *Options) {
		switch a {
		case AlignStart, AlignCenter, AlignEnd:
			o.Align = a
		}
	}
}

// WithSkipSnaps lets a drag skip past several slides.
func WithSkipSnaps(skip bool) Option { return func(o *Options) { o.SkipSnaps = skip } }

type subscription struct {
	id    int
	event Event
	fn    Listener
}

// Carousel is safe for concurrent use. Listeners run on the calling
// goroutine after the lock is released.
type Carousel struct {
	mu       sync.Mutex
	opts     Options
	count    int
	selected int
	subs     []subscription
	nextID   int
}

// New creates a carousel over count slides with the first one selected.
func New(count int, opts ...Option) *Carousel {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Carousel{opts: o, count: max(count, 0)}
}

// Options returns the options in use.
func (c *Carousel) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Count returns the number of slides.
func (c *Carousel) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Selected returns the selected index; 0 for an empty carousel.
func (c *Carousel) Selected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// ScrollNext selects the next slide and returns its index.
func (c *Carousel) ScrollNext() int { return c.move(1) }
func (c *Carousel) ScrollPrev() int { return c.move(-1) }

// ScrollTo selects slide i. Out of range indexes wrap when looping and
// clamp otherwise.
func (c *Carousel) ScrollTo(i int) int {
	c.mu.Lock()
	if c.count == 0 {
		c.mu.Unlock()
		return 0
	}
	return c.selectLocked(c.normalize(i))
}

// CanScrollNext reports whether ScrollNext would move.
func (c *Carousel) CanScrollNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opts.Loop {
		return c.count > 1
	}
	return c.selected < c.count-1
}

// CanScrollPrev reports whether ScrollPrev would move.
func (c *Carousel) CanScrollPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opts.Loop {
		return c.count > 1
	}
	return c.selected > 0
}

// ScrollSnaps returns the index of every snap point, one per slide. It
// backs the dot navigation.
func (c *Carousel) ScrollSnaps() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	snaps := make([]int, c.count)
	for i := range snaps {
		snaps[i] = i
	}
	return snaps
}

// ReInit replaces the slide count, keeps the selection in range and
// notifies reInit listeners.
func (c *Carousel) ReInit(count int) {
	c.mu.Lock()
	c.count = max(count, 0)
	c.selected = min(c.selected, max(c.count-1, 0))
	selected := c.selected
	subs := c.listenersLocked(EventReInit)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(EventReInit, selected)
	}
}

// On subscribes fn to event and returns an id for Off.
func (c *Carousel) On(event Event, fn Listener) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.subs = append(c.subs, subscription{id: c.nextID, event: event, fn: fn})
	return c.nextID
}

// Off removes the subscription with id.
func (c *Carousel) Off(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

func (c *Carousel) move(delta int) int {
	c.mu.Lock()
	if c.count == 0 {
		c.mu.Unlock()
		return 0
	}
	return c.selectLocked(c.normalize(c.selected + delta))
}

// selectLocked must be called with the lock held; it releases it.
func (c *Carousel) selectLocked(i int) int {
	changed := i != c.selected
	c.selected = i
	var subs []Listener
	if changed {
		subs = c.listenersLocked(EventSelect)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(EventSelect, i)
	}
	return i
}

func (c *Carousel) normalize(i int) int {
	if c.opts.Loop {
		return ((i % c.count) + c.count) % c.count
	}
	return min(max(i, 0), c.count-1)
}

func (c *Carousel) listenersLocked(event Event) []Listener {
	var out []Listener
	for _, s := range c.subs {
		if s.event == event {
			out = append(out, s.fn)
		}
	}
	return out
}
