package carousel

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Autoplay advances a carousel by one slide per interval while playing.
type Autoplay struct {
	interval time.Duration
	playing  atomic.Bool
	rebound  chan struct{}

	mu       sync.RWMutex
	carousel *Carousel
}

// NewAutoplay creates a playing autoplay for c. Nothing happens until Run.
func NewAutoplay(c *Carousel, interval time.Duration) *Autoplay {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	a := &Autoplay{
		interval: interval,
		carousel: c,
		rebound:  make(chan struct{}, 1),
	}
	a.playing.Store(true)
	return a
}

// Run ticks until ctx is done. The timer is stopped on return.
func (a *Autoplay) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.rebound:
			ticker.Reset(a.interval)
		case <-ticker.C:
			if !a.Playing() {
				continue
			}
			if c := a.Carousel(); c != nil {
				c.ScrollNext()
			}
		}
	}
}

// Play resumes advancing.
func (a *Autoplay) Play()  { a.playing.Store(true) }
func (a *Autoplay) Pause() { a.playing.Store(false) }

// Toggle flips play/pause and returns the new state.
func (a *Autoplay) Toggle() bool {
	for {
		cur := a.playing.Load()
		if a.playing.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Playing reports whether the carousel advances on each tick.
func (a *Autoplay) Playing() bool { return a.playing.Load() }

// Interval returns the delay between slides.
func (a *Autoplay) Interval() time.Duration { return a.interval }

// Carousel returns the carousel being advanced.
func (a *Autoplay) Carousel() *Carousel {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.carousel
}

// Rebind points the autoplay at a new carousel and restarts the interval.
func (a *Autoplay) Rebind(c *Carousel) {
	a.mu.Lock()
	a.carousel = c
	a.mu.Unlock()

	select {
	case a.rebound <- struct{}{}:
	default:
	}
}
