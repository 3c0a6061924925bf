package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/binder"
	"github.com/dmitrymomot/imic/pkg/cache"
	"github.com/dmitrymomot/imic/pkg/carousel"
	"github.com/dmitrymomot/imic/pkg/logger"
)

// Carousel actions.
const (
	ActionPrev   = "prev"
	ActionNext   = "next"
	ActionGoto   = "goto"
	ActionToggle = "toggle"
)

// CarouselSignals is the client state of one carousel.
type CarouselSignals struct {
	Session  string `json:"session"`
	Selected int    `json:"selected"`
	Playing  bool   `json:"playing"`
	Count    int    `json:"count"`
}

// CarouselRequest addresses one carousel. Signals arrive under the
// carousel's name.
type CarouselRequest struct {
	Name         string          `path:"name"`
	Action       string          `path:"action"`
	Index        int             `query:"index"`
	Clients      CarouselSignals `json:"clients"`
	Testimonials CarouselSignals `json:"testimonials"`
}

func (r CarouselRequest) signals() CarouselSignals {
	if r.Name == SectionTestimonials {
		return r.Testimonials
	}
	return r.Clients
}

// carouselSession is the server side of one open carousel stream.
type carouselSession struct {
	id       string
	name     string
	carousel *carousel.Carousel
	autoplay *carousel.Autoplay
	updates  chan int
	stop     context.CancelFunc
	once     sync.Once
}

func (s *carouselSession) close() {
	s.once.Do(s.stop)
}

// publish keeps only the latest selection for the stream.
func (s *carouselSession) publish(selected int) {
	for {
		select {
		case s.updates <- selected:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}

func (s *carouselSession) state() map[string]any {
	return map[string]any{
		"session":  s.id,
		"selected": s.carousel.Selected(),
		"playing":  s.autoplay.Playing(),
		"count":    s.carousel.Count(),
	}
}

// CarouselService drives the clients and testimonials carousels. Each
// open stream owns a session with its own autoplay timer.
type CarouselService struct {
	cfg          Config
	sessions     *cache.LRU[string, *carouselSession]
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewCarouselService serves the carousel streams and controls.
func NewCarouselService(cfg Config, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *CarouselService {
	if log == nil {
		log = logger.Discard()
	}
	size := cfg.CarouselSessions
	if size <= 0 {
		size = DefaultConfig().CarouselSessions
	}
	opts := []cache.Option[string, *carouselSession]{
		cache.WithEvictCallback(func(_ string, s *carouselSession) { s.close() }),
	}
	if cfg.CarouselSessionTTL > 0 {
		opts = append(opts, cache.WithTTL[string, *carouselSession](cfg.CarouselSessionTTL))
	}
	return &CarouselService{
		cfg:          cfg,
		sessions:     cache.NewLRU(size, opts...),
		log:          log,
		errorHandler: errorHandler,
	}
}

func (s *CarouselService) Handle() http.Handler {
	r := chi.NewRouter()

	binders := handler.WithBinders[handler.Context, CarouselRequest](
		binder.Path(chi.URLParam),
		binder.Query(),
		binder.Signals(),
	)
	r.Get("/{name}/stream", handler.Wrap(s.stream, binders,
		handler.WithErrorHandler[handler.Context, CarouselRequest](s.errorHandler),
	))
	r.Post("/{name}/{action}", handler.Wrap(s.action, binders,
		handler.WithErrorHandler[handler.Context, CarouselRequest](s.errorHandler),
	))

	return r
}

// Sessions returns the number of open carousel streams.
func (s *CarouselService) Sessions() int {
	return s.sessions.Len()
}

func (s *CarouselService) interval(name string) (time.Duration, bool) {
	switch name {
	case SectionClients:
		return s.cfg.ClientsAutoplay, true
	case SectionTestimonials:
		return s.cfg.TestimonialsAutoplay, true
	}
	return 0, false
}

// stream opens a session, runs its autoplay and pushes every selection
// change as a signal patch until the client goes away.
func (s *CarouselService) stream(_ handler.Context, req CarouselRequest) handler.Response {
	interval, ok := s.interval(req.Name)
	if !ok {
		return handler.Error(errors.Join(ErrPageNotFound, fmt.Errorf("%w: %q", ErrUnknownCarousel, req.Name)))
	}
	sig := req.signals()

	return handler.SSE(func(stream handler.StreamContext) error {
		runCtx, cancel := context.WithCancel(stream)
		defer cancel()

		c := carousel.New(max(sig.Count, 0))
		c.ScrollTo(sig.Selected)
		sess := &carouselSession{
			id:       uuid.NewString(),
			name:     req.Name,
			carousel: c,
			autoplay: carousel.NewAutoplay(c, interval),
			updates:  make(chan int, 1),
			stop:     cancel,
		}
		c.On(carousel.EventSelect, func(_ carousel.Event, selected int) { sess.publish(selected) })

		s.sessions.Put(sess.id, sess)
		defer s.sessions.Remove(sess.id)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.autoplay.Run(runCtx)
		}()
		defer wg.Wait()

		s.log.DebugContext(stream, "carousel stream opened",
			logger.Component("carousel"),
			logger.Section(req.Name),
			slog.String("session", sess.id),
		)

		if err := stream.SendSignal(req.Name, sess.state()); err != nil {
			return err
		}
		for {
			select {
			case <-runCtx.Done():
				return nil
			case <-sess.updates:
				if err := stream.SendSignal(req.Name, sess.state()); err != nil {
					return err
				}
			}
		}
	})
}

// action applies prev, next, goto or toggle. Without a live session the
// move is computed from the client's signals alone.
func (s *CarouselService) action(_ handler.Context, req CarouselRequest) handler.Response {
	interval, ok := s.interval(req.Name)
	if !ok {
		return handler.Error(errors.Join(ErrPageNotFound, fmt.Errorf("%w: %q", ErrUnknownCarousel, req.Name)))
	}
	sig := req.signals()

	sess, found := s.sessions.Get(sig.Session)
	if !found || sess.name != req.Name {
		c := carousel.New(max(sig.Count, 0))
		c.ScrollTo(sig.Selected)
		sess = &carouselSession{
			id:       sig.Session,
			name:     req.Name,
			carousel: c,
			autoplay: carousel.NewAutoplay(c, interval),
		}
		if !sig.Playing {
			sess.autoplay.Pause()
		}
	}

	switch req.Action {
	case ActionPrev:
		sess.carousel.ScrollPrev()
	case ActionNext:
		sess.carousel.ScrollNext()
	case ActionGoto:
		sess.carousel.ScrollTo(req.Index)
	case ActionToggle:
		sess.autoplay.Toggle()
	default:
		return handler.Error(errors.Join(ErrPageNotFound, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)))
	}

	// A manual move restarts the autoplay interval.
	if req.Action != ActionToggle {
		sess.autoplay.Rebind(sess.carousel)
	}

	state := sess.state()
	return handler.SSE(func(stream handler.StreamContext) error {
		return stream.SendSignal(req.Name, state)
	})
}
