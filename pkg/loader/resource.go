package loader

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/imic/pkg/async"
	"github.com/dmitrymomot/imic/pkg/logger"
	"github.com/dmitrymomot/imic/pkg/statemachine"
)

// FetchFunc loads the data of one resource.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// MessageFunc turns a failure into a display message.
type MessageFunc func(ctx context.Context, name string, err error) string

// Resource is one independently loaded piece of page data.
type Resource[T any] struct {
	name    string
	fetch   FetchFunc[T]
	message MessageFunc
	log     *slog.Logger

	mu   sync.Mutex
	sm   *statemachine.Machine
	data T
	err  error
	msg  string
}

// Option configures a Resource.
type Option func(*options)

type options struct {
	message MessageFunc
	log     *slog.Logger
}

// WithMessage sets how failures become display messages.
func WithMessage(fn MessageFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.message = fn
		}
	}
}

// WithLogger sets the logger for state changes.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// New creates a resource in the loading state. Nothing is fetched until
// Load is called.
func New[T any](name string, fetch func(ctx context.Context) (T, error), opts ...Option) *Resource[T] {
	o := options{message: ErrorText, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resource[T]{
		name:    name,
		fetch:   fetch,
		message: o.message,
		log:     o.log,
	}
	r.sm = newLifecycle(statemachine.WithListener(r.logTransition))
	return r
}

// Load fetches the data when the resource is loading. A settled resource
// is returned as is; use Retry to reload after an error.
func (r *Resource[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sm.Is(StateLoading) {
		return r.err
	}

	data, err := r.fetch(ctx)
	if err != nil {
		var zero T
		r.data, r.err = zero, err
		r.msg = displayMessage(ctx, r.message, r.name, err)
		if ferr := r.sm.Fire(ctx, EventFail, err); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}

	r.data, r.err, r.msg = data, nil, ""
	return r.sm.Fire(ctx, EventSucceed, nil)
}

// Retry moves an errored resource back to loading and loads it again. It
// returns *statemachine.ErrNoTransitionAvailable when the resource is not
// in the error state.
func (r *Resource[T]) Retry(ctx context.Context) error {
	r.mu.Lock()
	err := r.sm.Fire(ctx, EventRetry, nil)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.Load(ctx)
}

func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) State() statemachine.State {
	return r.sm.Current()
}

func (r *Resource[T]) Loaded() bool  { return r.sm.Is(StateLoaded) }
func (r *Resource[T]) Loading() bool { return r.sm.Is(StateLoading) }
func (r *Resource[T]) Failed() bool  { return r.sm.Is(StateError) }

// Data returns the fetched data; the zero value unless loaded.
func (r *Resource[T]) Data() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Err returns the fetch error of a failed resource.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Message returns the display message of a failed resource.
func (r *Resource[T]) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.msg
}

// Start runs Load in a new goroutine.
func (r *Resource[T]) Start(ctx context.Context) *async.Future[struct{}] {
	return async.Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.Load(ctx)
	})
}

func (r *Resource[T]) logTransition(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
	level := slog.LevelDebug
	if to == StateError {
		level = slog.LevelWarn
	}
	attrs := []slog.Attr{
		logger.Component("loader"),
		logger.Section(r.name),
		slog.String("from", from.Name()),
		slog.String("to", to.Name()),
		logger.Event(event.Name()),
	}
	if to == StateError && r.err != nil {
		attrs = append(attrs, logger.Error(r.err))
	}
	r.log.LogAttrs(ctx, level, "section state changed", attrs...)
}

// ErrorText is the default MessageFunc: the error's own text.
func ErrorText(_ context.Context, _ string, err error) string {
	return err.Error()
}

func displayMessage(ctx context.Context, fn MessageFunc, name string, err error) string {
	if msg := fn(ctx, name, err); msg != "" {
		return msg
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "failed to load " + name
}
