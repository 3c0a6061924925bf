package async

import (
	"context"
	"fmt"
	"time"
)

// Future is the eventual result of a function started by Async or Go.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Async calls fn(ctx, param) in a new goroutine. If ctx is already done the
// function is not called and the future completes with ctx.Err().
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result, f.err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Go is Async for functions that need no parameter.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	return Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (U, error) {
		return fn(ctx)
	})
}

// Await blocks until the function returns.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until the function returns or ctx is done. The
// function keeps running in the latter case.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout is Await bounded by timeout; it returns ErrTimeout when
// the function is still running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done is closed when the function has returned.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports without blocking whether the function has returned.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result is one settled future.
type Result[U any] struct {
	Value U
	Err   error
}

// WaitAll waits for futures in order and returns at the first error with
// the results collected so far.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Settle waits for every future and returns their outcomes in order. One
// failed future never hides the others.
func Settle[U any](futures ...*Future[U]) []Result[U] {
	results := make([]Result[U], len(futures))
	for i, f := range futures {
		results[i].Value, results[i].Err = f.Await()
	}
	return results
}

// WaitAny returns the index and outcome of the first future to finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index int
		Result[U]
	}
	// Buffered so late finishers never block.
	first := make(chan outcome, len(futures))
	for i, f := range futures {
		go func() {
			v, err := f.Await()
			first <- outcome{index: i, Result: Result[U]{Value: v, Err: err}}
		}()
	}

	o := <-first
	return o.index, o.Value, o.Err
}
