// Package async runs functions in goroutines and hands back a Future for
// the result.
//
//	f := async.Async(ctx, id, func(ctx context.Context, id string) (Project, error) {
//	    return api.Project(ctx, id)
//	})
//	project, err := f.Await()
//
// WaitAll stops at the first error, Settle always collects every outcome,
// and WaitAny returns the first future to finish. A panic inside the
// function completes the future with ErrPanic instead of crashing the
// process.
package async
