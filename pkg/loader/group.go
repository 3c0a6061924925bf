package loader

import (
	"context"

	"github.com/dmitrymomot/imic/pkg/async"
)

// Loadable is any Resource regardless of its data type.
type Loadable interface {
	Name() string
	Start(ctx context.Context) *async.Future[struct{}]
}

// Group starts every resource at once and waits until each has settled.
// It returns the names of the failed resources; failures never stop the
// remaining loads.
func Group(ctx context.Context, resources ...Loadable) []string {
	futures := make([]*async.Future[struct{}], len(resources))
	for i, r := range resources {
		futures[i] = r.Start(ctx)
	}

	var failed []string
	for i, res := range async.Settle(futures...) {
		if res.Err != nil {
			failed = append(failed, resources[i].Name())
		}
	}
	return failed
}
