package loader

import "github.com/dmitrymomot/imic/pkg/statemachine"

const (
	StateLoading = statemachine.StringState("loading")
	StateLoaded  = statemachine.StringState("loaded")
	StateError   = statemachine.StringState("error")
)

const (
	EventSucceed = statemachine.StringEvent("succeed")
	EventFail    = statemachine.StringEvent("fail")
	EventRetry   = statemachine.StringEvent("retry")
)

func newLifecycle(opts ...statemachine.Option) *statemachine.Machine {
	return statemachine.MustNew(StateLoading, append([]statemachine.Option{
		statemachine.WithTransition(StateLoading, StateLoaded, EventSucceed),
		statemachine.WithTransition(StateLoading, StateError, EventFail),
		statemachine.WithTransition(StateError, StateLoading, EventRetry),
	}, opts...)...)
}
