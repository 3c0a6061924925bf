// Package statemachine is a small finite state machine used to drive
// lifecycles such as "loading -> loaded | error -> loading".
//
// States and events are interfaces so callers can use plain string
// constants (StringState, StringEvent) or richer types:
//
//	const (
//	    Loading = statemachine.StringState("loading")
//	    Loaded  = statemachine.StringState("loaded")
//	    Succeed = statemachine.StringEvent("succeed")
//	)
//
//	m := statemachine.MustNew(Loading,
//	    statemachine.WithTransition(Loading, Loaded, Succeed),
//	)
//	err := m.Fire(ctx, Succeed, nil)
//
// Several transitions may share a from/event pair; the first whose guards
// all pass wins. Actions run in order before the state changes and any
// action error aborts the transition. Listeners registered with
// WithListener observe committed transitions.
//
// Fire returns *ErrNoTransitionAvailable when nothing is defined for the
// current state and event, and *ErrTransitionRejected when every candidate
// was vetoed by a guard.
package statemachine
