package statemachine

import "fmt"

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards or actions to one transition.
type TransitionOption func(*transition)

// New builds a machine in initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}

	m := &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[transitionKey][]transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New that panics on invalid definitions.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// WithTransition defines from -event-> to.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		var t transition
		for _, opt := range opts {
			opt(&t)
		}
		return m.add(from, to, event, t.guards, t.actions)
	}
}

// WithListener registers fn for committed transitions.
func WithListener(fn Listener) Option {
	return func(m *Machine) error {
		if fn != nil {
			m.listeners = append(m.listeners, fn)
		}
		return nil
	}
}

func WithGuard(guards ...Guard) TransitionOption {
	return func(t *transition) {
		for _, g := range guards {
			if g != nil {
				t.guards = append(t.guards, g)
			}
		}
	}
}

func WithAction(actions ...Action) TransitionOption {
	return func(t *transition) {
		for _, a := range actions {
			if a != nil {
				t.actions = append(t.actions, a)
			}
		}
	}
}
