package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State is a node of the machine.
type State interface {
	Name() string
}

// Event triggers a transition.
type Event interface {
	Name() string
}

// Guard vetoes a transition when it returns false.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs before the state changes. A non-nil error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Listener is notified after a transition has been committed.
type Listener func(ctx context.Context, from, to State, event Event)

// StringState is a State backed by its own name.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event backed by its own name.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

type transition struct {
	to      State
	guards  []Guard
	actions []Action
}

type transitionKey struct {
	from  string
	event string
}

// Machine is safe for concurrent use. Fire calls are serialized, so guards
// and actions must not call back into the same Machine.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[transitionKey][]transition
	listeners   []Listener
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool {
	return s != nil && m.Current().Name() == s.Name()
}

// Fire applies event to the current state.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.pick(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	for _, action := range t.actions {
		if err := action(ctx, from, t.to, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("%s -> %s on %s: action failed: %w", from.Name(), t.to.Name(), event.Name(), err)
		}
	}
	m.current = t.to
	listeners := m.listeners
	m.mu.Unlock()

	for _, l := range listeners {
		l(ctx, from, t.to, event)
	}
	return nil
}

// CanFire reports whether Fire would find a transition for event.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.pick(ctx, event, data)
	return err == nil
}

// Reset returns the machine to its initial state without running actions
// or listeners.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// pick must be called with the lock held.
func (m *Machine) pick(ctx context.Context, event Event, data any) (transition, error) {
	key := transitionKey{from: m.current.Name(), event: event.Name()}
	candidates := m.transitions[key]
	if len(candidates) == 0 {
		return transition{}, NewErrNoTransitionAvailable(key.from, key.event)
	}

candidates:
	for _, t := range candidates {
		for _, guard := range t.guards {
			if !guard(ctx, m.current, event, data) {
				continue candidates
			}
		}
		return t, nil
	}
	return transition{}, NewErrTransitionRejected(key.from, key.event)
}

func (m *Machine) add(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}
	key := transitionKey{from: from.Name(), event: event.Name()}
	m.transitions[key] = append(m.transitions[key], transition{to: to, guards: guards, actions: actions})
	return nil
}
