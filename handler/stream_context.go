package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is the Context of a long-lived Datastar stream. Every
// Send call writes one event and flushes it.
type StreamContext interface {
	Context

	// SendSignal patches a single signal, e.g. the state of one carousel:
	//
	//	err := stream.SendSignal("clients", map[string]any{"selected": 2})
	SendSignal(name string, value any) error

	// SendSignals patches several signals in one event.
	SendSignals(signals map[string]any) error

	// SendComponent patches the element addressed by the options.
	SendComponent(component TemplComponent, opts ...TemplOption) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendSignal(name string, value any) error {
	return c.SendSignals(map[string]any{name: value})
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}
