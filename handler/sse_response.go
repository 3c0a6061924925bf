package handler

import (
	"errors"
	"net/http"
)

// SSEHandler runs for the lifetime of a stream. The stream ends when it
// returns; stream.Done() closes when the client disconnects.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return errors.Join(ErrBadRequest, ErrNotStreaming)
	}

	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: base.SSE()})
}

// SSE answers a Datastar request with an event stream driven by fn.
// Plain requests fail with ErrBadRequest.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case state := <-updates:
//				if err := stream.SendSignal("clients", state); err != nil {
//					return err
//				}
//			}
//		}
//	})
func SSE(fn SSEHandler) Response {
	return sseResponse{handler: fn}
}
