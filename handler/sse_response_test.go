package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/handler"
)

func streamRequest(ctx context.Context) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/carousel/clients/stream", nil).WithContext(ctx)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("plain request is rejected", func(t *testing.T) {
		t.Parallel()
		called := false
		resp := handler.SSE(func(handler.StreamContext) error {
			called = true
			return nil
		})

		err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/carousel/clients/stream", nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, handler.ErrNotStreaming)

		var httpErr handler.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.False(t, called)
	})

	t.Run("signals are written as patch events", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendSignal("clients", map[string]any{"selected": 2, "playing": true}); err != nil {
				return err
			}
			return stream.SendSignals(map[string]any{"sending": false})
		})

		require.NoError(t, resp.Render(rec, streamRequest(context.Background())))
		body := rec.Body.String()
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, body, "event: datastar-patch-signals")
		assert.Contains(t, body, `data: signals {"clients":{"playing":true,"selected":2}}`)
		assert.Contains(t, body, `data: signals {"sending":false}`)
	})

	t.Run("components patch the target", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		toast := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<div class="toast">saved</div>`)
			return err
		})
		resp := handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendComponent(toast,
				handler.WithTarget("#toasts"),
				handler.WithPatchMode(handler.PatchAppend),
			)
		})

		require.NoError(t, resp.Render(rec, streamRequest(context.Background())))
		body := rec.Body.String()
		assert.Contains(t, body, "event: datastar-patch-elements")
		assert.Contains(t, body, "data: selector #toasts")
		assert.Contains(t, body, "data: mode append")
		assert.Contains(t, body, `data: elements <div class="toast">saved</div>`)
	})

	t.Run("stream ends with the client", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		started := make(chan struct{})
		resp := handler.SSE(func(stream handler.StreamContext) error {
			close(started)
			<-stream.Done()
			return nil
		})

		done := make(chan error, 1)
		go func() { done <- resp.Render(httptest.NewRecorder(), streamRequest(ctx)) }()

		<-started
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("stream did not stop after the client left")
		}
	})

	t.Run("handler error is returned", func(t *testing.T) {
		t.Parallel()
		resp := handler.SSE(func(handler.StreamContext) error { return assert.AnError })
		assert.ErrorIs(t, resp.Render(httptest.NewRecorder(), streamRequest(context.Background())), assert.AnError)
	})
}

func TestSSE_Wrapped(t *testing.T) {
	t.Parallel()

	type carouselRequest struct {
		Name string
	}

	h := handler.Wrap(handler.HandlerFunc[handler.Context, carouselRequest](func(_ handler.Context, req carouselRequest) handler.Response {
		return handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendSignal(req.Name, map[string]any{"selected": 0})
		})
	}), handler.WithBinders[handler.Context, carouselRequest](func(r *http.Request, v any) error {
		v.(*carouselRequest).Name = r.URL.Query().Get("name")
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/stream?name=testimonials", nil)
	req.Header.Set("Datastar-Request", "true")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Contains(t, rec.Body.String(), `data: signals {"testimonials":{"selected":0}}`)
}
