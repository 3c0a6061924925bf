package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/requestid"
)

func TestNewContext(t *testing.T) {
	t.Parallel()

	t.Run("plain request has no SSE", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)

		ctx := handler.NewContext(rec, req)

		assert.Same(t, req, ctx.Request())
		assert.Equal(t, rec, ctx.ResponseWriter())
		assert.Nil(t, ctx.SSE())
		assert.Empty(t, rec.Header().Get("Content-Type"))
	})

	tests := []struct {
		name  string
		build func(*http.Request)
		query string
	}{
		{name: "request header", build: func(r *http.Request) { r.Header.Set("Datastar-Request", "true") }},
		{name: "accept header", build: func(r *http.Request) { r.Header.Set("Accept", "text/event-stream") }},
		{name: "signals in query", query: "?datastar=%7B%7D"},
	}
	for _, tt := range tests {
		t.Run("datastar via "+tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/carousel/clients/stream"+tt.query, nil)
			if tt.build != nil {
				tt.build(req)
			}

			ctx := handler.NewContext(rec, req)

			require.NotNil(t, ctx.SSE())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestContext_DelegatesToRequest(t *testing.T) {
	t.Parallel()

	base, cancel := context.WithTimeout(context.Background(), time.Minute)
	base = requestid.WithContext(base, "req-7")
	req := httptest.NewRequest(http.MethodGet, "/news/3", nil).WithContext(base)

	ctx := handler.NewContext(httptest.NewRecorder(), req)

	assert.Equal(t, "req-7", requestid.FromContext(ctx))
	deadline, ok := ctx.Deadline()
	want, _ := base.Deadline()
	assert.True(t, ok)
	assert.Equal(t, want, deadline)
	assert.NoError(t, ctx.Err())

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with the request")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
