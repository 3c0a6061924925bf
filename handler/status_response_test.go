package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/handler"
)

func TestWithStatus(t *testing.T) {
	t.Parallel()

	panel := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="panel">not found</div>`)
		return err
	})

	t.Run("plain request gets the status and the body", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/projects/9", nil)

		err := handler.WithStatus(http.StatusNotFound, handler.Templ(panel)).Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "not found")
	})

	t.Run("datastar request keeps the stream status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/projects/9", nil)
		r.Header.Set("Datastar-Request", "true")

		err := handler.WithStatus(http.StatusNotFound, handler.Templ(panel)).Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
	})

	t.Run("explicit WriteHeader is overridden", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := handler.WithStatus(http.StatusTeapot, handler.Redirect("/contact")).Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestBlob(t *testing.T) {
	t.Parallel()

	t.Run("writes bytes with headers", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/whatsapp.png", nil)

		err := handler.Blob([]byte("png-bytes"), "image/png", 3600).Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "9", w.Header().Get("Content-Length"))
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("detects content type and skips caching", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := handler.Blob([]byte("hello"), "", 0).Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Header().Get("Cache-Control"))
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			return handler.Error(handler.ErrNotFound)
		},
		handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) {
			got = err
		}),
	)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.ErrorIs(t, got, handler.ErrNotFound)
}
