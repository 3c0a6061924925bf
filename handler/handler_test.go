package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/binder"
)

type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	_, _ = w.Write([]byte(m.body))
	return nil
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("basic handler", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			assert.NotNil(t, ctx)
			assert.Empty(t, req)
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(handler.Context, string) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "render failed")
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(handler.Context, string) handler.Response {
			return nil
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrNilResponse.Error())
	})

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(handler.Context, string) handler.Response {
			return mockResponse{renderErr: handler.ErrNotFound}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "errors.http.not_found")
	})
}

type contactRequest struct {
	ID   int    `path:"id"`
	Name string `form:"name"`
	Page int    `query:"page"`
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	var got contactRequest
	h := handler.HandlerFunc[handler.Context, contactRequest](func(_ handler.Context, req contactRequest) handler.Response {
		got = req
		return mockResponse{statusCode: http.StatusNoContent}
	})
	wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, contactRequest](
		binder.Path(func(*http.Request, string) string { return "7" }),
		binder.Signals(),
		binder.Form(),
		binder.Query(),
	))

	req := httptest.NewRequest(http.MethodPost, "/contact/7?page=2", strings.NewReader(url.Values{"name": {"Nour"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	wrapped(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, contactRequest{ID: 7, Name: "Nour", Page: 2}, got)
}

func TestWrap_BinderErrorIsBadRequest(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.HandlerFunc[handler.Context, contactRequest](func(handler.Context, contactRequest) handler.Response {
		called = true
		return mockResponse{statusCode: http.StatusNoContent}
	})
	wrapped := handler.Wrap(h, handler.WithBinder[handler.Context, contactRequest](binder.Query()))

	rec := httptest.NewRecorder()
	wrapped(rec, httptest.NewRequest(http.MethodGet, "/?page=abc", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrap_DecoratorsAndErrorHandler(t *testing.T) {
	t.Parallel()

	var order []string
	decorator := func(name string) handler.Decorator[handler.Context, string] {
		return func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
			return func(ctx handler.Context, req string) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	var handled error
	h := handler.HandlerFunc[handler.Context, string](func(handler.Context, string) handler.Response {
		order = append(order, "handler")
		return mockResponse{renderErr: handler.ErrTooManyRequests}
	})
	wrapped := handler.Wrap(h,
		handler.WithDecorators(decorator("outer"), decorator("inner")),
		handler.WithErrorHandler[handler.Context, string](func(ctx handler.Context, err error) {
			handled = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	wrapped(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.ErrorIs(t, handled, handler.ErrTooManyRequests)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_CustomContextFactory(t *testing.T) {
	t.Parallel()

	created := false
	h := handler.HandlerFunc[handler.Context, string](func(handler.Context, string) handler.Response {
		return mockResponse{statusCode: http.StatusNoContent}
	})
	wrapped := handler.Wrap(h, handler.WithContextFactory[handler.Context, string](func(w http.ResponseWriter, r *http.Request) handler.Context {
		created = true
		return handler.NewContext(w, r)
	}))

	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, created)
}
