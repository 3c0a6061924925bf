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

func html(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		query   string
		want    bool
	}{
		{name: "request header", headers: map[string]string{"Datastar-Request": "true"}, want: true},
		{name: "request header false", headers: map[string]string{"Datastar-Request": "false"}, want: false},
		{name: "event stream accept", headers: map[string]string{"Accept": "text/html, text/event-stream"}, want: true},
		{name: "signals query", query: "?datastar=%7B%22news%22%3A1%7D", want: true},
		{name: "datastar content type", headers: map[string]string{"Content-Type": "application/x-datastar"}, want: true},
		{name: "browser navigation", headers: map[string]string{"Accept": "text/html,application/xhtml+xml"}, want: false},
		{name: "form post", headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/sections/news"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}

func TestTempl(t *testing.T) {
	t.Parallel()

	form := html(`<form id="contact-form">sent</form>`)

	t.Run("plain request gets html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Templ(form).Render(rec, httptest.NewRequest(http.MethodGet, "/contact", nil)))

		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `<form id="contact-form">sent</form>`, rec.Body.String())
	})

	t.Run("datastar request gets a patch", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := datastarRequest("/forms/contact")
		require.NoError(t, handler.Templ(form, handler.WithTarget("#contact")).Render(rec, req))

		body := rec.Body.String()
		assert.Contains(t, body, "event: datastar-patch-elements")
		assert.Contains(t, body, "#contact")
		assert.Contains(t, body, `<form id="contact-form">sent</form>`)
	})
}

func TestTemplPartial(t *testing.T) {
	t.Parallel()

	fragment := html(`<section id="news">cards</section>`)
	page := html(`<html><body><section id="news">cards</section></body></html>`)
	resp := handler.TemplPartial(fragment, page)

	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/sections/news", nil)))
	assert.Contains(t, rec.Body.String(), "<html>")

	rec = httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, datastarRequest("/sections/news")))
	assert.Contains(t, rec.Body.String(), `<section id="news">cards</section>`)
	assert.NotContains(t, rec.Body.String(), "<html>")
}
