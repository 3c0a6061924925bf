package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent is satisfied by templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures the element patch sent to Datastar clients.
type TemplOption = datastar.PatchElementOption

// WithTarget selects the element to patch. Without it Datastar morphs the
// element whose id matches the fragment's root.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// templResponse renders page on plain requests and patches fragment
// for Datastar ones.
type templResponse struct {
	fragment TemplComponent
	page     TemplComponent
	options  []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.fragment, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.page.Render(r.Context(), w)
}

// Templ renders component as HTML, or as an SSE element patch for
// Datastar requests.
//
//	return handler.Templ(views.ContactForm(form), handler.WithTarget("#contact-form"))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{fragment: component, page: component, options: opts}
}

// TemplPartial patches partial for Datastar requests and renders full
// otherwise. Section retries use it: the fragment for "Try Again", the
// whole page on a plain GET.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templResponse{fragment: partial, page: full, options: opts}
}
