// Package handler turns typed handler functions into http.HandlerFuncs and
// renders their responses for both plain page loads and Datastar requests.
//
// A handler receives a Context and a request struct filled by binders:
//
//	type projectRequest struct {
//		ID int `path:"id"`
//	}
//
//	r.Get("/projects/{id}", handler.Wrap(h.Project,
//		handler.WithBinders[handler.Context, projectRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, projectRequest](errorHandler),
//	))
//
// Responses adapt to the request. Templ and TemplPartial write
// HTML on a normal request and SSE element patches when IsDataStar is true.
// Redirect and RedirectBack send an SSE redirect to Datastar clients. SSE
// keeps a stream open for pushing patches and signals, as the carousel
// autoplay does. Blob serves generated files such as the WhatsApp QR code.
//
// Errors are HTTPError values carrying a status and a translation key.
// NewErrorHandler renders them as an error page or a toast and logs client
// errors at warn and server errors at error.
package handler
