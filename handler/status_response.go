package handler

import "net/http"

// statusResponse renders next with a fixed status code
type statusResponse struct {
	code int
	next Response
}

// Render applies the status to plain HTTP responses only. SSE streams
// always answer 200.
func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return s.next.Render(w, r)
	}
	return s.next.Render(&statusWriter{ResponseWriter: w, code: s.code}, r)
}

// WithStatus renders resp with the given status code, e.g. a not-found
// panel inside the regular page layout.
//
//	return handler.WithStatus(http.StatusNotFound, handler.Templ(views.ProjectPage(params)))
func WithStatus(code int, resp Response) Response {
	return statusResponse{code: code, next: resp}
}

// statusWriter sends its own code on the first write and ignores any
// later WriteHeader call.
type statusWriter struct {
	http.ResponseWriter
	code  int
	wrote bool
}

func (w *statusWriter) WriteHeader(int) {
	if w.wrote {
		return
	}
	w.wrote = true
	w.ResponseWriter.WriteHeader(w.code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(w.code)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
