package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the wrapping handler's error handler.
//
//	if id <= 0 {
//		return handler.Error(ErrNotFound)
//	}
func Error(err error) Response {
	return errorResponse{err: err}
}
