package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	ErrNotStreaming      = errors.New("stream requested without a Datastar connection")
)

// HTTPError carries a status code and a translation key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // translation key, e.g. "errors.http.not_found"
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "errors.http.bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "errors.http.not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "errors.http.method_not_allowed"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "errors.http.too_many_requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "errors.http.internal"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "errors.http.bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "errors.http.unavailable"}
)
