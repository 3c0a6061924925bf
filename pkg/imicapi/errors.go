package imicapi

import "errors"

var (
	ErrRequestFailed = errors.New("imicapi: request failed")
	ErrHTTPStatus    = errors.New("imicapi: unexpected http status")
	ErrAPIStatus     = errors.New("imicapi: api reported failure")
	ErrDecode        = errors.New("imicapi: cannot decode response")
	ErrNotFound      = errors.New("imicapi: resource not found")
)
