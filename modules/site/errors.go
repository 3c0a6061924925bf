package site

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/imic/handler"
)

var (
	ErrUnknownSection  = errors.New("site: unknown section")
	ErrUnknownCarousel = errors.New("site: unknown carousel")
	ErrUnknownAction   = errors.New("site: unknown carousel action")
)

// HTTP errors rendered through the error handler. Keys are translation keys.
var (
	ErrPageNotFound = handler.NewHTTPError(http.StatusNotFound, "errors.http.not_found")
	ErrInvalidID    = handler.NewHTTPError(http.StatusBadRequest, "errors.http.invalid_id")
)
