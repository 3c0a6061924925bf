package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to try the next binder.
	ErrBinderNotApplicable = errors.New("binder: not applicable to this request")

	ErrInvalidForm    = errors.New("binder: invalid form data")
	ErrInvalidQuery   = errors.New("binder: invalid query parameter")
	ErrInvalidPath    = errors.New("binder: invalid path parameter")
	ErrInvalidSignals = errors.New("binder: invalid datastar signals")
	ErrInvalidTarget  = errors.New("binder: target must be a non-nil pointer to struct")
)
