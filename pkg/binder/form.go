package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds multipart parsing.
const DefaultMaxMemory = 1 << 20

// Form binds `form:"name"` fields from urlencoded or multipart bodies.
// Other content types return ErrBinderNotApplicable.
//
//	type ContactRequest struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return ErrBinderNotApplicable
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		default:
			return ErrBinderNotApplicable
		}

		return bindTagged(v, "form", func(name string) []string {
			return r.PostForm[name]
		}, ErrInvalidForm)
	}
}
