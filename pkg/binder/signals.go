package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes the Datastar signal payload (JSON body, or the
// "datastar" query parameter on GET) into v using its json tags.
// Requests without the Datastar-Request header return
// ErrBinderNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" {
			return ErrBinderNotApplicable
		}
		if _, err := structTarget(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		if ct := r.Header.Get("Content-Type"); r.Method != http.MethodGet && ct != "" {
			// Form-encoded Datastar submits are handled by Form.
			if mediaType, _, _ := mime.ParseMediaType(ct); mediaType != "application/json" {
				return ErrBinderNotApplicable
			}
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}
