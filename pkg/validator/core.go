package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed rule on one field.
type ValidationError struct {
	Field          string
	Message        string
	TranslationKey string
	Params         map[string]string
}

// Args flattens Params into sorted name/value pairs for a translator.
func (e ValidationError) Args() []string {
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, e.Params[k])
	}
	return args
}

// ValidationErrors is the error returned by Apply.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Unwrap() error { return ErrValidationFailed }

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the untranslated messages of field.
func (ve ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, e := range ve {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Fields returns the failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Localize returns the first message of each field rendered through t.
// When t echoes the key back the English message is used instead.
func (ve ValidationErrors) Localize(t func(key string, args ...string) string) map[string]string {
	out := make(map[string]string, len(ve))
	for _, e := range ve {
		if _, seen := out[e.Field]; seen {
			continue
		}
		msg := e.Message
		if t != nil && e.TranslationKey != "" {
			if tr := t(e.TranslationKey, e.Args()...); tr != "" && tr != e.TranslationKey {
				msg = tr
			}
		}
		out[e.Field] = msg
	}
	return out
}

// Rule is a check plus the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs rules in order. A field that already failed is not checked
// again, so "required" is not followed by "invalid email" for an empty
// value.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if errs.Has(rule.Error.Field) {
			continue
		}
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors inside err or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
