package validator

import (
	"net/mail"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Layouts of the date and time inputs.
const (
	DateLayout = time.DateOnly
	TimeLayout = "15:04"
)

var phoneChars = regexp.MustCompile(`^\+?[0-9(][0-9 ()-]*$`)

func fail(field, key, msg string, params ...string) ValidationError {
	p := map[string]string{"field": field}
	for i := 0; i+1 < len(params); i += 2 {
		p[params[i]] = params[i+1]
	}
	return ValidationError{Field: field, Message: msg, TranslationKey: key, Params: p}
}

// Required fails on empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: fail(field, "validation.required", "field is required"),
	}
}

// MaxLen counts runes, so Arabic text is measured like English.
func MaxLen(field, value string, limit int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= limit },
		Error: fail(field, "validation.max_length", "must be at most "+strconv.Itoa(limit)+" characters long",
			"max", strconv.Itoa(limit)),
	}
}

// Email accepts a bare address with a dotted domain.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != strings.TrimSpace(value) {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			return ok && local != "" &&
				strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
		},
		Error: fail(field, "validation.email", "must be a valid email address"),
	}
}

// Phone accepts local and international numbers with 7 to 15 digits.
// Spaces, dashes and parentheses are allowed as separators.
func Phone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if !phoneChars.MatchString(v) {
				return false
			}
			digits := 0
			for _, r := range v {
				if r >= '0' && r <= '9' {
					digits++
				}
			}
			return digits >= 7 && digits <= 15
		},
		Error: fail(field, "validation.phone", "must be a valid phone number"),
	}
}

// OneOf requires value to equal one of allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: fail(field, "validation.one_of", "must be one of: "+strings.Join(allowed, ", "),
			"values", strings.Join(allowed, ", ")),
	}
}

// Date requires a YYYY-MM-DD calendar date.
func Date(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse(DateLayout, value)
			return err == nil
		},
		Error: fail(field, "validation.date", "must be a date in YYYY-MM-DD format"),
	}
}

// NotPastDate requires a YYYY-MM-DD date that is today or later in loc.
// Unparseable values pass; pair it with Date.
func NotPastDate(field, value string, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			d, err := time.ParseInLocation(DateLayout, value, now.Location())
			if err != nil {
				return true
			}
			y, m, day := now.Date()
			return !d.Before(time.Date(y, m, day, 0, 0, 0, 0, now.Location()))
		},
		Error: fail(field, "validation.date_past", "date cannot be in the past"),
	}
}

// TimeOfDay requires a 24h HH:MM value.
func TimeOfDay(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != len(TimeLayout) {
				return false
			}
			_, err := time.Parse(TimeLayout, value)
			return err == nil
		},
		Error: fail(field, "validation.time", "must be a time in HH:MM format"),
	}
}
