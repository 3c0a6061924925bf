package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component names the package or subsystem logging.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names what happened.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler names the HTTP handler.
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Section records the page section name under "section".
func Section(name string) slog.Attr {
	return slog.String("section", name)
}

// Endpoint records an upstream API endpoint path under "endpoint".
func Endpoint(path string) slog.Attr {
	return slog.String("endpoint", path)
}

// StatusCode is an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Language is a UI language code.
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}
