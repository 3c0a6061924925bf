package i18n

import (
	"context"
	"log/slog"
)

type (
	localeKey    struct{}
	localizerKey struct{}
)

// SetLocale stores lang in ctx.
func SetLocale(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// GetLocale returns the language in ctx or DefaultLanguage.
func GetLocale(ctx context.Context) Language {
	if lang, ok := ctx.Value(localeKey{}).(Language); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}

// WithLocalizer stores l and its language in ctx.
func WithLocalizer(ctx context.Context, l Localizer) context.Context {
	ctx = SetLocale(ctx, l.Lang())
	return context.WithValue(ctx, localizerKey{}, l)
}

// LocalizerFromContext returns the request's Localizer. Without one, a
// translator-less Localizer for the context locale is returned; its T echoes
// keys.
func LocalizerFromContext(ctx context.Context) Localizer {
	if l, ok := ctx.Value(localizerKey{}).(Localizer); ok {
		return l
	}
	return NewLocalizer(nil, GetLocale(ctx))
}

// LoggerExtractor adds "lang" to log records whose context has a locale.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lang, ok := ctx.Value(localeKey{}).(Language); ok && lang != "" {
			return slog.String("lang", lang.String()), true
		}
		return slog.Attr{}, false
	}
}
