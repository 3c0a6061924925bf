package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor resolves the language of a request. It returns "" when the
// request does not express a supported preference.
type LangExtractor func(r *http.Request) Language

type extractorConfig struct {
	cookieName string
	queryParam string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

// WithCookieName sets the language cookie name (default "lang"). An empty
// name disables the cookie source.
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.cookieName = name }
}

// WithQueryParamName sets the query parameter name (default "lang"). An
// empty name disables the query source.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.queryParam = name }
}

// DefaultLangExtractor checks, in order: the language cookie, the query
// parameter, the Language header and Accept-Language.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{cookieName: "lang", queryParam: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) Language {
		if cfg.cookieName != "" {
			if c, err := r.Cookie(cfg.cookieName); err == nil {
				if lang, ok := ParseLanguage(c.Value); ok {
					return lang
				}
			}
		}
		if cfg.queryParam != "" {
			if lang, ok := ParseLanguage(r.URL.Query().Get(cfg.queryParam)); ok {
				return lang
			}
		}
		if lang, ok := ParseLanguage(r.Header.Get("Language")); ok {
			return lang
		}
		if lang, ok := MatchAcceptLanguage(strings.TrimSpace(r.Header.Get("Accept-Language"))); ok {
			return lang
		}
		return ""
	}
}
