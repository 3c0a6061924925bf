package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrymomot/imic/pkg/logger"
)

// Translator is the translation store. It is safe for concurrent use and
// never changes after NewTranslator returns.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   Language
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations through adapter and validates them.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tree := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.Languages()),
	)
	return t, nil
}

// DefaultLanguage returns the language used when a request has none.
func (t *Translator) DefaultLanguage() Language {
	return t.defaultLang
}

// Languages returns the loaded language codes sorted.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang Language, key string) bool {
	val, ok := t.lookup(lang, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// T translates key for lang. args are name/value pairs substituted into
// %{name} placeholders. Missing keys return the key (with placeholders
// substituted) unless fallback was disabled.
func (t *Translator) T(lang Language, key string, args ...string) string {
	val, ok := t.lookup(lang, key)
	if ok {
		if s, isString := val.(string); isString {
			return interpolate(s, args)
		}
	}

	if t.logMissing {
		t.logger.Warn("translation not found",
			logger.Component("i18n"),
			logger.Language(lang.String()),
			slog.String("key", key),
		)
	}
	if t.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

func (t *Translator) lookup(lang Language, key string) (any, bool) {
	tree, ok := t.translations[string(lang)]
	if !ok || key == "" {
		return nil, false
	}

	parts := strings.Split(key, ".")
	current := tree
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
