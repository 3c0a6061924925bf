package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"

	DefaultLanguage = English
)

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// SupportedLanguages lists the UI languages in display order.
var SupportedLanguages = []Language{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

func (l Language) String() string {
	return string(l)
}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l == Arabic
}

// Dir returns the text direction for l.
func (l Language) Dir() Direction {
	if l.IsRTL() {
		return RTL
	}
	return LTR
}

// Supported reports whether l is one of SupportedLanguages.
func (l Language) Supported() bool {
	return l == English || l == Arabic
}

// ParseLanguage normalizes s ("AR", "ar-EG", " en ") to a supported
// language. The second result is false when s does not name one.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > maxLangCodeLength {
		return "", false
	}
	if idx := strings.IndexAny(s, "-_"); idx > 0 {
		s = s[:idx]
	}
	l := Language(s)
	if !l.Supported() {
		return "", false
	}
	return l, true
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value. It returns false when nothing matches.
func MatchAcceptLanguage(header string) (Language, bool) {
	if header == "" {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return SupportedLanguages[idx], true
}

const (
	maxLangCodeLength       = 35
	maxAcceptLanguageLength = 4096
)
