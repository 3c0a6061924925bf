package i18n

// Localizer is the language context of one request: the active language
// plus the translation store. It is a value type; SetLanguage returns a new
// Localizer and never mutates shared state.
type Localizer struct {
	tr   *Translator
	lang Language
}

// NewLocalizer binds tr to lang. Unsupported languages fall back to the
// translator's default.
func NewLocalizer(tr *Translator, lang Language) Localizer {
	if !lang.Supported() {
		lang = DefaultLanguage
		if tr != nil {
			lang = tr.DefaultLanguage()
		}
	}
	return Localizer{tr: tr, lang: lang}
}

// T translates key in the active language, falling back to key.
func (l Localizer) T(key string, args ...string) string {
	if l.tr == nil {
		return interpolate(key, args)
	}
	return l.tr.T(l.lang, key, args...)
}

func (l Localizer) Lang() Language {
	return l.lang
}

func (l Localizer) IsRTL() bool {
	return l.lang.IsRTL()
}

func (l Localizer) Dir() Direction {
	return l.lang.Dir()
}

// Pick returns the half of a bilingual field pair for the active language.
func (l Localizer) Pick(en, ar string) string {
	if l.lang == Arabic {
		return ar
	}
	return en
}

// SetLanguage returns a Localizer for lang sharing the same store.
func (l Localizer) SetLanguage(lang Language) Localizer {
	return NewLocalizer(l.tr, lang)
}

// Other returns the language the toggle switches to.
func (l Localizer) Other() Language {
	if l.lang == Arabic {
		return English
	}
	return Arabic
}
