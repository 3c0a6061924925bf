// Package i18n provides the bilingual (English/Arabic) translation store and
// the per-request language context used by every page of the site.
//
// A Translator is loaded once at startup from YAML dictionaries (usually
// embedded) and is read-only afterwards. Lookups use dot separated keys over
// nested maps and fall back to the key itself when a translation is missing:
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//		i18n.WithLogger(log),
//	)
//	tr.T(i18n.Arabic, "nav.home")    // "الرئيسية"
//	tr.T(i18n.Arabic, "nav.missing") // "nav.missing"
//
// Middleware resolves the language of every request (cookie, query
// parameter, Language header, then Accept-Language) and stores a Localizer
// in the request context. The Localizer is the explicit language context
// handed to templates: it translates keys, picks the active half of a
// bilingual field and reports the text direction (rtl for Arabic).
package i18n
