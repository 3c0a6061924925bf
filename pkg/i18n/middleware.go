package i18n

import "net/http"

// Middleware stores the request Localizer in the context. A nil extractor
// uses DefaultLangExtractor; requests without a preference get the
// translator's default language.
func Middleware(tr *Translator, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := NewLocalizer(tr, extr(r))
			next.ServeHTTP(w, r.WithContext(WithLocalizer(r.Context(), l)))
		})
	}
}
