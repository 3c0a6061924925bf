package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/binder"
	"github.com/dmitrymomot/imic/pkg/cookie"
	"github.com/dmitrymomot/imic/pkg/i18n"
)

// LanguageService switches the UI language.
type LanguageService struct {
	cfg          Config
	cookies      *cookie.Manager
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewLanguageService stores the chosen language in cfg.LangCookieName.
func NewLanguageService(cfg Config, cookies *cookie.Manager, errorHandler handler.ErrorHandler[handler.Context]) *LanguageService {
	return &LanguageService{cfg: cfg, cookies: cookies, errorHandler: errorHandler}
}

func (s *LanguageService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.toggle,
		handler.WithBinders[handler.Context, LanguageRequest](
			binder.Query(),
			binder.Form(),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, LanguageRequest](s.errorHandler),
	))

	return r
}

// LanguageRequest names the language to switch to. Empty switches to the
// other language.
type LanguageRequest struct {
	Lang string `query:"lang" form:"lang" json:"lang"`
}

// toggle stores the language in a session cookie and returns to the page
// the request came from.
func (s *LanguageService) toggle(ctx handler.Context, req LanguageRequest) handler.Response {
	target := i18n.LocalizerFromContext(ctx).Other()
	if req.Lang != "" {
		lang, ok := i18n.ParseLanguage(req.Lang)
		if !ok {
			return handler.Error(handler.ErrBadRequest)
		}
		target = lang
	}

	name := s.cfg.LangCookieName
	if name == "" {
		name = "lang"
	}
	if s.cookies != nil {
		s.cookies.Set(ctx.ResponseWriter(), name, target.String(), cookie.WithMaxAge(0))
	} else {
		http.SetCookie(ctx.ResponseWriter(), &http.Cookie{
			Name:     name,
			Value:    target.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return handler.RedirectBack("/")
}
