package site

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/binder"
)

// SectionService renders single sections for the "Try Again" buttons.
type SectionService struct {
	catalog      *Catalog
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewSectionService serves sections from catalog.
func NewSectionService(catalog *Catalog, errorHandler handler.ErrorHandler[handler.Context]) *SectionService {
	return &SectionService{catalog: catalog, errorHandler: errorHandler}
}

func (s *SectionService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/{name}", handler.Wrap(s.section,
		handler.WithBinders[handler.Context, SectionQuery](
			binder.Path(chi.URLParam),
			binder.Query(),
		),
		handler.WithErrorHandler[handler.Context, SectionQuery](s.errorHandler),
	))

	return r
}

// section loads the section again and patches it in place. Upstream
// failures render the error state of the section, never an error page.
func (s *SectionService) section(ctx handler.Context, q SectionQuery) handler.Response {
	sec, err := s.catalog.Section(q)
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			return handler.Error(errors.Join(ErrPageNotFound, err))
		}
		return handler.Error(err)
	}

	_ = sec.Load(ctx)

	return handler.Templ(sec.Component())
}
