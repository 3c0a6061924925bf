package site

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/binder"
	"github.com/dmitrymomot/imic/pkg/cookie"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/loader"
	"github.com/dmitrymomot/imic/pkg/qrcode"
	"github.com/dmitrymomot/imic/pkg/validator"
)

// noticeFlashKey holds the FormNotice of a plain HTML form submission.
const noticeFlashKey = "form_notice"

// Form names carried by FormNotice.
const (
	FormContact = "contact"
	FormMeeting = "meeting"
)

// FormNotice is the outcome of a form submitted without Datastar, shown
// once on the page the browser is redirected to.
type FormNotice struct {
	Form    string `json:"form"`
	Message string `json:"message"`
}

// PageService renders the site pages.
type PageService struct {
	cfg          Config
	catalog      *Catalog
	views        *Views
	cookies      *cookie.Manager
	whatsAppURL  string
	now          func() time.Time
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewPageService creates the page service. The WhatsApp button is hidden
// when the configured number is not usable.
func NewPageService(
	cfg Config,
	catalog *Catalog,
	views *Views,
	cookies *cookie.Manager,
	errorHandler handler.ErrorHandler[handler.Context],
) *PageService {
	link, err := qrcode.WhatsAppLink(cfg.WhatsAppCountryCode, cfg.WhatsAppNumber, cfg.WhatsAppMessage)
	if err != nil {
		link = ""
	}
	return &PageService{
		cfg:          cfg,
		catalog:      catalog,
		views:        views,
		cookies:      cookies,
		whatsAppURL:  link,
		now:          time.Now,
		errorHandler: errorHandler,
	}
}

func (s *PageService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.home,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))
	r.Get("/about", handler.Wrap(s.about,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))
	r.Get("/contact", handler.Wrap(s.contact,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))
	r.Get("/projects", handler.Wrap(s.projects,
		handler.WithBinders[handler.Context, ProjectsRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ProjectsRequest](s.errorHandler),
	))
	r.Get("/news", handler.Wrap(s.news,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))

	// Detail pages
	r.Get("/projects/{id}", s.detail(SectionProject, "nav.projects"))
	r.Get("/services/{id}", s.detail(SectionServiceDetail, "nav.services"))
	r.Get("/news/{id}", s.detail(SectionArticle, "nav.news"))
	r.Get("/engineers/{id}", s.detail(SectionEngineer, "nav.projects"))

	r.NotFound(handler.Wrap(s.notFound,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))

	return r
}

// PageRequest is the empty request of pages without parameters.
type PageRequest struct{}

// ProjectsRequest selects the project category filter.
type ProjectsRequest struct {
	Category string `query:"category"`
}

// DetailRequest carries the id of a detail page.
type DetailRequest struct {
	ID string `path:"id"`
}

// block is anything a page body is made of.
type block interface {
	Component() templ.Component
}

type static struct{ c templ.Component }

func (s static) Component() templ.Component { return s.c }

func (s *PageService) home(ctx handler.Context, _ PageRequest) handler.Response {
	notice := s.notice(ctx)
	return s.render(ctx, "nav.home", notice,
		static{s.views.Hero(HeroParams{ServicesURL: "#services", ContactURL: "#contact"})},
		s.section(SectionQuery{Name: SectionServices}),
		s.section(SectionQuery{Name: SectionWhyUs}),
		s.section(SectionQuery{Name: SectionClients}),
		s.section(SectionQuery{Name: SectionProjects, Limit: s.cfg.HomeProjectsLimit}),
		s.section(SectionQuery{Name: SectionAbout}),
		s.section(SectionQuery{Name: SectionNews, Limit: s.cfg.HomeNewsLimit}),
		s.section(SectionQuery{Name: SectionTestimonials}),
		static{s.contactForm(notice)},
	)
}

func (s *PageService) about(ctx handler.Context, _ PageRequest) handler.Response {
	return s.render(ctx, "nav.about", s.notice(ctx),
		s.section(SectionQuery{Name: SectionAbout}),
	)
}

func (s *PageService) contact(ctx handler.Context, _ PageRequest) handler.Response {
	notice := s.notice(ctx)
	return s.render(ctx, "nav.contact", notice, static{s.contactForm(notice)})
}

func (s *PageService) projects(ctx handler.Context, req ProjectsRequest) handler.Response {
	return s.render(ctx, "nav.projects", s.notice(ctx),
		s.section(SectionQuery{Name: SectionProjects, Category: req.Category}),
	)
}

func (s *PageService) news(ctx handler.Context, _ PageRequest) handler.Response {
	return s.render(ctx, "nav.news", s.notice(ctx),
		s.section(SectionQuery{Name: SectionNews}),
	)
}

func (s *PageService) detail(name, titleKey string) http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req DetailRequest) handler.Response {
			id, err := strconv.Atoi(req.ID)
			if err != nil || id <= 0 {
				return handler.Error(ErrPageNotFound)
			}
			return s.render(ctx, titleKey, s.notice(ctx), s.section(SectionQuery{Name: name, ID: id}))
		},
		handler.WithBinders[handler.Context, DetailRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, DetailRequest](s.errorHandler),
	)
}

func (s *PageService) notFound(_ handler.Context, _ PageRequest) handler.Response {
	return handler.Error(ErrPageNotFound)
}

// section builds a section the page service knows to be valid.
func (s *PageService) section(q SectionQuery) block {
	sec, err := s.catalog.Section(q)
	if err != nil {
		panic("site: invalid page section: " + err.Error())
	}
	return sec
}

// render loads every section of the page and the news bar at once, then
// renders the layout. A detail section that is not found turns the page
// into a 404.
func (s *PageService) render(ctx handler.Context, titleKey string, notice FormNotice, blocks ...block) handler.Response {
	newsBar, err := s.catalog.Section(SectionQuery{Name: SectionNewsBar})
	if err != nil {
		return handler.Error(err)
	}

	loads := []loader.Loadable{newsBar}
	for _, b := range blocks {
		if sec, ok := b.(section); ok {
			loads = append(loads, sec)
		}
	}
	loader.Group(ctx, loads...)

	status := http.StatusOK
	body := make([]templ.Component, 0, len(blocks))
	for _, b := range blocks {
		if sec, ok := b.(section); ok && sec.Failed() && errors.Is(sec.Err(), imicapi.ErrNotFound) {
			status = http.StatusNotFound
		}
		body = append(body, b.Component())
	}

	page := s.views.Page(PageParams{
		TitleKey:    titleKey,
		Path:        ctx.Request().URL.Path,
		NewsBar:     newsBar.Component(),
		Meeting:     s.meetingForm(notice),
		Body:        body,
		WhatsAppURL: s.whatsAppURL,
	})
	if status != http.StatusOK {
		return handler.WithStatus(status, handler.Templ(page))
	}
	return handler.Templ(page)
}

// notice pops the flash left by a plain form submission.
func (s *PageService) notice(ctx handler.Context) FormNotice {
	var n FormNotice
	if s.cookies == nil {
		return n
	}
	if err := s.cookies.GetFlash(ctx.ResponseWriter(), ctx.Request(), noticeFlashKey, &n); err != nil {
		return FormNotice{}
	}
	return n
}

func (s *PageService) contactForm(n FormNotice) templ.Component {
	p := ContactFormParams{}
	if n.Form == FormContact {
		p.Success = n.Message
	}
	return s.views.ContactForm(p)
}

func (s *PageService) meetingForm(n FormNotice) templ.Component {
	p := MeetingFormParams{MinDate: s.now().Format(validator.DateLayout)}
	if n.Form == FormMeeting {
		p.Success = n.Message
		p.Open = true
	}
	return s.views.MeetingForm(p)
}
