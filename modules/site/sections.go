package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/loader"
	"github.com/dmitrymomot/imic/pkg/logger"
)

// Section names. Each names one upstream resource and its error message
// key "errors.<name>".
const (
	SectionNewsBar       = "newsbar"
	SectionServices      = "services"
	SectionWhyUs         = "whyus"
	SectionClients       = "clients"
	SectionProjects      = "projects"
	SectionNews          = "news"
	SectionTestimonials  = "testimonials"
	SectionAbout         = "about"
	SectionServiceDetail = "service"
	SectionProject       = "project"
	SectionArticle       = "article"
	SectionEngineer      = "engineer"
)

// Content is the upstream the sections read from. *imicapi.Client
// implements it.
type Content interface {
	Services(ctx context.Context) ([]imicapi.Service, error)
	Service(ctx context.Context, id int) (imicapi.Service, error)
	WhyUs(ctx context.Context) ([]imicapi.WhyUs, error)
	Clients(ctx context.Context) ([]imicapi.Company, error)
	Projects(ctx context.Context) ([]imicapi.Project, error)
	Project(ctx context.Context, id int) (imicapi.Project, error)
	About(ctx context.Context) (imicapi.About, error)
	Reviews(ctx context.Context) ([]imicapi.Review, error)
	News(ctx context.Context) ([]imicapi.News, error)
	NewsItem(ctx context.Context, id int) (imicapi.News, error)
	NewsBar(ctx context.Context) (imicapi.NewsBar, error)
	Engineer(ctx context.Context, id int) (imicapi.Engineer, error)
}

// SectionQuery identifies one section render. It round-trips through the
// "Try Again" URL.
type SectionQuery struct {
	Name     string `path:"name"`
	ID       int    `query:"id"`
	Category string `query:"category"`
	Limit    int    `query:"limit"`
}

// URL returns the fragment route that renders the section again.
func (q SectionQuery) URL() string {
	v := url.Values{}
	if q.ID > 0 {
		v.Set("id", strconv.Itoa(q.ID))
	}
	if q.Category != "" && q.Category != AllCategories {
		v.Set("category", q.Category)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	u := "/sections/" + url.PathEscape(q.Name)
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	return u
}

// section is a loader resource bound to the view that renders it.
type section interface {
	loader.Loadable
	Load(ctx context.Context) error
	Failed() bool
	Err() error
	Component() templ.Component
}

type boundSection[T any] struct {
	*loader.Resource[T]
	query    SectionQuery
	back     string
	carousel *CarouselParams
	view     func(SectionParams[T]) templ.Component
}

func (s *boundSection[T]) Component() templ.Component {
	return s.view(SectionParams[T]{
		Name:     s.query.Name,
		ID:       "section-" + s.query.Name,
		State:    s.State().Name(),
		Data:     s.Data(),
		Message:  s.Message(),
		RetryURL: s.query.URL(),
		BackURL:  s.back,
		Carousel: s.carousel,
	})
}

// Catalog builds sections by name.
type Catalog struct {
	cfg     Config
	content Content
	views   *Views
	log     *slog.Logger
}

// NewCatalog builds sections over content. A nil log discards.
func NewCatalog(cfg Config, content Content, views *Views, log *slog.Logger) *Catalog {
	if log == nil {
		log = logger.Discard()
	}
	return &Catalog{cfg: cfg, content: content, views: views, log: log}
}

func bind[T any](c *Catalog, q SectionQuery, view func(SectionParams[T]) templ.Component, fetch func(context.Context) (T, error)) *boundSection[T] {
	return &boundSection[T]{
		Resource: loader.New(q.Name, fetch, loader.WithMessage(c.message), loader.WithLogger(c.log)),
		query:    q,
		view:     view,
	}
}

// message localizes "errors.<name>" and falls back to the error text.
func (c *Catalog) message(ctx context.Context, name string, err error) string {
	l := i18n.LocalizerFromContext(ctx)
	if errors.Is(err, imicapi.ErrNotFound) {
		if msg := l.T("errors.not_found"); msg != "errors.not_found" {
			return msg
		}
	}
	key := "errors." + name
	if msg := l.T(key); msg != key {
		return msg
	}
	return ""
}

func (c *Catalog) carousel(name string) *CarouselParams {
	return &CarouselParams{
		Name:       name,
		Signal:     name,
		StreamURL:  "/carousel/" + name + "/stream",
		ActionURL:  "/carousel/" + name,
		IntervalMS: c.autoplay(name).Milliseconds(),
	}
}

func (c *Catalog) autoplay(name string) time.Duration {
	if name == SectionTestimonials {
		return c.cfg.TestimonialsAutoplay
	}
	return c.cfg.ClientsAutoplay
}

// Section builds the section q names. Detail sections need a positive ID.
func (c *Catalog) Section(q SectionQuery) (section, error) {
	switch q.Name {
	case SectionNewsBar:
		return bind(c, q, c.views.NewsBar, c.content.NewsBar), nil
	case SectionServices:
		return bind(c, q, c.views.Services, c.content.Services), nil
	case SectionWhyUs:
		return bind(c, q, c.views.WhyUs, c.content.WhyUs), nil
	case SectionAbout:
		return bind(c, q, c.views.About, c.content.About), nil
	case SectionClients:
		s := bind(c, q, c.views.Clients, c.content.Clients)
		s.carousel = c.carousel(q.Name)
		return s, nil
	case SectionTestimonials:
		s := bind(c, q, c.views.Testimonials, c.content.Reviews)
		s.carousel = c.carousel(q.Name)
		return s, nil
	case SectionProjects:
		return bind(c, q, c.views.Projects, func(ctx context.Context) (ProjectListing, error) {
			projects, err := c.content.Projects(ctx)
			if err != nil {
				return ProjectListing{}, err
			}
			return NewProjectListing(i18n.LocalizerFromContext(ctx), projects, q.Category, q.Limit), nil
		}), nil
	case SectionNews:
		return bind(c, q, c.views.News, func(ctx context.Context) ([]NewsCard, error) {
			items, err := c.content.News(ctx)
			if err != nil {
				return nil, err
			}
			return NewsCards(i18n.LocalizerFromContext(ctx), items, q.Limit, c.cfg.NewsExcerptLength), nil
		}), nil
	}

	if q.ID <= 0 {
		if isDetailSection(q.Name) {
			return nil, ErrInvalidID
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, q.Name)
	}

	switch q.Name {
	case SectionServiceDetail:
		s := bind(c, q, c.views.ServiceDetail, func(ctx context.Context) (imicapi.Service, error) {
			return c.content.Service(ctx, q.ID)
		})
		s.back = "/#services"
		return s, nil
	case SectionProject:
		s := bind(c, q, c.views.ProjectDetail, func(ctx context.Context) (imicapi.Project, error) {
			return c.content.Project(ctx, q.ID)
		})
		s.back = "/projects"
		return s, nil
	case SectionArticle:
		s := bind(c, q, c.views.Article, func(ctx context.Context) (Article, error) {
			n, err := c.content.NewsItem(ctx, q.ID)
			if err != nil {
				return Article{}, err
			}
			return NewArticle(i18n.LocalizerFromContext(ctx), n), nil
		})
		s.back = "/news"
		return s, nil
	case SectionEngineer:
		s := bind(c, q, c.views.EngineerDetail, func(ctx context.Context) (imicapi.Engineer, error) {
			return c.content.Engineer(ctx, q.ID)
		})
		s.back = "/projects"
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, q.Name)
}

func isDetailSection(name string) bool {
	switch name {
	case SectionServiceDetail, SectionProject, SectionArticle, SectionEngineer:
		return true
	}
	return false
}
