package site_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/modules/site"
	"github.com/dmitrymomot/imic/modules/site/locales"
	"github.com/dmitrymomot/imic/pkg/cookie"
	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/logger"
)

var errUpstream = errors.New("upstream down")

// fakeContent serves fixed data. A name in fail makes that call return
// its error.
type fakeContent struct {
	mu    sync.Mutex
	fail  map[string]error
	calls map[string]int
}

func newFakeContent() *fakeContent {
	return &fakeContent{fail: map[string]error{}, calls: map[string]int{}}
}

func (f *fakeContent) failing(name string, err error) *fakeContent {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[name] = err
	return f
}

func (f *fakeContent) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeContent) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.fail[name]
}

func (f *fakeContent) Services(context.Context) ([]imicapi.Service, error) {
	if err := f.hit("services"); err != nil {
		return nil, err
	}
	return []imicapi.Service{{ID: 1, NameEN: "Design"}, {ID: 2, NameEN: "Build"}}, nil
}

func (f *fakeContent) Service(_ context.Context, id int) (imicapi.Service, error) {
	if err := f.hit("service"); err != nil {
		return imicapi.Service{}, err
	}
	return imicapi.Service{ID: id, NameEN: "Design"}, nil
}

func (f *fakeContent) WhyUs(context.Context) ([]imicapi.WhyUs, error) {
	if err := f.hit("whyus"); err != nil {
		return nil, err
	}
	return []imicapi.WhyUs{{ID: 1, Icon: "star"}}, nil
}

func (f *fakeContent) Clients(context.Context) ([]imicapi.Company, error) {
	if err := f.hit("clients"); err != nil {
		return nil, err
	}
	return []imicapi.Company{{ID: 1, NameEN: "Acme"}, {ID: 2, NameEN: "Globex"}}, nil
}

func (f *fakeContent) Projects(context.Context) ([]imicapi.Project, error) {
	if err := f.hit("projects"); err != nil {
		return nil, err
	}
	return testProjects(), nil
}

func (f *fakeContent) Project(_ context.Context, id int) (imicapi.Project, error) {
	if err := f.hit("project"); err != nil {
		return imicapi.Project{}, err
	}
	return imicapi.Project{ID: id, TitleEN: "Villa"}, nil
}

func (f *fakeContent) About(context.Context) (imicapi.About, error) {
	if err := f.hit("about"); err != nil {
		return imicapi.About{}, err
	}
	return imicapi.About{ID: 1, DescEN: "About us"}, nil
}

func (f *fakeContent) Reviews(context.Context) ([]imicapi.Review, error) {
	if err := f.hit("testimonials"); err != nil {
		return nil, err
	}
	return []imicapi.Review{{ID: 1, Name: "Sara", Text: "Great", NumStar: 5}}, nil
}

func (f *fakeContent) News(context.Context) ([]imicapi.News, error) {
	if err := f.hit("news"); err != nil {
		return nil, err
	}
	return []imicapi.News{
		{ID: 1, TitleEN: "One", BodyEN: "Body"},
		{ID: 2, TitleEN: "Two"},
		{ID: 3, TitleEN: "Three"},
		{ID: 4, TitleEN: "Four"},
	}, nil
}

func (f *fakeContent) NewsItem(_ context.Context, id int) (imicapi.News, error) {
	if err := f.hit("article"); err != nil {
		return imicapi.News{}, err
	}
	return imicapi.News{ID: id, TitleEN: "One", BodyEN: "Body"}, nil
}

func (f *fakeContent) NewsBar(context.Context) (imicapi.NewsBar, error) {
	if err := f.hit("newsbar"); err != nil {
		return imicapi.NewsBar{}, err
	}
	return imicapi.NewsBar{ID: 1, Text: "Opening soon", IsActive: 1}, nil
}

func (f *fakeContent) Engineer(_ context.Context, id int) (imicapi.Engineer, error) {
	if err := f.hit("engineer"); err != nil {
		return imicapi.Engineer{}, err
	}
	return imicapi.Engineer{ID: id, Name: "Omar"}, nil
}

func write(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func text(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, format, args...)
	})
}

func stubSection[T any](name string, describe func(T) string) func(site.SectionParams[T]) templ.Component {
	return func(p site.SectionParams[T]) templ.Component {
		extra := ""
		if describe != nil && p.Loaded() {
			extra = " " + describe(p.Data)
		}
		return text("<%s id=%q state=%q msg=%q retry=%q back=%q%s>", name, p.ID, p.State, p.Message, p.RetryURL, p.BackURL, extra)
	}
}

// stubViews renders every view as a one-line tag describing its params.
func stubViews() *site.Views {
	return &site.Views{
		Page: func(p site.PageParams) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				if err := write(w, "<page title=%q path=%q whatsapp=%q>", p.TitleKey, p.Path, p.WhatsAppURL); err != nil {
					return err
				}
				parts := append([]templ.Component{p.NewsBar}, p.Body...)
				parts = append(parts, p.Meeting)
				for _, c := range parts {
					if c == nil {
						continue
					}
					if err := c.Render(ctx, w); err != nil {
						return err
					}
				}
				return write(w, "</page>")
			})
		},
		Hero:    func(site.HeroParams) templ.Component { return text("<hero>") },
		NewsBar: stubSection("newsbar", func(b imicapi.NewsBar) string { return "text=" + b.Text }),
		Services: stubSection("services", func(s []imicapi.Service) string {
			return fmt.Sprintf("count=%d", len(s))
		}),
		WhyUs:   stubSection[[]imicapi.WhyUs]("whyus", nil),
		Clients: stubSection[[]imicapi.Company]("clients", nil),
		Projects: stubSection("projects", func(l site.ProjectListing) string {
			return fmt.Sprintf("active=%s count=%d filterable=%t", l.Active, len(l.Projects), l.Filterable)
		}),
		News: stubSection("news", func(n []site.NewsCard) string {
			return fmt.Sprintf("count=%d", len(n))
		}),
		Testimonials:   stubSection[[]imicapi.Review]("testimonials", nil),
		About:          stubSection[imicapi.About]("about", nil),
		ServiceDetail:  stubSection[imicapi.Service]("service", nil),
		ProjectDetail:  stubSection("project", func(p imicapi.Project) string { return "title=" + p.TitleEN }),
		Article:        stubSection("article", func(a site.Article) string { return "title=" + a.Title }),
		EngineerDetail: stubSection("engineer", func(e imicapi.Engineer) string { return "name=" + e.Name }),
		ContactForm: func(p site.ContactFormParams) templ.Component {
			return text("<contact-form name=%q success=%q error=%q errors=%v>", p.Values.Name, p.Success, p.Error, p.Errors)
		},
		MeetingForm: func(p site.MeetingFormParams) templ.Component {
			return text("<meeting-form open=%t min=%q success=%q error=%q errors=%v>", p.Open, p.MinDate, p.Success, p.Error, p.Errors)
		},
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return text("<error-page status=%d error=%q>", p.StatusCode, p.Error)
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return text("<error-toast type=%q message=%q>", p.Type, p.Message)
		},
	}
}

func testConfig() site.Config {
	cfg := site.DefaultConfig()
	cfg.ClientsAutoplay = 20 * time.Millisecond
	cfg.TestimonialsAutoplay = 20 * time.Millisecond
	return cfg
}

func testErrorHandler(views *site.Views) handler.ErrorHandler[handler.Context] {
	return handler.NewErrorHandler(logger.Discard(), handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})
}

func testCookies(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New([]string{strings.Repeat("k", 32)})
	require.NoError(t, err)
	return m
}

// carry copies the cookies set by resp onto the next request.
func carry(resp *http.Response, next *http.Request) {
	for _, c := range resp.Cookies() {
		if c.MaxAge >= 0 && c.Value != "" {
			next.AddCookie(c)
		}
	}
}

func testTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(i18n.English),
	)
	require.NoError(t, err)
	return tr
}

// localized wraps h with the language middleware over the real dictionaries.
func localized(t *testing.T, h http.Handler) http.Handler {
	t.Helper()
	return i18n.Middleware(testTranslator(t), nil)(h)
}
