// Package views renders the site markup. Templates are html/template
// files adapted to templ components with templ.FromGoHTML; the request
// Localizer is taken from the render context.
package views

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/modules/site"
	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
)

//go:embed templates/*.html
var files embed.FS

//go:embed static
var static embed.FS

// Static serves the embedded stylesheet linked from the layout.
func Static() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}

var tmpl = template.Must(template.New("views").Funcs(funcs).ParseFS(files, "templates/*.html"))

// data is the root of every template.
type data struct {
	L     i18n.Localizer
	Data  any
	Slots map[string]template.HTML
}

// component renders the named template. Slot components are rendered
// first with the same context and passed in as trusted HTML.
func component(name string, v any, slots map[string][]templ.Component) templ.Component {
	t := tmpl.Lookup(name)
	if t == nil {
		panic("views: unknown template " + name)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rendered := make(map[string]template.HTML, len(slots))
		for key, parts := range slots {
			var buf bytes.Buffer
			for _, c := range parts {
				if c == nil {
					continue
				}
				if err := c.Render(ctx, &buf); err != nil {
					return fmt.Errorf("views: render %s slot %q: %w", name, key, err)
				}
			}
			rendered[key] = template.HTML(buf.String()) // #nosec G203 -- produced by our own templates
		}
		return templ.FromGoHTML(t, data{
			L:     i18n.LocalizerFromContext(ctx),
			Data:  v,
			Slots: rendered,
		}).Render(ctx, w)
	})
}

// New returns the site views.
func New() *site.Views {
	return &site.Views{
		Page: func(p site.PageParams) templ.Component {
			return component("page", p, map[string][]templ.Component{
				"newsbar": {p.NewsBar},
				"meeting": {p.Meeting},
				"body":    p.Body,
			})
		},
		Hero:           func(p site.HeroParams) templ.Component { return component("hero", p, nil) },
		NewsBar:        func(p site.SectionParams[imicapi.NewsBar]) templ.Component { return component("newsbar", p, nil) },
		Services:       func(p site.SectionParams[[]imicapi.Service]) templ.Component { return component("services", p, nil) },
		WhyUs:          func(p site.SectionParams[[]imicapi.WhyUs]) templ.Component { return component("whyus", p, nil) },
		Clients:        func(p site.SectionParams[[]imicapi.Company]) templ.Component { return component("clients", p, nil) },
		Projects:       func(p site.SectionParams[site.ProjectListing]) templ.Component { return component("projects", p, nil) },
		News:           func(p site.SectionParams[[]site.NewsCard]) templ.Component { return component("news", p, nil) },
		Testimonials:   func(p site.SectionParams[[]imicapi.Review]) templ.Component { return component("testimonials", p, nil) },
		About:          func(p site.SectionParams[imicapi.About]) templ.Component { return component("about", p, nil) },
		ServiceDetail:  func(p site.SectionParams[imicapi.Service]) templ.Component { return component("service", p, nil) },
		ProjectDetail:  func(p site.SectionParams[imicapi.Project]) templ.Component { return component("project", p, nil) },
		Article:        func(p site.SectionParams[site.Article]) templ.Component { return component("article", p, nil) },
		EngineerDetail: func(p site.SectionParams[imicapi.Engineer]) templ.Component { return component("engineer", p, nil) },
		ContactForm:    func(p site.ContactFormParams) templ.Component { return component("contact_form", p, nil) },
		MeetingForm:    func(p site.MeetingFormParams) templ.Component { return component("meeting_form", p, nil) },
		ErrorPage:      func(p handler.ErrorPageParams) templ.Component { return component("error_page", p, nil) },
		ErrorToast:     func(p handler.ErrorToastParams) templ.Component { return component("error_toast", p, nil) },
	}
}

var funcs = template.FuncMap{
	"seq":             seq,
	"add":             func(a, b int) int { return a + b },
	"date":            formatDate,
	"icon":            icon,
	"carouselSignals": carouselSignals,
	"unitTypes":       func() []string { return site.UnitTypes },
	"hasPrefix":       strings.HasPrefix,
	"projectVideo":    site.ProjectVideo,
	"articleLD":       articleLD,
}

// seq returns 0..n-1.
func seq(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	return out
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// formatDate renders a long date in lang. The zero time renders empty.
func formatDate(t time.Time, lang i18n.Language) string {
	if t.IsZero() {
		return ""
	}
	if lang == i18n.Arabic {
		return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}

// carouselSignals is the initial data-signals value of a carousel.
func carouselSignals(p *site.CarouselParams, count int) (string, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]site.CarouselSignals{
		p.Signal: {Playing: true, Count: count},
	})
	return string(b), err
}

type ldOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ldArticle is the schema.org Article emitted on news detail pages.
type ldArticle struct {
	Context       string         `json:"@context"`
	Type          string         `json:"@type"`
	Headline      string         `json:"headline"`
	Description   string         `json:"description,omitempty"`
	Image         string         `json:"image,omitempty"`
	Author        ldOrganization `json:"author"`
	Publisher     ldOrganization `json:"publisher"`
	DatePublished string         `json:"datePublished,omitempty"`
	DateModified  string         `json:"dateModified,omitempty"`
	Keywords      string         `json:"keywords,omitempty"`
}

// articleLD builds the structured data of a. html/template encodes it as
// JSON inside the ld+json script.
func articleLD(a site.Article) ldArticle {
	return ldArticle{
		Context:       "https://schema.org",
		Type:          "Article",
		Headline:      a.Title,
		Description:   a.Summary,
		Image:         a.Image,
		Author:        ldOrganization{Type: "Organization", Name: "IMIC Design Team"},
		Publisher:     ldOrganization{Type: "Organization", Name: "IMIC Design"},
		DatePublished: ldDate(a.Published),
		DateModified:  ldDate(a.Updated),
		Keywords:      a.Keywords,
	}
}

func ldDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

var icons = map[imicapi.Icon]template.HTML{
	imicapi.IconStar:  `<svg viewBox="0 0 24 24" class="icon" aria-hidden="true"><path d="M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"/></svg>`,
	imicapi.IconAward: `<svg viewBox="0 0 24 24" class="icon" aria-hidden="true"><circle cx="12" cy="8" r="6"/><path d="M15.48 12.89 17 22l-5-3-5 3 1.52-9.11"/></svg>`,
	imicapi.IconUsers: `<svg viewBox="0 0 24 24" class="icon" aria-hidden="true"><path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87M16 3.13a4 4 0 0 1 0 7.75"/></svg>`,
	imicapi.IconClock: `<svg viewBox="0 0 24 24" class="icon" aria-hidden="true"><circle cx="12" cy="12" r="10"/><path d="M12 6v6l4 2"/></svg>`,
}

func icon(kind imicapi.Icon) template.HTML {
	if svg, ok := icons[kind]; ok {
		return svg
	}
	return icons[imicapi.IconStar]
}
