package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a service with its own routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount in the site module.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Pages    Mountable
	Sections Mountable
	Forms    Mountable
	Carousel Mountable
	Language Mountable
	Assets   Mountable

	// Static serves embedded files under /static.
	Static http.Handler

	// Probes mounted under /health.
	Liveness  http.Handler
	Readiness http.Handler
}

// Router creates the site router with configurable services.
//
// Example:
//
//	catalog := site.NewCatalog(cfg, api, views, log)
//
//	r := chi.NewRouter()
//	r.Mount("/", site.Router(site.RouterOptions{
//	    Pages:    site.NewPageService(cfg, catalog, views, cookies, errorHandler),
//	    Sections: site.NewSectionService(catalog, errorHandler),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Route("/health", func(health chi.Router) {
		if opts.Liveness != nil {
			health.Method(http.MethodGet, "/live", opts.Liveness)
		}
		if opts.Readiness != nil {
			health.Method(http.MethodGet, "/ready", opts.Readiness)
		}
	})

	if opts.Sections != nil {
		r.Mount("/sections", opts.Sections.Handle())
	}
	if opts.Forms != nil {
		r.Mount("/forms", opts.Forms.Handle())
	}
	if opts.Carousel != nil {
		r.Mount("/carousel", opts.Carousel.Handle())
	}
	if opts.Language != nil {
		r.Mount("/language", opts.Language.Handle())
	}
	if opts.Assets != nil {
		r.Mount("/assets", opts.Assets.Handle())
	}
	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", opts.Static))
	}
	if opts.Pages != nil {
		r.Mount("/", opts.Pages.Handle())
	}

	return r
}
