package site

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/loader"
)

// Views renders every page and fragment of the site. The language of a
// render comes from the Localizer in the render context.
type Views struct {
	// Page wraps sections into the site layout.
	Page func(PageParams) templ.Component

	// Static sections
	Hero func(HeroParams) templ.Component

	// Upstream sections
	NewsBar      func(SectionParams[imicapi.NewsBar]) templ.Component
	Services     func(SectionParams[[]imicapi.Service]) templ.Component
	WhyUs        func(SectionParams[[]imicapi.WhyUs]) templ.Component
	Clients      func(SectionParams[[]imicapi.Company]) templ.Component
	Projects     func(SectionParams[ProjectListing]) templ.Component
	News         func(SectionParams[[]NewsCard]) templ.Component
	Testimonials func(SectionParams[[]imicapi.Review]) templ.Component
	About        func(SectionParams[imicapi.About]) templ.Component

	// Detail panels
	ServiceDetail  func(SectionParams[imicapi.Service]) templ.Component
	ProjectDetail  func(SectionParams[imicapi.Project]) templ.Component
	Article        func(SectionParams[Article]) templ.Component
	EngineerDetail func(SectionParams[imicapi.Engineer]) templ.Component

	// Forms
	ContactForm func(ContactFormParams) templ.Component
	MeetingForm func(MeetingFormParams) templ.Component

	// Error views
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// PageParams contains data for rendering a full page.
type PageParams struct {
	TitleKey    string
	Path        string
	NewsBar     templ.Component
	Meeting     templ.Component
	Body        []templ.Component
	WhatsAppURL string
}

// HeroParams contains data for rendering the hero banner.
type HeroParams struct {
	ServicesURL string
	ContactURL  string
}

// SectionParams is one section in one of the loader states.
type SectionParams[T any] struct {
	Name     string
	ID       string
	State    string
	Data     T
	Message  string
	RetryURL string
	BackURL  string
	Carousel *CarouselParams
}

func (p SectionParams[T]) Loading() bool { return p.State == loader.StateLoading.Name() }
func (p SectionParams[T]) Loaded() bool  { return p.State == loader.StateLoaded.Name() }
func (p SectionParams[T]) Failed() bool  { return p.State == loader.StateError.Name() }

// CarouselParams contains the initial state of a carousel section.
type CarouselParams struct {
	Name       string
	Signal     string
	StreamURL  string
	ActionURL  string
	IntervalMS int64
	Count      int
}

// ContactFormParams contains data for rendering the contact form.
type ContactFormParams struct {
	Values  ContactRequest
	Errors  map[string]string
	Success string
	Error   string
}

// MeetingFormParams contains data for rendering the meeting form.
type MeetingFormParams struct {
	Values  AppointmentRequest
	Errors  map[string]string
	Success string
	Error   string
	Open    bool
	MinDate string
}
