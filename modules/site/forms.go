package site

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/binder"
	"github.com/dmitrymomot/imic/pkg/clientip"
	"github.com/dmitrymomot/imic/pkg/cookie"
	"github.com/dmitrymomot/imic/pkg/email"
	"github.com/dmitrymomot/imic/pkg/email/templates"
	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/logger"
	"github.com/dmitrymomot/imic/pkg/ratelimiter"
	"github.com/dmitrymomot/imic/pkg/sanitizer"
	"github.com/dmitrymomot/imic/pkg/validator"
)

// UnitTypes are the accepted values of the contact form's type_unit.
var UnitTypes = []string{"apartment", "villa", "office"}

// Submitter posts form data upstream. *imicapi.Client implements it.
type Submitter interface {
	SubmitContact(ctx context.Context, s imicapi.ContactSubmission) (imicapi.SubmitResult, error)
	BookAppointment(ctx context.Context, a imicapi.AppointmentRequest) (imicapi.SubmitResult, error)
}

// FormService handles the contact and meeting forms.
type FormService struct {
	cfg          Config
	submitter    Submitter
	views        *Views
	cookies      *cookie.Manager
	limiter      ratelimiter.Limiter
	mailer       email.EmailSender
	notifyTo     string
	log          *slog.Logger
	now          func() time.Time
	errorHandler handler.ErrorHandler[handler.Context]
}

// FormOption configures a FormService.
type FormOption func(*FormService)

// WithRateLimiter limits submissions per client IP.
func WithRateLimiter(l ratelimiter.Limiter) FormOption {
	return func(s *FormService) { s.limiter = l }
}

// WithNotifications emails every accepted submission to to.
func WithNotifications(sender email.EmailSender, to string) FormOption {
	return func(s *FormService) {
		s.mailer = sender
		s.notifyTo = to
	}
}

// WithFormLogger sets the logger for submission logs.
func WithFormLogger(l *slog.Logger) FormOption {
	return func(s *FormService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for date validation.
func WithClock(now func() time.Time) FormOption {
	return func(s *FormService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewFormService handles the contact and meeting forms.
func NewFormService(
	cfg Config,
	submitter Submitter,
	views *Views,
	cookies *cookie.Manager,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...FormOption,
) *FormService {
	s := &FormService{
		cfg:          cfg,
		submitter:    submitter,
		views:        views,
		cookies:      cookies,
		log:          logger.Discard(),
		now:          time.Now,
		errorHandler: errorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FormService) Handle() http.Handler {
	r := chi.NewRouter()

	if s.limiter != nil {
		r.Use(ratelimiter.Middleware(s.limiter,
			ratelimiter.Prefixed("forms", clientKey),
			ratelimiter.WithOnLimited(s.limited),
			ratelimiter.WithOnError(s.limiterFailed),
		))
	}

	r.Post("/contact", handler.Wrap(s.contact,
		handler.WithBinders[handler.Context, ContactRequest](
			binder.Form(),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, ContactRequest](s.errorHandler),
	))
	r.Post("/appointments", handler.Wrap(s.appointment,
		handler.WithBinders[handler.Context, AppointmentRequest](
			binder.Form(),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, AppointmentRequest](s.errorHandler),
	))

	return r
}

// clientKey prefers the address resolved by clientip.Middleware.
func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// ContactRequest is the contact form. Field names match the upstream body.
type ContactRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Phone    string `form:"phone" json:"phone"`
	Message  string `form:"msg" json:"msg"`
	Location string `form:"location" json:"location"`
	TypeUnit string `form:"type_unit" json:"type_unit"`
}

var (
	singleLine = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.Trim)
	phoneLine  = sanitizer.Compose(singleLine, sanitizer.ASCIIDigits)
)

// Sanitize trims every field, normalizes the email address and writes
// phone digits in ASCII.
func (r ContactRequest) Sanitize() ContactRequest {
	return ContactRequest{
		Name:     singleLine(r.Name),
		Email:    sanitizer.NormalizeEmail(r.Email),
		Phone:    phoneLine(r.Phone),
		Message:  sanitizer.Apply(r.Message, sanitizer.RemoveControlChars, sanitizer.Trim),
		Location: singleLine(r.Location),
		TypeUnit: strings.ToLower(singleLine(r.TypeUnit)),
	}
}

// Validate checks required fields, lengths and formats.
func (r ContactRequest) Validate() error {
	return validator.Apply(
		validator.Required("name", r.Name),
		validator.MaxLen("name", r.Name, 100),
		validator.Required("email", r.Email),
		validator.Email("email", r.Email),
		validator.Required("phone", r.Phone),
		validator.Phone("phone", r.Phone),
		validator.Required("msg", r.Message),
		validator.MaxLen("msg", r.Message, 2000),
		validator.Required("location", r.Location),
		validator.MaxLen("location", r.Location, 200),
		validator.Required("type_unit", r.TypeUnit),
		validator.OneOf("type_unit", r.TypeUnit, UnitTypes...),
	)
}

func (r ContactRequest) submission() imicapi.ContactSubmission {
	return imicapi.ContactSubmission{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    sanitizer.NormalizePhone(r.Phone),
		Msg:      r.Message,
		Location: r.Location,
		TypeUnit: r.TypeUnit,
	}
}

// AppointmentRequest is the meeting form.
type AppointmentRequest struct {
	Name  string `form:"name" json:"name"`
	Phone string `form:"phone" json:"phone"`
	Date  string `form:"date" json:"date"`
	Time  string `form:"time" json:"time"`
}

// Sanitize trims every field and writes phone digits in ASCII.
func (r AppointmentRequest) Sanitize() AppointmentRequest {
	return AppointmentRequest{
		Name:  singleLine(r.Name),
		Phone: phoneLine(r.Phone),
		Date:  singleLine(r.Date),
		Time:  singleLine(r.Time),
	}
}

// Validate checks the request against today's date in now's location.
func (r AppointmentRequest) Validate(now time.Time) error {
	return validator.Apply(
		validator.Required("name", r.Name),
		validator.MaxLen("name", r.Name, 100),
		validator.Required("phone", r.Phone),
		validator.Phone("phone", r.Phone),
		validator.Required("date", r.Date),
		validator.Date("date", r.Date),
		validator.NotPastDate("date", r.Date, now),
		validator.Required("time", r.Time),
		validator.TimeOfDay("time", r.Time),
	)
}

func (r AppointmentRequest) booking() imicapi.AppointmentRequest {
	return imicapi.AppointmentRequest{
		Name:  r.Name,
		Phone: sanitizer.NormalizePhone(r.Phone),
		Date:  r.Date,
		Time:  r.Time,
	}
}

func (s *FormService) contact(ctx handler.Context, req ContactRequest) handler.Response {
	l := i18n.LocalizerFromContext(ctx)
	req = req.Sanitize()

	if err := req.Validate(); err != nil {
		params := ContactFormParams{Values: req, Errors: validator.ExtractValidationErrors(err).Localize(l.T)}
		return s.contactForm(ctx, params, http.StatusBadRequest)
	}

	if _, err := s.submitter.SubmitContact(ctx, req.submission()); err != nil {
		s.log.WarnContext(ctx, "contact submission failed",
			logger.Component("forms"),
			logger.Event("contact"),
			logger.Error(err),
		)
		params := ContactFormParams{Values: req, Error: l.T("errors.submit_contact")}
		return s.contactForm(ctx, params, http.StatusBadGateway)
	}

	s.notify(ctx, "contact", "New contact request from "+req.Name, req.Email,
		templates.ContactNotification(templates.ContactData{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Message:    req.Message,
			Location:   req.Location,
			UnitType:   req.TypeUnit,
			ReceivedAt: s.now(),
		}))

	msg := l.T("contact.success")
	if !handler.IsDataStar(ctx.Request()) {
		return s.redirect(ctx, FormNotice{Form: FormContact, Message: msg}, "/contact")
	}
	return handler.Templ(s.views.ContactForm(ContactFormParams{Success: msg}))
}

func (s *FormService) appointment(ctx handler.Context, req AppointmentRequest) handler.Response {
	l := i18n.LocalizerFromContext(ctx)
	req = req.Sanitize()
	now := s.now()

	if err := req.Validate(now); err != nil {
		params := MeetingFormParams{Values: req, Errors: validator.ExtractValidationErrors(err).Localize(l.T)}
		return s.meetingForm(ctx, params, http.StatusBadRequest)
	}

	if _, err := s.submitter.BookAppointment(ctx, req.booking()); err != nil {
		s.log.WarnContext(ctx, "appointment booking failed",
			logger.Component("forms"),
			logger.Event("appointment"),
			logger.Error(err),
		)
		params := MeetingFormParams{Values: req, Error: l.T("errors.submit_meeting")}
		return s.meetingForm(ctx, params, http.StatusBadGateway)
	}

	s.notify(ctx, "appointment", "New meeting request from "+req.Name, "",
		templates.AppointmentNotification(templates.AppointmentData{
			Name:       req.Name,
			Phone:      req.Phone,
			Date:       req.Date,
			Time:       req.Time,
			ReceivedAt: now,
		}))

	msg := l.T("meeting.success")
	if !handler.IsDataStar(ctx.Request()) {
		return s.redirect(ctx, FormNotice{Form: FormMeeting, Message: msg}, "/")
	}
	return handler.Templ(s.views.MeetingForm(MeetingFormParams{Success: msg, Open: true, MinDate: s.minDate()}))
}

// contactForm patches the form for Datastar requests and renders it in a
// bare page otherwise.
func (s *FormService) contactForm(ctx handler.Context, p ContactFormParams, status int) handler.Response {
	form := s.views.ContactForm(p)
	page := s.page(ctx, "nav.contact", s.views.MeetingForm(MeetingFormParams{MinDate: s.minDate()}), form)
	return handler.WithStatus(status, handler.TemplPartial(form, page))
}

func (s *FormService) meetingForm(ctx handler.Context, p MeetingFormParams, status int) handler.Response {
	p.Open = true
	p.MinDate = s.minDate()
	form := s.views.MeetingForm(p)
	page := s.page(ctx, "nav.home", form)
	return handler.WithStatus(status, handler.TemplPartial(form, page))
}

func (s *FormService) page(ctx handler.Context, titleKey string, meeting templ.Component, body ...templ.Component) templ.Component {
	return s.views.Page(PageParams{
		TitleKey: titleKey,
		Path:     ctx.Request().URL.Path,
		Meeting:  meeting,
		Body:     body,
	})
}

func (s *FormService) minDate() string {
	return s.now().Format(validator.DateLayout)
}

// redirect stores the notice and sends the browser back to the form.
func (s *FormService) redirect(ctx handler.Context, n FormNotice, fallback string) handler.Response {
	if s.cookies != nil {
		if err := s.cookies.SetFlash(ctx.ResponseWriter(), noticeFlashKey, n); err != nil {
			s.log.WarnContext(ctx, "failed to store form notice", logger.Component("forms"), logger.Error(err))
		}
	}
	return handler.RedirectBack(fallback)
}

// notify emails the support address. Failures are logged only.
func (s *FormService) notify(ctx context.Context, tag, subject, replyTo string, body templ.Component) {
	if s.mailer == nil || s.notifyTo == "" {
		return
	}
	html, err := templates.Render(ctx, body)
	if err == nil {
		err = s.mailer.SendEmail(ctx, email.SendEmailParams{
			SendTo:   s.notifyTo,
			Subject:  subject,
			BodyHTML: html,
			ReplyTo:  replyTo,
			Tag:      tag,
		})
	}
	if err != nil {
		s.log.WarnContext(ctx, "form notification failed",
			logger.Component("forms"),
			logger.Event(tag),
			logger.Error(err),
		)
	}
}

func (s *FormService) limited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	s.fail(w, r, handler.ErrTooManyRequests)
}

// limiterFailed answers 503 while the limiter store is down.
func (s *FormService) limiterFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "rate limiter unavailable",
		logger.Component("forms"),
		logger.Error(err),
	)
	s.fail(w, r, handler.ErrServiceUnavailable)
}

func (s *FormService) fail(w http.ResponseWriter, r *http.Request, err handler.HTTPError) {
	if s.errorHandler == nil {
		http.Error(w, http.StatusText(err.Code), err.Code)
		return
	}
	s.errorHandler(handler.NewContext(w, r), err)
}
