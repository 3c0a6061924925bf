package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/imic/pkg/logger"
	"github.com/dmitrymomot/imic/pkg/requestid"
)

// ErrorPageParams is passed to the full-page error view.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast view. Type is "warning" for
// client errors and "error" for server errors.
type ErrorToastParams struct {
	Message   string
	Type      string
	RequestID string
}

const genericErrorMessage = "An error occurred processing your request"

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container", ToastMode to PatchPrepend.
	ToastTarget string
	ToastMode   datastar.ElementPatchMode

	// Localize translates HTTPError keys for the request language.
	// Keys are shown as-is when nil.
	Localize func(ctx context.Context, key string) string
}

// failure is an error reduced to what the views and the log need.
type failure struct {
	status  int
	key     string
	message string
}

func (f failure) kind() string {
	if f.status < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

func (f failure) level() slog.Level {
	if f.status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classify takes the status and key from the first HTTPError in the
// chain. Anything else is an internal error.
func classify(err error) failure {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return failure{status: httpErr.Code, key: httpErr.Key, message: httpErr.Key}
	}
	return failure{
		status:  http.StatusInternalServerError,
		key:     ErrInternalServerError.Key,
		message: genericErrorMessage,
	}
}

// NewErrorHandler renders a full error page for plain requests and a
// toast for Datastar requests. Client errors log at warn, server errors
// at error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		id := requestid.FromContext(r.Context())
		f := classify(err)

		log.LogAttrs(r.Context(), f.level(), "request error",
			logger.RequestID(id),
			logger.Error(err),
			slog.Int("status_code", f.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		if cfg.Localize != nil {
			if msg := cfg.Localize(ctx, f.key); msg != "" && msg != f.key {
				f.message = msg
			}
		}

		if IsDataStar(r) {
			renderToast(ctx, log, cfg, f, id)
			return
		}
		renderPage(ctx, log, cfg, f, id)
	}
}

// renderToast patches a toast into the page. The status stays 200 since
// the SSE headers are already sent.
func renderToast(ctx Context, log *slog.Logger, cfg ErrorHandlerConfig, f failure, id string) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast view configured", logger.RequestID(id))
		return
	}
	toast := cfg.ErrorToast(ErrorToastParams{Message: f.message, Type: f.kind(), RequestID: id})
	resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.Error("failed to render error toast",
			logger.RequestID(id),
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func renderPage(ctx Context, log *slog.Logger, cfg ErrorHandlerConfig, f failure, id string) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		log.Warn("no error page view configured", logger.RequestID(id))
		http.Error(w, f.message, f.status)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{
		Error:      f.message,
		StatusCode: f.status,
		RequestID:  id,
		RetryURL:   ctx.Request().URL.Path,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(f.status)
	if err := page.Render(ctx, w); err != nil {
		log.Error("failed to render error page",
			logger.RequestID(id),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}
