package imicapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrymomot/imic/pkg/logger"
	"github.com/dmitrymomot/imic/pkg/requestid"
)

const defaultTimeout = 10 * time.Second

// Envelope is the response wrapper shared by all endpoints.
type Envelope[T any] struct {
	Status  bool   `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Client talks to one API base URL. It is safe for concurrent use.
type Client struct {
	http *resty.Client
	log  *slog.Logger

	hc        *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying *http.Client. Its own Timeout wins
// over WithTimeout when set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithTimeout sets the request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger for upstream request logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		log:     logger.Discard(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.hc != nil {
		c.http = resty.NewWithClient(c.hc)
		if c.hc.Timeout == 0 {
			c.http.SetTimeout(c.timeout)
		}
	} else {
		c.http = resty.New().SetTimeout(c.timeout)
	}
	c.http.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if c.userAgent != "" {
		c.http.SetHeader("User-Agent", c.userAgent)
	}
	return c
}

// Get fetches endpoint and returns the envelope data.
func Get[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	env, err := do[T](ctx, c, http.MethodGet, endpoint, nil)
	return env.Data, err
}

// Post sends body as JSON to endpoint and returns the envelope data.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	env, err := do[T](ctx, c, http.MethodPost, endpoint, body)
	return env.Data, err
}

func do[T any](ctx context.Context, c *Client, method, endpoint string, body any) (Envelope[T], error) {
	var env Envelope[T]

	req := c.http.R().SetContext(ctx)
	if id := requestid.FromContext(ctx); id != "" {
		req.SetHeader(requestid.Header, id)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		c.log.WarnContext(ctx, "upstream request failed",
			logger.Component("imicapi"),
			logger.Endpoint(endpoint),
			slog.String("method", method),
			logger.Error(err),
		)
		return env, errors.Join(ErrRequestFailed, err)
	}

	attrs := []any{
		logger.Component("imicapi"),
		logger.Endpoint(endpoint),
		slog.String("method", method),
		logger.StatusCode(resp.StatusCode()),
		logger.Duration(time.Since(start)),
	}

	if !resp.IsSuccess() {
		c.log.WarnContext(ctx, "upstream returned error status", attrs...)
		err := fmt.Errorf("%w: %s %s: %s", ErrHTTPStatus, method, endpoint, resp.Status())
		if resp.StatusCode() == http.StatusNotFound {
			err = errors.Join(ErrNotFound, err)
		}
		return env, err
	}

	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		c.log.WarnContext(ctx, "upstream response is not an envelope", append(attrs, logger.Error(err))...)
		return env, errors.Join(ErrDecode, fmt.Errorf("%s %s: %w", method, endpoint, err))
	}
	if !env.Status {
		c.log.WarnContext(ctx, "upstream reported failure", append(attrs, slog.String("message", env.Message))...)
		msg := env.Message
		if msg == "" {
			msg = "API request failed"
		}
		return env, fmt.Errorf("%w: %s %s: %s", ErrAPIStatus, method, endpoint, msg)
	}

	c.log.DebugContext(ctx, "upstream request", attrs...)
	return env, nil
}

// Ping checks that the API answers a cheap listing.
func (c *Client) Ping(ctx context.Context) error {
	_, err := Get[json.RawMessage](ctx, c, "/services")
	return err
}
