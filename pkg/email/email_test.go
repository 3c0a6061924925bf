package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/pkg/email"
)

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "support@example.com",
		Subject:  "New contact request",
		BodyHTML: "<p>hello</p>",
		Tag:      "contact",
	}
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *email.SendEmailParams)
		errMsg string
	}{
		{name: "valid", mutate: func(*email.SendEmailParams) {}},
		{name: "empty recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "  " }, errMsg: "SendTo is required"},
		{name: "bad recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "user@" }, errMsg: "SendTo must be a valid email address"},
		{name: "bad reply-to", mutate: func(p *email.SendEmailParams) { p.ReplyTo = "nope" }, errMsg: "ReplyTo must be a valid email address"},
		{name: "empty subject", mutate: func(p *email.SendEmailParams) { p.Subject = "" }, errMsg: "Subject is required"},
		{name: "empty body", mutate: func(p *email.SendEmailParams) { p.BodyHTML = "\n" }, errMsg: "BodyHTML is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "emails")
	sender := email.NewDevSender(dir)

	p := validParams()
	p.ReplyTo = gofakeit.Email()
	require.NoError(t, sender.SendEmail(context.Background(), p))

	htmlFiles, err := filepath.Glob(filepath.Join(dir, "*_contact.html"))
	require.NoError(t, err)
	require.Len(t, htmlFiles, 1)

	body, err := os.ReadFile(htmlFiles[0])
	require.NoError(t, err)
	assert.Equal(t, p.BodyHTML, string(body))

	raw, err := os.ReadFile(strings.TrimSuffix(htmlFiles[0], ".html") + ".json")
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, p.SendTo, meta["send_to"])
	assert.Equal(t, p.ReplyTo, meta["reply_to"])
	assert.Equal(t, "contact", meta["tag"])
}

func TestDevSender_InvalidParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := email.NewDevSender(dir).SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew_SelectsSender(t *testing.T) {
	t.Parallel()

	dev, err := email.New(email.Config{DevDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, dev)

	pm, err := email.New(email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	})
	require.NoError(t, err)
	_, isDev := pm.(*email.DevSender)
	assert.False(t, isDev)
}

func TestNewPostmarkClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	base := email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}
	tests := map[string]func(c *email.Config){
		"no server token":  func(c *email.Config) { c.PostmarkServerToken = "" },
		"no account token": func(c *email.Config) { c.PostmarkAccountToken = "" },
		"bad sender":       func(c *email.Config) { c.SenderEmail = "nope" },
		"bad support":      func(c *email.Config) { c.SupportEmail = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			mutate(&cfg)
			_, err := email.NewPostmarkClient(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}

	assert.Panics(t, func() { email.MustNewPostmarkClient(email.Config{}) })
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func postmarkStub(t *testing.T, status int, body string, seen *map[string]any) *http.Client {
	t.Helper()
	return &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, seen)
		}
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	})}
}

func TestPostmarkClient_SendEmail(t *testing.T) {
	t.Parallel()

	cfg := email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var seen map[string]any
		client, err := email.NewPostmarkClient(cfg, email.WithHTTPClient(
			postmarkStub(t, http.StatusOK, `{"ErrorCode":0,"Message":"OK","MessageID":"abc"}`, &seen),
		))
		require.NoError(t, err)

		require.NoError(t, client.SendEmail(context.Background(), validParams()))
		assert.Equal(t, "noreply@example.com", seen["From"])
		assert.Equal(t, "support@example.com", seen["ReplyTo"])
		assert.Equal(t, "support@example.com", seen["To"])
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()
		client, err := email.NewPostmarkClient(cfg, email.WithHTTPClient(
			postmarkStub(t, http.StatusUnprocessableEntity, `{"ErrorCode":300,"Message":"Invalid email request"}`, nil),
		))
		require.NoError(t, err)

		err = client.SendEmail(context.Background(), validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})

	t.Run("validation runs first", func(t *testing.T) {
		t.Parallel()
		client, err := email.NewPostmarkClient(cfg)
		require.NoError(t, err)
		assert.ErrorIs(t, client.SendEmail(context.Background(), email.SendEmailParams{}), email.ErrInvalidParams)
	})
}
