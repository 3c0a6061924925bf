package cookie

import (
	"strings"
)

// Config is loaded from the environment by pkg/config.
type Config struct {
	Secrets string `env:"COOKIE_SECRETS" envDefault:"development-only-cookie-secret-change-me"`
	Domain  string `env:"COOKIE_DOMAIN"`
	Secure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// NewFromConfig builds a Manager from cfg. opts are applied after it.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	base := []Option{WithDomain(cfg.Domain), WithSecure(cfg.Secure)}
	return New(splitSecrets(cfg.Secrets), append(base, opts...)...)
}

func splitSecrets(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
