package imicapi

import "time"

// Config is loaded from the environment by pkg/config.
type Config struct {
	BaseURL   string        `env:"IMIC_API_BASE_URL" envDefault:"https://www.test.nia.com.eg/imic/public/api"`
	Timeout   time.Duration `env:"IMIC_API_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"IMIC_API_USER_AGENT" envDefault:"imic-site"`
}

// NewFromConfig creates a client from cfg. opts are applied after it.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithUserAgent(cfg.UserAgent))
	}
	return New(cfg.BaseURL, append(configOpts, opts...)...)
}
