package main

import "time"

// appConfig holds the process-wide settings.
type appConfig struct {
	Env              string        `env:"APP_ENV" envDefault:"development"`
	Name             string        `env:"APP_NAME" envDefault:"imic-site"`
	LogLevel         string        `env:"LOG_LEVEL"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"3s"`
	// Form submissions are copied to SUPPORT_EMAIL when enabled.
	NotifyForms bool `env:"NOTIFY_FORMS" envDefault:"true"`
}
