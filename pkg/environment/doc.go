// Package environment carries the deployment environment of the site
// (development, staging or production) through context.Context.
//
// The value is parsed once from APP_ENV at startup with Parse, attached to
// every request by Middleware and surfaced in structured logs through
// LoggerExtractor:
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//
//	log := logger.New(
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// Handlers that behave differently in development (for example the email
// dev sender) query the context with IsDevelopment or IsProduction.
package environment
