// Package logger builds the site's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout) and wraps the handler with LogHandlerDecorator so that
// request scoped values such as the request id, environment or language are
// added to every record logged with a context:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "imic-site"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "section loaded", logger.Section("services"))
//
// The attribute helpers in attr.go keep key names consistent across
// packages.
package logger
