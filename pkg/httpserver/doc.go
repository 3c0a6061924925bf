// Package httpserver runs the site's http.Server with graceful shutdown and
// exposes liveness/readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM is received, or the
// listener fails.
package httpserver
