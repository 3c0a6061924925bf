// Package redis connects to the optional Redis server that backs the form
// rate limiter when the site runs on more than one instance.
//
//	cfg := config.MustLoad[redis.Config]()
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    ...
//	    checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
//	}
//
// Connect retries the ping RetryAttempts times within ConnectTimeout.
package redis
