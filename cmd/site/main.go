package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/modules/site"
	"github.com/dmitrymomot/imic/modules/site/locales"
	"github.com/dmitrymomot/imic/modules/site/views"
	"github.com/dmitrymomot/imic/pkg/clientip"
	"github.com/dmitrymomot/imic/pkg/config"
	"github.com/dmitrymomot/imic/pkg/cookie"
	"github.com/dmitrymomot/imic/pkg/email"
	"github.com/dmitrymomot/imic/pkg/environment"
	"github.com/dmitrymomot/imic/pkg/httpserver"
	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/logger"
	"github.com/dmitrymomot/imic/pkg/ratelimiter"
	"github.com/dmitrymomot/imic/pkg/redis"
	"github.com/dmitrymomot/imic/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app appConfig
	config.MustLoad(&app)
	env := environment.Parse(app.Env)

	logOpts := []logger.Option{
		logger.WithEnvironment(env, app.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	}
	if app.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(app.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	if err := run(ctx, app, env, log); err != nil {
		log.Error("site stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, env environment.Environment, log *slog.Logger) error {
	var (
		siteCfg   site.Config
		serverCfg httpserver.Config
		apiCfg    imicapi.Config
		redisCfg  redis.Config
		emailCfg  email.Config
		cookieCfg cookie.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&siteCfg) },
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&apiCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&emailCfg) },
		func() error { return config.Load(&cookieCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(env != environment.Production),
	)
	if err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	api := imicapi.NewFromConfig(apiCfg, imicapi.WithLogger(log))

	checks := []httpserver.Check{{Name: "imic_api", Fn: api.Ping}}

	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		store = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(redisCfg.KeyPrefix))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		memory := ratelimiter.NewMemoryStore()
		defer memory.Close()
		store = memory
	}
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       siteCfg.FormRateCapacity,
		RefillRate:     siteCfg.FormRateCapacity,
		RefillInterval: siteCfg.FormRateInterval,
	})
	if err != nil {
		return err
	}

	formOpts := []site.FormOption{
		site.WithRateLimiter(limiter),
		site.WithFormLogger(log),
	}
	if app.NotifyForms && emailCfg.SupportEmail != "" {
		sender, err := email.New(emailCfg)
		if err != nil {
			return err
		}
		formOpts = append(formOpts, site.WithNotifications(sender, emailCfg.SupportEmail))
	}

	v := views.New()
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  v.ErrorPage,
		ErrorToast: v.ErrorToast,
		Localize: func(ctx context.Context, key string) string {
			return i18n.LocalizerFromContext(ctx).T(key)
		},
	})
	catalog := site.NewCatalog(siteCfg, api, v, log)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(clientip.New(clientip.DefaultHeaders...)),
		environment.Middleware(env),
		i18n.Middleware(translator, i18n.DefaultLangExtractor(i18n.WithCookieName(siteCfg.LangCookieName))),
		requestLogger(log),
		middleware.Recoverer,
	)
	r.Mount("/", site.Router(site.RouterOptions{
		Pages:     site.NewPageService(siteCfg, catalog, v, cookies, errorHandler),
		Sections:  site.NewSectionService(catalog, errorHandler),
		Forms:     site.NewFormService(siteCfg, api, v, cookies, errorHandler, formOpts...),
		Carousel:  site.NewCarouselService(siteCfg, log, errorHandler),
		Language:  site.NewLanguageService(siteCfg, cookies, errorHandler),
		Assets:    site.NewAssetService(siteCfg, errorHandler),
		Static:    views.Static(),
		Liveness:  httpserver.LivenessHandler(),
		Readiness: httpserver.ReadinessHandler(log, app.ReadinessTimeout, checks...),
	}))

	log.InfoContext(ctx, "starting site",
		logger.Component("main"),
		slog.String("addr", serverCfg.Addr),
		slog.String("api", apiCfg.BaseURL),
		slog.Bool("redis", redisCfg.Enabled()),
	)
	return httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
