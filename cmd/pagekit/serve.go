package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pagekit/dispatch"
	"github.com/dmitrymomot/pagekit/pkg/assetversion"
	"github.com/dmitrymomot/pagekit/pkg/config"
	"github.com/dmitrymomot/pagekit/pkg/environment"
	"github.com/dmitrymomot/pagekit/pkg/formatter"
	"github.com/dmitrymomot/pagekit/pkg/httpserver"
	"github.com/dmitrymomot/pagekit/pkg/i18n"
	"github.com/dmitrymomot/pagekit/pkg/logger"
	"github.com/dmitrymomot/pagekit/pkg/redis"
	"github.com/dmitrymomot/pagekit/pkg/requestid"
	"github.com/dmitrymomot/pagekit/pkg/scripts"
)

type serveConfig struct {
	ServiceName  string `env:"SERVICE_NAME" envDefault:"pagekit"`
	HeadTagsFile string `env:"HEAD_TAGS_FILE"`
	RedisEnabled bool   `env:"REDIS_ENABLED" envDefault:"false"`

	Dispatch  dispatch.Config
	HTTP      httpserver.Config
	Formatter formatter.Config
	I18n      i18n.Config
	Scripts   scripts.Config
	ScriptsS3 scripts.S3Config
	Assets    assetversion.Config
	Redis     redis.Config
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg serveConfig
	if err := config.Load(&cfg, loadOptions()...); err != nil {
		return err
	}
	env := environment.Parse(cfg.Dispatch.Environment)

	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	var checks []httpserver.Check
	assetOpts := []assetversion.Option{assetversion.WithLogger(log)}
	if cfg.RedisEnabled {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		assetOpts = append(assetOpts, assetversion.WithStore(
			assetversion.NewRedisStore(client, cfg.Assets.RedisKey, cfg.Assets.RedisTTL),
		))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	}
	versions := assetversion.NewManager(os.DirFS(cfg.Assets.Dir), cfg.Assets, assetOpts...)

	source, err := scriptSource(ctx, cfg)
	if err != nil {
		return err
	}
	cfg.Scripts.Cache = cfg.Scripts.Cache && !env.IsDevelopment()
	repo := scripts.NewRepository(source, cfg.Scripts)

	headTags, err := loadHeadTags(log, cfg.HeadTagsFile)
	if err != nil {
		return err
	}

	loc := i18n.NewLocalizer(cfg.I18n)
	d, err := dispatch.New(cfg.Dispatch,
		dispatch.WithRenderer(demoRegistry),
		dispatch.WithProcessor(demoRegistry),
		dispatch.WithAssetVersioner(versions),
		dispatch.WithScripts(repo),
		dispatch.WithFormatter(formatter.New(cfg.Formatter)),
		dispatch.WithLocalizer(loc),
		dispatch.WithHeadTags(headTags...),
		dispatch.WithLogger(log),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestid.Middleware, middleware.Recoverer, loc.Middleware())
	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, checks...))

	version, err := versions.Version(ctx)
	if err != nil {
		log.WarnContext(ctx, "asset version unavailable, static files disabled", logger.Error(err))
	} else {
		prefix := "/" + version
		r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Assets.Dir))))
	}
	r.Handle("/*", d)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		return err
	}
	return nil
}

func scriptSource(ctx context.Context, cfg serveConfig) (scripts.Source, error) {
	if cfg.ScriptsS3.Bucket != "" {
		return scripts.NewS3Source(ctx, cfg.ScriptsS3)
	}
	return scripts.NewFSSource(os.DirFS(cfg.Scripts.Dir)), nil
}

func loadHeadTags(log *slog.Logger, path string) ([]dispatch.HeadTag, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("head tags file not found", slog.String("path", path))
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return dispatch.ParseHeadTagsYAML(f)
}
