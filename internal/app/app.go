package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/assets"
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/catalog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/daniilsolovey/blog-portal/internal/memstore"
	"github.com/daniilsolovey/blog-portal/internal/rest"
	"github.com/daniilsolovey/blog-portal/internal/rpc"
)

const (
	rpcPath     = "/v1/rpc/"
	metricsPath = "/metrics"
)

type App struct {
	Store   blog.Store
	Manager *blog.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  *config.Config
}

// New wires the application. dbConnect is used only with postgres storage.
func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	store, err := newStore(cfg, dbConnect, logger)
	if err != nil {
		return nil, err
	}

	keywords := catalog.Default()
	if cfg.Catalog.Path != "" {
		if keywords, err = catalog.Load(cfg.Catalog.Path); err != nil {
			return nil, err
		}
	}

	client, err := generator.NewCompletionClient(cfg.CompletionSettings())
	if err != nil {
		return nil, fmt.Errorf("completion client: %w", err)
	}

	assigner := assets.NewAssigner(keywords, time.Now, assets.GlobalRandom{})
	resolver := generator.NewResolver(assigner, newSearcher(cfg), cfg.Images.FallbackImages, cfg.Images.Timeout, logger)
	orchestrator := generator.NewOrchestrator(client, cfg.Completion.Timeout, logger)

	manager, err := blog.NewManager(store, orchestrator, resolver, blog.Settings{
		FallbackImages:  cfg.Images.FallbackImages,
		RenderCacheSize: cfg.Render.CacheSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	e := rest.NewArticleHandler(manager, logger).RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	logger.Info("application configured",
		"storage", cfg.App.Storage,
		"completion", cfg.Completion.Provider,
		"images", cfg.Images.Provider,
		"catalogCategories", keywords.Len(),
	)

	return &App{
		Store:   store,
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}, nil
}

func newStore(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (blog.Store, error) {
	switch cfg.App.Storage {
	case config.StorageMemory:
		return memstore.New(memstore.DefaultCategories()), nil
	case config.StoragePostgres:
		if dbConnect == nil {
			return nil, errors.New("postgres storage requires a database connection")
		}
		if cfg.App.LogQueries {
			dbConnect.AddQueryHook(db.NewQueryHook(logger, cfg.App.SlowQuery))
		}
		return db.New(dbConnect), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.App.Storage)
	}
}

func newSearcher(cfg *config.Config) assets.Searcher {
	if cfg.Images.Provider == config.ImagesHTTP {
		return assets.NewHTTPSearcher(cfg.Images.Endpoint, nil, cfg.Images.Timeout, cfg.Images.RatePerSecond)
	}

	return assets.NewTemplateSearcher(cfg.Images.URLTemplate)
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service starting", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
