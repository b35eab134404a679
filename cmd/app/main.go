package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-portal/config"
	_ "github.com/daniilsolovey/blog-portal/docs"
	"github.com/daniilsolovey/blog-portal/docs/patches"
	"github.com/daniilsolovey/blog-portal/internal/app"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations before start")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blog Portal API
// @version 1.0
// @description Article generation, versioning and rendering API
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	exitOnError(cfg.ApplyDefaults(*flDatabaseURL))

	ctx := context.Background()

	var dbc *pg.DB
	if cfg.App.Storage == config.StoragePostgres {
		if *flMigrate {
			exitOnError(migrate(ctx))
		}

		dbc = pg.Connect(&cfg.Database)
		if err := dbc.Ping(ctx); err != nil {
			dbc.Close()
			exitOnError(err)
		}
		defer dbc.Close()
	}

	service, err := app.New(&cfg, dbc, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context) error {
	connConfig, err := db.ConnConfig(&cfg.Database)
	if err != nil {
		return err
	}

	if err := db.Migrate(ctx, connConfig, patches.FS); err != nil {
		return err
	}

	lg.Info("migrations applied", "database", cfg.Database.Database)
	return nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
