// Package server assembles the tracker: configuration, logger, storage,
// services and the HTTP router, and runs them until a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/config"
	"github.com/dmitrijs2005/tasktracker/internal/server/httpserver"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/memory"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/dmitrijs2005/tasktracker/internal/server/web"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	router http.Handler
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp wires every component. It fails before touching the database when
// the token secret is missing.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	issuer, err := auth.NewIssuer([]byte(c.SecretKey), c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	gin.SetMode(c.GinMode)

	var (
		db     *sql.DB
		repos  repomanager.RepositoryManager
		runner dbx.TxRunner
		ping   func(context.Context) error
	)

	if c.InMemory {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")
		repos = memory.NewManager()
		runner = dbx.NopRunner{}
	} else {
		db, err = openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = repomanager.NewPostgresRepositoryManager()
		runner = dbx.NewSQLRunner(db)
		ping = db.PingContext

		if c.MigrateOnStart {
			if err := repos.RunMigrations(ctx, db); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
			logger.Info(ctx, "migrations applied")
		}
	}

	router, err := web.NewRouter(web.Deps{
		Users:         services.NewUserService(runner, repos, issuer),
		Tasks:         services.NewTaskService(runner, repos),
		Projects:      services.NewProjectService(runner, repos),
		Gate:          auth.NewGate(issuer, logger.With("module", "auth")),
		Logger:        logger.With("module", "web"),
		Ping:          ping,
		SessionSecret: c.CookieSecret(),
		SecureCookies: c.SecureCookies,

		LoginAttemptsPerMinute: c.LoginAttemptsPerMinute,
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("router: %w", err)
	}

	return &App{config: c, logger: logger, db: db, router: router}, nil
}

// Handler exposes the router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.router
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives, then
// closes the database pool.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	s := httpserver.NewHTTPServer(app.config.HTTPAddr, app.router, app.logger, app.config.ShutdownTimeout)
	err := s.Run(ctx)

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(ctx, "closing database", "error", cerr)
		}
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
