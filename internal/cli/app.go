// Package cli implements tasktracker-cli, the operator tool for creating
// accounts and applying migrations without going through the web form.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/config"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
)

const usage = `usage: tasktracker-cli <command> [flags]

commands:
  register   create a user account
  migrate    apply database migrations
  help       show this message
`

var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepoManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
)

var errNeedDatabase = errors.New("admin commands need a database, drop -memory")

type App struct {
	reader *bufio.Reader
	out    io.Writer
	stdin  int
	logger logging.Logger
}

func NewApp(in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		reader: bufio.NewReader(in),
		out:    out,
		stdin:  int(os.Stdin.Fd()),
		logger: logger.With("module", "cli"),
	}
}

// Run dispatches args[0] and passes the remaining args to the config loader.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	case "register":
		return a.withDB(ctx, args[1:], a.register)
	case "migrate":
		return a.withDB(ctx, args[1:], a.migrate)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type command func(ctx context.Context, cfg *config.Config, db *sql.DB, m repomanager.RepositoryManager) error

func (a *App) withDB(ctx context.Context, args []string, cmd command) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	if cfg.InMemory {
		return errNeedDatabase
	}

	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	return cmd(ctx, cfg, db, newRepoManager())
}

func (a *App) migrate(ctx context.Context, _ *config.Config, db *sql.DB, m repomanager.RepositoryManager) error {
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	a.logger.Info(ctx, "migrations applied")
	fmt.Fprintln(a.out, "Migrations applied.")
	return nil
}

func (a *App) register(ctx context.Context, cfg *config.Config, db *sql.DB, m repomanager.RepositoryManager) error {
	issuer, err := auth.NewIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	if err != nil {
		return err
	}
	svc := services.NewUserService(dbx.NewSQLRunner(db), m, issuer)

	var in services.RegisterInput
	if in.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if in.Surnames, err = GetSimpleText(a.reader, "Surnames", a.out); err != nil {
		return err
	}
	if in.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if in.Password, err = GetPassword(a.stdin, a.out); err != nil {
		return err
	}

	u, err := svc.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Info(ctx, "user registered", "email", u.Email)
	fmt.Fprintf(a.out, "Registered %s.\n", u.Email)
	return nil
}
