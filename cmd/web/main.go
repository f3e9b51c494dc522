package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/myrjola/trackmate/internal/envstruct"
	"github.com/myrjola/trackmate/internal/errors"
	"github.com/myrjola/trackmate/internal/logging"
	"github.com/myrjola/trackmate/internal/program"
	"github.com/myrjola/trackmate/internal/sqlite"
	"github.com/myrjola/trackmate/internal/workout"
	"github.com/yuin/goldmark"
)

type application struct {
	logger         *slog.Logger
	program        *program.Program
	workoutService *workout.Service
	markdown       goldmark.Markdown
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"TRACKMATE_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"TRACKMATE_SQLITE_URL" envDefault:"./trackmate.sqlite3"`
}

type logConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `env:"TRACKMATE_LOG_LEVEL" envDefault:"info"`
	// JSON switches the log output from text to JSON lines.
	JSON bool `env:"TRACKMATE_LOG_JSON" envDefault:"false"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	var prog *program.Program
	if prog, err = program.Load(); err != nil {
		return errors.Wrap(err, "load program")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close db", errors.SlogError(closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:         logger,
		program:        prog,
		workoutService: workout.NewService(db, prog, logger),
		markdown:       goldmark.New(),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

// newLogger builds the process logger from the TRACKMATE_LOG_* variables.
func newLogger(lookupEnv func(string) (string, bool)) (*slog.Logger, error) {
	var cfg logConfig
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate log config")
	}
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	return logging.New(os.Stdout, level, cfg.JSON), nil
}

func main() {
	ctx := context.Background()
	logger, err := newLogger(os.LookupEnv)
	if err != nil {
		logger = logging.New(os.Stdout, slog.LevelInfo, false)
		logger.LogAttrs(ctx, slog.LevelWarn, "invalid log config, using defaults", errors.SlogError(err))
	}
	if err = run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
