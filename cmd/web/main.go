package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/joho/godotenv"
	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/envstruct"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/myrjola/wellcheck/internal/logging"
	"github.com/myrjola/wellcheck/internal/pprofserver"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	conversations  *chat.Registry
}

type config struct {
	// Addr is the address the HTTP server listens on. Port 0 picks a free port.
	Addr string `env:"WELLCHECK_ADDR" envDefault:"localhost:4000"`
	// PprofAddr is where pprof listens. Empty disables it.
	PprofAddr       string        `env:"WELLCHECK_PPROF_ADDR"       envDefault:"localhost:6060"`
	AdvanceDelay    time.Duration `env:"WELLCHECK_ADVANCE_DELAY"    envDefault:"500ms"`
	RevealDelay     time.Duration `env:"WELLCHECK_REVEAL_DELAY"     envDefault:"2s"`
	ReplyDelay      time.Duration `env:"WELLCHECK_REPLY_DELAY"      envDefault:"1s"`
	SessionLifetime time.Duration `env:"WELLCHECK_SESSION_LIFETIME" envDefault:"2h"`
}

type logConfig struct {
	Level string `env:"WELLCHECK_LOG_LEVEL" envDefault:"info"`
}

// sweepInterval is how often conversations without a live session are dropped.
const sweepInterval = time.Minute

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	bank, err := assessment.DefaultBank()
	if err != nil {
		return errors.Wrap(err, "load question bank")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conversations := chat.NewRegistry(bank, chat.Delays{
		Advance: cfg.AdvanceDelay,
		Reveal:  cfg.RevealDelay,
		Reply:   cfg.ReplyDelay,
	}, logger)
	defer conversations.Close()
	go conversations.StartSweeper(ctx, sweepInterval, cfg.SessionLifetime)

	sessionManager := scs.New()
	sessionManager.Store = memstore.NewWithCleanupInterval(sweepInterval)
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	if err = pprofserver.Launch(ctx, cfg.PprofAddr, logger); err != nil {
		return errors.Wrap(err, "launch pprof server")
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		conversations:  conversations,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Default().LogAttrs(ctx, slog.LevelWarn, "failed to load .env", errors.SlogError(err))
	}

	var lc logConfig
	if err := envstruct.Populate(&lc, os.LookupEnv); err != nil {
		slog.Default().LogAttrs(ctx, slog.LevelError, "failed to read log config", errors.SlogError(err))
		os.Exit(1)
	}
	level, err := logging.ParseLevel(lc.Level)
	logger := logging.NewLogger(os.Stdout, level)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "falling back to info logging", errors.SlogError(err))
	}

	if err = run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
