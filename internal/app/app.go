// Package app wires the bot's components together and runs them.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/glebk/birthday-bot/internal/bot"
	"github.com/glebk/birthday-bot/internal/config"
	"github.com/glebk/birthday-bot/internal/health"
	"github.com/glebk/birthday-bot/internal/lang"
	"github.com/glebk/birthday-bot/internal/lookup"
	"github.com/glebk/birthday-bot/internal/repository/sqlite"
	"github.com/glebk/birthday-bot/internal/scheduler"
	"github.com/glebk/birthday-bot/internal/service"
)

// shutdownGrace bounds how long a running dispatch may delay exit
const shutdownGrace = 30 * time.Second

type App struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *sqlite.Database
	bot       *bot.Bot
	scheduler *scheduler.Scheduler
	httpSrv   *http.Server
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	labels, err := lang.Default(cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	db, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Info("Database initialized", zap.String("path", cfg.DatabasePath))

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = false

	birthdays := sqlite.NewBirthdayRepository(db)
	timezones := sqlite.NewTimezoneRepository(db)
	resolver := lookup.NewClient(cfg.Lookup.Addr, cfg.Lookup.Timeout)

	birthdayService := service.NewBirthdayService(birthdays, timezones, resolver)
	platform := bot.NewPlatform(api, cfg.Platform.Rate, cfg.Platform.Burst)
	dispatcher := service.NewDispatcher(birthdays, platform, labels, log, cfg.Platform.Timeout)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           health.NewServer(log, db).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
	}

	return &App{
		cfg:       cfg,
		log:       log,
		db:        db,
		bot:       bot.New(api, birthdayService, labels, log),
		scheduler: scheduler.New(dispatcher, log),
		httpSrv:   srv,
	}, nil
}

// Run starts the command handler, the daily scheduler and the health
// endpoint, and blocks until SIGINT or SIGTERM.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("Starting birthday-bot", zap.String("http", a.cfg.HTTPAddr))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("HTTP server error", zap.Error(err))
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = a.scheduler.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := a.bot.Start(ctx); err != nil {
			a.log.Error("Bot stopped with error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	a.log.Info("Shutting down gracefully")

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := a.httpSrv.Shutdown(shCtx); err != nil {
		a.log.Warn("HTTP server shutdown error", zap.Error(err))
	}
	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownGrace):
		a.log.Warn("Abandoning running dispatch")
	}

	return a.db.Close()
}
