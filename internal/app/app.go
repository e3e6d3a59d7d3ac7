// Package app wires the bot together: storage, transport, binaries,
// sessions, the reaper and the update loop. It also owns startup failure and
// graceful shutdown.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/binaries"
	"github.com/dmitrijs2005/folderkeeper/internal/bot"
	"github.com/dmitrijs2005/folderkeeper/internal/config"
	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/fallback"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/netx"
	"github.com/dmitrijs2005/folderkeeper/internal/reaper"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/folderkeeper/internal/scenes"
	"github.com/dmitrijs2005/folderkeeper/internal/services"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/dmitrijs2005/folderkeeper/internal/tracing"
	"github.com/dmitrijs2005/folderkeeper/internal/webhook"
	"github.com/dmitrijs2005/folderkeeper/internal/youtube"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

const (
	// MaxFileSize bounds uploads accepted into folders.
	MaxFileSize = 20 << 20

	pollTimeoutSec  = 30
	queueSize       = 64
	reaperBuffer    = 1024
	fallbackTimeout = 60 * time.Second
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	tg         *telegram.Client
	reaper     *reaper.Reaper
	dispatcher *bot.Dispatcher
	closers    []func(context.Context) error
}

// NewApp connects to every dependency. Any failure is fatal for the process;
// whatever was opened before it is released.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: cfg, logger: logger}
	ready := false
	defer func() {
		if !ready {
			app.close(context.Background())
		}
	}()

	shutdownTracing, err := tracing.Init(ctx, "folderkeeper", Version, cfg.TracingEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracing init error: %w", err)
	}
	app.closers = append(app.closers, shutdownTracing)

	rm, err := repomanager.New(cfg.DatabaseDriver)
	if err != nil {
		return nil, err
	}
	app.db, err = dbx.Open(ctx, rm.DriverName(), cfg.DatabaseDSN, dbx.PoolOptions{
		MaxOpen:     cfg.Workers + 2,
		MaxIdle:     cfg.Workers,
		MaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.closers = append(app.closers, func(context.Context) error { return app.db.Close() })

	if err := rm.RunMigrations(ctx, app.db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	paths, err := binaries.New(cfg.BinDir, netx.NewHTTPClient(binaries.DownloadTimeout), logger).Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("binaries error: %w", err)
	}

	httpClient := netx.NewHTTPClient(cfg.HTTPTimeout)
	app.tg, err = telegram.NewClient(cfg.BotToken, httpClient)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "authorized", "bot", app.tg.Username())

	lang, _ := i18n.Parse(cfg.DefaultLang)
	sessions, err := app.sessionStore(ctx, lang)
	if err != nil {
		return nil, err
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		return nil, err
	}

	app.reaper = reaper.New(app.tg, logger.With("component", "reaper"), time.Second, reaperBuffer)
	fetcher := telegram.NewFetcher(app.tg, httpClient, MaxFileSize)

	deps := &scenes.Deps{
		Folders:        services.NewFolderService(app.db, rm, cfg.UploadDir, fetcher, logger.With("component", "folders")),
		Out:            render.NewSender(app.tg, app.reaper, logger, cfg.MessageTTL, cfg.AlbumTTL),
		Catalog:        i18n.Default(),
		YouTube:        youtube.NewYTDLP(paths.YTDLP, paths.FFmpeg, cfg.DownloadTimeout, logger.With("component", "youtube")),
		Uploader:       uploader,
		UploadDir:      cfg.UploadDir,
		Log:            logger,
		MaxFileSize:    MaxFileSize,
		VideoSendLimit: youtube.SendLimit,
	}
	b := bot.New(deps, sessions, scenes.Default(), app.tg, logger)
	app.dispatcher = bot.NewDispatcher(cfg.Workers, queueSize, b.Handle, logger.With("component", "dispatcher"))

	ready = true
	return app, nil
}

func (app *App) sessionStore(ctx context.Context, lang i18n.Lang) (session.Store, error) {
	if app.config.SessionBackend != "redis" {
		return session.NewMemoryStore(lang), nil
	}
	client, err := session.NewRedisClient(ctx, app.config.RedisAddr, app.config.RedisPassword, app.config.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}
	app.closers = append(app.closers, func(context.Context) error { return client.Close() })
	return session.NewRedisStore(client, app.config.SessionTTL, lang), nil
}

func newUploader(cfg *config.Config) (fallback.Uploader, error) {
	switch cfg.Fallback {
	case "s3":
		return fallback.NewS3(fallback.S3Config{
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			BaseEndpoint: cfg.S3BaseEndpoint,
			UsePathStyle: cfg.S3UsePathStyle,
		}), nil
	case "tmpfiles", "":
		return fallback.NewTmpFiles(netx.NewHTTPClient(fallbackTimeout), cfg.TmpFilesURL), nil
	}
	return nil, fmt.Errorf("unknown fallback uploader %q", cfg.Fallback)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// receive feeds the dispatcher until ctx is done, by long polling or through
// the webhook server.
func (app *App) receive(ctx context.Context) error {
	dispatch := func(ctx context.Context, u telegram.Update) {
		if err := app.dispatcher.Dispatch(ctx, u); err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Error(ctx, "dispatch update", "update_id", u.ID, "error", err)
		}
	}

	if app.config.Polling() {
		if err := app.tg.DeleteWebhook(ctx); err != nil {
			return fmt.Errorf("delete webhook: %w", err)
		}
		app.logger.Info(ctx, "long polling started")
		app.tg.Poll(ctx, pollTimeoutSec, dispatch)
		return nil
	}

	url := app.config.WebhookURL + "/telegram/" + app.config.WebhookSecret
	if err := app.tg.SetWebhook(ctx, url); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	return webhook.New(app.config.ListenAddr, app.config.WebhookSecret, app.dispatcher, app.logger).Run(ctx)
}

// Run serves updates until a signal arrives or receiving fails, then drains
// queued updates and releases every resource.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "version", Version, "db", app.config.DatabaseDriver)
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.reaper.Run(ctx)
	}()

	// handlers finish their update even after a shutdown signal
	app.dispatcher.Start(context.WithoutCancel(ctx))

	err := app.receive(ctx)
	if err != nil {
		app.logger.Error(ctx, "receiving updates stopped", "error", err)
	}
	cancelFunc()

	app.dispatcher.Close()
	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.close(shutdownCtx)
	app.logger.Info(shutdownCtx, "stopped")
	return err
}

func (app *App) close(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](ctx); err != nil {
			app.logger.Warn(ctx, "shutdown step failed", "error", err)
		}
	}
	app.closers = nil
}
