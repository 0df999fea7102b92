package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-bot/internal/bot"
	"github.com/vancomm/minesweeper-bot/internal/config"
	"github.com/vancomm/minesweeper-bot/internal/mines"
	"github.com/vancomm/minesweeper-bot/internal/session"
	"github.com/vancomm/minesweeper-bot/internal/status"
)

const (
	workerTelegram = "telegram"
	workerHTTP     = "http"
)

type App struct {
	log     *logrus.Logger
	cfg     *config.Config
	status  *status.Status
	store   *session.Store
	connect bot.Connect
}

func New(log *logrus.Logger, cfg *config.Config) (*App, error) {
	store, err := session.NewStore(mines.DefaultParams(), createRand())
	if err != nil {
		return nil, err
	}

	if err := tgbotapi.SetLogger(log.WithField("component", "tgbotapi")); err != nil {
		return nil, err
	}

	app := &App{
		log:     log,
		cfg:     cfg,
		status:  status.New(),
		store:   store,
		connect: bot.Dial(cfg.Token, cfg.Development),
	}

	return app, nil
}

// Start runs the Telegram poller and the HTTP server until ctx is
// cancelled. Either worker is restarted when it fails.
func (a *App) Start(ctx context.Context) error {
	a.log.WithFields(a.cfg.Fields()).Info("starting minesweeper bot")

	tgLog := a.log.WithField("component", workerTelegram)
	poller := bot.NewPoller(
		tgLog, a.connect, bot.NewHandler(tgLog, a.store), a.cfg.PollTimeout,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.supervise(ctx, workerTelegram, poller.Run)
	})
	g.Go(func() error {
		return a.supervise(ctx, workerHTTP, a.serveHTTP)
	})

	err := g.Wait()
	a.log.Info("minesweeper bot stopped")
	return err
}

func (a *App) serveHTTP(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	a.log.WithField("addr", a.cfg.Addr).Info("server listening")

	select {
	case err := <-errCh:
		return fmt.Errorf("unable to listen and serve: %w", err)
	case <-ctx.Done():
	}

	sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()

	if err := server.Shutdown(sCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("unable to shut down server: %w", err)
	}
	return nil
}
