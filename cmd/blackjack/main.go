package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"twentyone/internal/bot"
	"twentyone/internal/config"
	"twentyone/internal/console"
	"twentyone/internal/display"
	"twentyone/internal/game"
	"twentyone/internal/logging"
	"twentyone/internal/session"
	httptransport "twentyone/internal/transport/http"

	"github.com/rs/zerolog/log"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	defer logging.Close()

	cfg, err := config.LoadApp()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}

	ctx := context.Background()
	if cfg.Bot.Enabled {
		// Interactive play keeps the default SIGINT behaviour; a bot run
		// finishes its round and prints the tally.
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	rnd := game.NewRand(cfg.Game.Seed)
	board := session.NewScoreboard(cfg.Game.History)
	printer := console.NewPrinter(os.Stdout, cfg.Game.Color)
	sess, targets := newSession(cfg, rnd, board, printer)
	sess.Display = display.NewFanout(display.Config{FailureThreshold: 3, MuteFor: time.Minute}, targets...)

	var srv *http.Server
	if cfg.Stats.Enabled() {
		srv = startStatsServer(cfg.Stats, board)
	}

	err = sess.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Info().Msg("session interrupted")
	case err != nil:
		log.Fatal().Err(err).Msg("session aborted")
	}
	if err := printer.Summary(board.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("print summary failed")
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("stats server shutdown failed")
		}
	}
}

func newSession(cfg config.AppConfig, rnd game.Shuffler, board *session.Scoreboard, printer *console.Printer) (*session.Session, []display.Target) {
	targets := []display.Target{{Name: "log", Sink: display.LogSink{Logger: log.Logger}}}
	if cfg.Bot.Enabled {
		b := bot.New(cfg.Bot, game.NewRand(cfg.Game.Seed))
		if !cfg.Bot.Quiet {
			targets = append(targets, display.Target{Name: "console", Sink: printer})
		}
		log.Info().Str("strategy", cfg.Bot.Strategy).Int("rounds", cfg.Bot.Rounds).Msg("autoplay enabled")
		return session.New(rnd, b, b, nil, board), targets
	}
	p := console.NewPrompter(os.Stdin, os.Stdout)
	targets = append(targets, display.Target{Name: "console", Sink: printer})
	return session.New(rnd, p, p, nil, board), targets
}

func startStatsServer(cfg config.StatsConfig, board *session.Scoreboard) *http.Server {
	r := httptransport.NewRouter(board)
	httptransport.LogRoutes(r)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("stats http listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("stats server stopped")
		}
	}()
	return srv
}
