package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/better-help/internal/cogs/betterhelp"
	"github.com/keshon/better-help/internal/cogs/general"
	"github.com/keshon/better-help/internal/config"
	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/internal/discord"
	"github.com/keshon/better-help/internal/help"
	"github.com/keshon/better-help/internal/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Discord bot error", zap.Error(err))
	}
	logger.Info("Discord bot exited cleanly")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := core.New(
		core.WithPrefix(cfg.Prefix),
		core.WithDescription(cfg.Description),
		core.WithDeveloperID(cfg.DeveloperID),
		core.WithLogger(logger),
		core.WithMiddleware(core.WithCommandLogger()),
	)

	session, err := discord.New(cfg.DiscordToken, bot, logger.Named("discord"))
	if err != nil {
		return err
	}

	if err := bot.AddCog(general.New(general.WithLatency(session.Latency))); err != nil {
		return err
	}
	if err := bot.AddCog(betterhelp.New(
		help.WithPageSize(cfg.HelpPageSize),
		help.WithLogger(logger.Named("help")),
	)); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- session.Run(ctx)
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("Received signal, shutting down", zap.Stringer("signal", s))
		cancel()
		return <-errCh
	case err := <-errCh:
		return err
	}
}
