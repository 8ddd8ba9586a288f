// Package discord connects a core.Bot to the Discord gateway: it reads
// messages, builds the invocation context and sends replies as embeds.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/better-help/internal/core"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Intents the bot needs to read prefixed commands in guilds and DMs.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Bot is a Discord session driving a core.Bot.
type Bot struct {
	dg   *discordgo.Session
	core *core.Bot
	log  *zap.Logger
}

// New creates the session. Nothing connects until Run.
func New(token string, b *core.Bot, log *zap.Logger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	dg.Identify.Intents = Intents
	return &Bot{dg: dg, core: b, log: log}, nil
}

// Latency returns the last gateway heartbeat round trip.
func (b *Bot) Latency() time.Duration {
	return b.dg.HeartbeatLatency()
}

// Run connects and serves events until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.onMessageCreate(ctx, s, m)
	})

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	b.log.Info("Shutdown signal received, closing session")
	return nil
}
