package discord

import (
	"context"

	"github.com/keshon/better-help/internal/core"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("Discord bot is running",
		zap.String("user", r.User.Username),
		zap.Int("guilds", len(r.Guilds)),
		zap.String("prefix", b.core.Prefix()),
	)
}

func (b *Bot) onMessageCreate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if !shouldHandle(s.State.User, m.Message) {
		return
	}

	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil && m.GuildID != "" {
		b.log.Debug("Failed to resolve permissions",
			zap.String("channel", m.ChannelID),
			zap.String("user", m.Author.ID),
			zap.Error(err),
		)
	}
	color := 0
	if m.GuildID != "" && s.State.User != nil {
		color = s.State.UserColor(s.State.User.ID, m.ChannelID)
	}

	c := b.newContext(&sessionMessenger{s: s}, m.Message, perms, color)
	if err := b.core.Handle(ctx, c, m.Content); err != nil {
		c.Logger().Error("Command failed",
			zap.String("content", m.Content),
			zap.String("channel", m.ChannelID),
			zap.Error(err),
		)
	}
}

// shouldHandle drops messages from bots, including this one.
func shouldHandle(self *discordgo.User, m *discordgo.Message) bool {
	if m == nil || m.Author == nil || m.Author.Bot {
		return false
	}
	return self == nil || m.Author.ID != self.ID
}

func (b *Bot) newContext(messenger core.Messenger, m *discordgo.Message, perms int64, color int) *core.Context {
	return &core.Context{
		Bot:         b.core,
		Messenger:   messenger,
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		AuthorID:    m.Author.ID,
		Permissions: perms,
		Color:       color,
	}
}
