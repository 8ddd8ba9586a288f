package core

import (
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Messenger delivers embeds to a channel. The Discord adapter implements it
// on top of a session; tests and the preview tool use their own.
type Messenger interface {
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
}

// Context is what the runtime hands a command: where the message came from,
// who sent it and how to answer.
type Context struct {
	Bot       *Bot
	Messenger Messenger

	GuildID   string
	ChannelID string
	AuthorID  string

	// Permissions are the author's permission bits in the channel.
	Permissions int64
	// Color is the bot's display colour in the channel, 0 when it has none.
	Color int

	Prefix       string
	InvokedWith  string
	InvocationID string
}

// Send delivers one embed to the context channel.
func (c *Context) Send(embed *discordgo.MessageEmbed) error {
	return c.Messenger.SendEmbed(c.ChannelID, embed)
}

// Logger returns the bot logger tagged with the invocation.
func (c *Context) Logger() *zap.Logger {
	log := zap.NewNop()
	if c.Bot != nil {
		log = c.Bot.Logger()
	}
	if c.InvocationID != "" {
		log = log.With(zap.String("invocation", c.InvocationID))
	}
	return log
}

// IsAdministrator reports whether the author has the Administrator bit or is
// the configured developer.
func (c *Context) IsAdministrator() bool {
	if c.IsDeveloper() {
		return true
	}
	return c.Permissions&discordgo.PermissionAdministrator != 0
}

// IsDeveloper reports whether the author is the configured developer.
func (c *Context) IsDeveloper() bool {
	return c.Bot != nil && c.Bot.developerID != "" && c.AuthorID == c.Bot.developerID
}

// FromInvocation extracts the Context an adapter stored in inv.Data.
func FromInvocation(inv *cmd.Invocation) (*Context, bool) {
	if inv == nil {
		return nil, false
	}
	c, ok := inv.Data.(*Context)
	return c, ok && c != nil
}
