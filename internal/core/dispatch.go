package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// EmbedColor tints the bot's own replies.
	EmbedColor = 0xb01e66
	// AlertColor tints error replies.
	AlertColor = 0xe74c3c
)

// Handle parses a message and runs the command it names. Messages without the
// prefix or naming an unknown command are ignored. A failed check is answered
// with an error embed; a group invoked without a subcommand gets group help.
func (b *Bot) Handle(ctx context.Context, c *Context, content string) error {
	if !strings.HasPrefix(content, b.prefix) {
		return nil
	}
	fields := strings.Fields(strings.TrimPrefix(content, b.prefix))
	if len(fields) == 0 {
		return nil
	}

	if c.Bot == nil {
		c.Bot = b
	}
	if c.InvocationID == "" {
		c.InvocationID = uuid.NewString()
	}

	n, used := b.registry.Resolve(fields)
	if n == nil {
		c.Logger().Debug("Unknown command", zap.String("name", fields[0]))
		return nil
	}
	c.Prefix = b.prefix
	c.InvokedWith = strings.Join(fields[:used], " ")
	inv := &cmd.Invocation{Name: c.InvokedWith, Args: fields[used:], Data: c}

	if err := n.CanRun(ctx, inv); err != nil {
		var checkErr *CheckError
		if !errors.As(err, &checkErr) {
			return fmt.Errorf("check %s: %w", n.QualifiedName(), err)
		}
		return c.Send(&discordgo.MessageEmbed{
			Description: checkErr.Reason,
			Color:       AlertColor,
		})
	}

	command := n.Command
	if n.Parent() != nil {
		command = cmd.Apply(command, b.middleware...)
	}
	err := command.Run(ctx, inv)
	if errors.Is(err, cmd.ErrNoHandler) {
		return b.RunHelp(ctx, c, fields[:used])
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", n.QualifiedName(), err)
	}
	return nil
}
