package core

import (
	"context"
	"errors"
	"time"

	"github.com/keshon/better-help/pkg/cmd"

	"go.uber.org/zap"
)

// WithGuildOnly silently ignores the command outside guilds.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if hc, ok := FromInvocation(inv); ok && hc.GuildID == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}

// WithCommandLogger logs every execution after it finishes. A group invoked
// without a subcommand is not logged; the dispatcher answers it with help.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)
			if errors.Is(err, cmd.ErrNoHandler) {
				return err
			}

			hc, ok := FromInvocation(inv)
			if !ok {
				return err
			}
			fields := []zap.Field{
				zap.String("command", inv.Name),
				zap.String("guild", hc.GuildID),
				zap.String("channel", hc.ChannelID),
				zap.String("user", hc.AuthorID),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				hc.Logger().Warn("Command failed", append(fields, zap.Error(err))...)
			} else {
				hc.Logger().Info("Command executed", fields...)
			}
			return err
		})
	}
}
