package general

import (
	"context"
	"fmt"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

func (c *Cog) pingCommand() cmd.Command {
	return cmd.Define(cmd.Definition{
		Name:        "ping",
		Description: "Check bot latency",
		Run: func(_ context.Context, inv *cmd.Invocation) error {
			hc, err := invocationContext(inv)
			if err != nil {
				return err
			}
			return hc.Send(&discordgo.MessageEmbed{
				Title:       "Pong!",
				Description: fmt.Sprintf("Latency: %dms", c.latency().Milliseconds()),
				Color:       core.EmbedColor,
			})
		},
	})
}
