package general

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

func (c *Cog) aboutCommand() cmd.Command {
	return cmd.Define(cmd.Definition{
		Name:        "about",
		Aliases:     []string{"info"},
		Description: "Discover the origin of this bot",
		Run: func(_ context.Context, inv *cmd.Invocation) error {
			hc, err := invocationContext(inv)
			if err != nil {
				return err
			}

			description := hc.Bot.Description()
			if description == "" {
				description = "A Discord bot."
			}
			fields := []*discordgo.MessageEmbedField{
				{Name: "Prefix", Value: "`" + hc.Bot.Prefix() + "`", Inline: true},
				{Name: "Cogs", Value: cogNames(hc.Bot), Inline: true},
				{Name: "Uptime", Value: time.Since(c.started).Round(time.Second).String(), Inline: true},
				{Name: "Runtime", Value: "Go " + strings.TrimPrefix(runtime.Version(), "go")},
			}
			return hc.Send(&discordgo.MessageEmbed{
				Title:       "About",
				Description: description,
				Color:       core.EmbedColor,
				Fields:      fields,
			})
		},
	})
}

// cogsCommand lists loaded cogs for the developer. It stays out of help.
func (c *Cog) cogsCommand() cmd.Command {
	return cmd.Define(cmd.Definition{
		Name:        "cogs",
		Description: "List loaded cogs",
		Hidden:      true,
		Checks:      []cmd.CheckFunc{core.RequireDeveloper()},
		Run: func(_ context.Context, inv *cmd.Invocation) error {
			hc, err := invocationContext(inv)
			if err != nil {
				return err
			}
			var lines []string
			for _, cog := range hc.Bot.Cogs() {
				lines = append(lines, "- **"+cog.Name()+"** "+cog.Description())
			}
			return hc.Send(&discordgo.MessageEmbed{
				Title:       "Loaded cogs",
				Description: strings.Join(lines, "\n"),
				Color:       core.EmbedColor,
			})
		},
	})
}

func cogNames(b *core.Bot) string {
	var names []string
	for _, cog := range b.Cogs() {
		names = append(names, cog.Name())
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
