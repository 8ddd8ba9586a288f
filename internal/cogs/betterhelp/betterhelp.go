// Package betterhelp is the cog that replaces the bot's help handler with the
// markdown formatter from package help while it is loaded.
package betterhelp

import (
	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/internal/help"
	"github.com/keshon/better-help/pkg/cmd"

	"go.uber.org/zap"
)

// ModuleID identifies the cog in configuration and logs.
const ModuleID = "better_help_command"

// Cog swaps the help handler on load and restores the previous one on unload.
type Cog struct {
	formatter core.HelpCommand
	previous  core.HelpCommand
	loaded    bool
}

// New returns the cog. opts configure the formatter it installs.
func New(opts ...help.Option) *Cog {
	return &Cog{formatter: help.New(opts...)}
}

func (c *Cog) Name() string            { return "BetterHelp" }
func (c *Cog) Description() string     { return "Formats help as paginated embeds." }
func (c *Cog) Commands() []cmd.Command { return nil }

// Formatter returns the handler the cog installs.
func (c *Cog) Formatter() core.HelpCommand { return c.formatter }

// CogLoad remembers the active handler and installs the formatter.
func (c *Cog) CogLoad(b *core.Bot) error {
	c.previous = b.HelpCommand()
	c.loaded = true
	b.SetHelpCommand(c.formatter)
	b.Logger().Info("Help handler replaced", zap.String("module", ModuleID))
	return nil
}

// CogUnload puts back the handler that was active before CogLoad.
func (c *Cog) CogUnload(b *core.Bot) error {
	if !c.loaded {
		return nil
	}
	b.SetHelpCommand(c.previous)
	c.previous = nil
	c.loaded = false
	b.Logger().Info("Help handler restored", zap.String("module", ModuleID))
	return nil
}
