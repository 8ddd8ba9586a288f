package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/better-help/pkg/cmd"

	"go.uber.org/zap"
)

// HelpCommand renders help. Exactly one is active on a bot at a time; cogs
// may swap it with Bot.SetHelpCommand.
type HelpCommand interface {
	// SendBotHelp lists every command the caller may run.
	SendBotHelp(ctx context.Context, c *Context) error
	// SendCogHelp describes one cog and its commands.
	SendCogHelp(ctx context.Context, c *Context, cog Cog) error
	// SendGroupHelp describes a command with subcommands.
	SendGroupHelp(ctx context.Context, c *Context, group *cmd.Node) error
	// SendCommandHelp describes a single command.
	SendCommandHelp(ctx context.Context, c *Context, command *cmd.Node) error
	// CommandNotFound returns the message for an unknown command name.
	CommandNotFound(name string) string
	// SubcommandNotFound returns the message for an unknown subcommand.
	SubcommandNotFound(command *cmd.Node, name string) string
	// SendErrorMessage delivers a message produced by the two methods above.
	SendErrorMessage(ctx context.Context, c *Context, message string) error
}

// HelpKind tells which HelpCommand method answers a request.
type HelpKind int

const (
	HelpKindBot HelpKind = iota
	HelpKindCog
	HelpKindGroup
	HelpKindCommand
	HelpKindError
)

func (k HelpKind) String() string {
	switch k {
	case HelpKindBot:
		return "bot"
	case HelpKindCog:
		return "cog"
	case HelpKindGroup:
		return "group"
	case HelpKindCommand:
		return "command"
	case HelpKindError:
		return "error"
	default:
		return fmt.Sprintf("HelpKind(%d)", int(k))
	}
}

// HelpRequest is a resolved help query.
type HelpRequest struct {
	Kind    HelpKind
	Cog     Cog
	Node    *cmd.Node
	Message string
}

// ResolveHelp maps the help arguments to a request. No arguments asks for bot
// help; arguments naming a loaded cog ask for cog help; otherwise they are a
// command path, and unknown names produce an error request whose message
// comes from h.
func (b *Bot) ResolveHelp(h HelpCommand, args []string) HelpRequest {
	if len(args) == 0 {
		return HelpRequest{Kind: HelpKindBot}
	}
	if cog, ok := b.Cog(strings.Join(args, " ")); ok {
		return HelpRequest{Kind: HelpKindCog, Cog: cog}
	}

	n := b.registry.Get(args[0])
	if n == nil {
		return HelpRequest{Kind: HelpKindError, Message: h.CommandNotFound(args[0])}
	}
	for _, key := range args[1:] {
		next := n.Find(key)
		if next == nil {
			return HelpRequest{Kind: HelpKindError, Node: n, Message: h.SubcommandNotFound(n, key)}
		}
		n = next
	}
	if n.IsGroup() {
		return HelpRequest{Kind: HelpKindGroup, Node: n}
	}
	return HelpRequest{Kind: HelpKindCommand, Node: n}
}

// RunHelp answers a help query with the active help handler. It does nothing
// when help is disabled.
func (b *Bot) RunHelp(ctx context.Context, c *Context, args []string) error {
	h := b.HelpCommand()
	if h == nil {
		return nil
	}
	if c.Bot == nil {
		c.Bot = b
	}
	if c.Prefix == "" {
		c.Prefix = b.prefix
	}

	req := b.ResolveHelp(h, args)
	c.Logger().Debug("Help requested",
		zap.Stringer("kind", req.Kind),
		zap.Strings("args", args),
		zap.String("channel", c.ChannelID),
	)

	var err error
	switch req.Kind {
	case HelpKindBot:
		err = h.SendBotHelp(ctx, c)
	case HelpKindCog:
		err = h.SendCogHelp(ctx, c, req.Cog)
	case HelpKindGroup:
		err = h.SendGroupHelp(ctx, c, req.Node)
	case HelpKindCommand:
		err = h.SendCommandHelp(ctx, c, req.Node)
	case HelpKindError:
		err = h.SendErrorMessage(ctx, c, req.Message)
	}
	if err != nil {
		return fmt.Errorf("send %s help: %w", req.Kind, err)
	}
	return nil
}

func helpCommand() cmd.Command {
	return cmd.Define(cmd.Definition{
		Name:        "help",
		Description: "Shows this message",
		Help:        "Shows help for the bot, a category or a command.",
		Params: []cmd.Param{
			{Name: "command", Kind: cmd.Variadic, Doc: "A command, subcommand path or category name."},
		},
		Run: func(ctx context.Context, inv *cmd.Invocation) error {
			c, ok := FromInvocation(inv)
			if !ok || c.Bot == nil {
				return fmt.Errorf("help: no bot context")
			}
			return c.Bot.RunHelp(ctx, c, inv.Args)
		},
	})
}
