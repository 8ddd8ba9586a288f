package core

import (
	"fmt"
	"sync"

	"github.com/keshon/better-help/pkg/cmd"

	"go.uber.org/zap"
)

// Bot owns the command tree, the loaded cogs and the active help handler.
type Bot struct {
	registry *cmd.Registry

	mu       sync.RWMutex
	help     HelpCommand
	cogs     map[string]*loadedCog
	cogOrder []string

	prefix      string
	description string
	developerID string
	middleware  []cmd.Middleware
	log         *zap.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithPrefix sets the command prefix. Defaults to "!".
func WithPrefix(prefix string) Option {
	return func(b *Bot) { b.prefix = prefix }
}

// WithDescription sets the bot description shown at the top of help.
func WithDescription(description string) Option {
	return func(b *Bot) { b.description = description }
}

// WithDeveloperID marks a user as the developer for RequireDeveloper and
// RequireAdmin.
func WithDeveloperID(id string) Option {
	return func(b *Bot) { b.developerID = id }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Bot) {
		if log != nil {
			b.log = log
		}
	}
}

// WithMiddleware adds middlewares applied to every registered command.
func WithMiddleware(mws ...cmd.Middleware) Option {
	return func(b *Bot) { b.middleware = append(b.middleware, mws...) }
}

// WithHelpCommand replaces the initial help handler.
func WithHelpCommand(h HelpCommand) Option {
	return func(b *Bot) { b.help = h }
}

// New returns a bot with the built-in help command registered and
// DefaultHelp installed as its handler.
func New(opts ...Option) *Bot {
	b := &Bot{
		registry: cmd.NewRegistry(),
		cogs:     make(map[string]*loadedCog),
		prefix:   "!",
		log:      zap.NewNop(),
		help:     NewDefaultHelp(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if _, err := b.registry.Register(cmd.Apply(helpCommand(), b.middleware...), ""); err != nil {
		panic(fmt.Sprintf("register help command: %v", err))
	}
	return b
}

// Prefix returns the command prefix.
func (b *Bot) Prefix() string { return b.prefix }

// Description returns the bot description.
func (b *Bot) Description() string { return b.description }

// Logger returns the bot logger.
func (b *Bot) Logger() *zap.Logger { return b.log }

// Registry exposes the command tree.
func (b *Bot) Registry() *cmd.Registry { return b.registry }

// HelpCommand returns the active help handler, nil when help is disabled.
func (b *Bot) HelpCommand() HelpCommand {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.help
}

// SetHelpCommand installs h as the help handler. nil disables help output.
func (b *Bot) SetHelpCommand(h HelpCommand) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.help = h
}

// Register adds uncategorised commands. mws wrap each command on top of the
// bot-wide middleware.
func (b *Bot) Register(c cmd.Command, mws ...cmd.Middleware) (*cmd.Node, error) {
	return b.register(c, "", mws...)
}

func (b *Bot) register(c cmd.Command, category string, mws ...cmd.Middleware) (*cmd.Node, error) {
	c = cmd.Apply(c, cmd.Chain(mws...), cmd.Chain(b.middleware...))
	n, err := b.registry.Register(c, category)
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", c.Name(), err)
	}
	return n, nil
}

// Commands returns the top-level commands in registration order.
func (b *Bot) Commands() []*cmd.Node { return b.registry.Commands() }
