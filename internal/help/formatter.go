// Package help renders command help as Discord markdown embeds: command lists
// grouped by category, per-command usage, aliases and parameter docs, split
// into pages that fit an embed.
package help

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"
	"github.com/keshon/better-help/pkg/paginator"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// DefaultColor tints pages when the bot has no display colour.
	DefaultColor = 0x5865f2
	// AlertColor tints error messages.
	AlertColor = 0xe74c3c
	// ShortDocLimit caps command previews in lists, ellipsis included.
	ShortDocLimit = 140
	// NoCategory heads commands that belong to no cog.
	NoCategory = "Core Commands"

	spellingHint = "Please check the spelling and capitalization."
)

// Formatter is a core.HelpCommand that renders markdown pages.
type Formatter struct {
	pageSize   int
	noCategory string
	endingNote string
	helpName   string
	log        *zap.Logger
}

var _ core.HelpCommand = (*Formatter)(nil)

// Option configures a Formatter.
type Option func(*Formatter)

// WithPageSize sets the maximum page length in runes.
func WithPageSize(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

// WithNoCategory renames the bucket for commands without a cog.
func WithNoCategory(heading string) Option {
	return func(f *Formatter) {
		if heading != "" {
			f.noCategory = heading
		}
	}
}

// WithEndingNote adds a note at the end of list pages.
func WithEndingNote(note string) Option {
	return func(f *Formatter) { f.endingNote = note }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(f *Formatter) {
		if log != nil {
			f.log = log
		}
	}
}

// New returns a Formatter with Discord-sized pages.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		pageSize:   paginator.DefaultMaxSize,
		noCategory: NoCategory,
		helpName:   "help",
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SendBotHelp lists every command the caller may run, grouped by category.
func (f *Formatter) SendBotHelp(ctx context.Context, c *core.Context) error {
	p := f.newPaginator()
	if d := c.Bot.Description(); d != "" {
		if err := f.addParagraph(p, d, true); err != nil {
			return err
		}
	}
	if err := f.addParagraph(p, f.openingNote(c), true); err != nil {
		return err
	}

	nodes := c.Bot.FilterCommands(ctx, c, c.Bot.Commands(), false)
	for _, section := range GroupByCategory(nodes, f.noCategory) {
		if err := f.addBotCommandsFormatting(p, section.Commands, section.Name); err != nil {
			return err
		}
	}

	if err := f.addEndingNote(p); err != nil {
		return err
	}
	return f.sendPages(c, p)
}

// SendCogHelp describes one cog: the bot description, the opening note, the
// cog description and the cog's commands.
func (f *Formatter) SendCogHelp(ctx context.Context, c *core.Context, cog core.Cog) error {
	p := f.newPaginator()
	for _, text := range []string{c.Bot.Description(), f.openingNote(c), cog.Description()} {
		if text == "" {
			continue
		}
		if err := f.addParagraph(p, text, false); err != nil {
			return err
		}
	}

	nodes := c.Bot.FilterCommands(ctx, c, c.Bot.CogCommands(cog), true)
	if len(nodes) > 0 {
		if err := p.AddLine(fmt.Sprintf("### %s Commands", cog.Name()), false); err != nil {
			return err
		}
		for _, n := range nodes {
			if err := f.addParagraph(p, CommandBulletPoint(n), false); err != nil {
				return err
			}
		}
		if err := f.addEndingNote(p); err != nil {
			return err
		}
	}
	return f.sendPages(c, p)
}

// SendGroupHelp describes a group and lists its subcommands.
func (f *Formatter) SendGroupHelp(ctx context.Context, c *core.Context, group *cmd.Node) error {
	p := f.newPaginator()
	if err := f.addCommandFormatting(p, c, group); err != nil {
		return err
	}

	nodes := c.Bot.FilterCommands(ctx, c, group.Commands(), true)
	if len(nodes) > 0 {
		if err := f.addParagraph(p, f.openingNote(c), true); err != nil {
			return err
		}
		if err := p.AddLine("### Commands", false); err != nil {
			return err
		}
		for _, n := range nodes {
			if err := f.addParagraph(p, CommandBulletPoint(n), false); err != nil {
				return err
			}
		}
		if err := f.addEndingNote(p); err != nil {
			return err
		}
	}
	return f.sendPages(c, p)
}

// SendCommandHelp describes a single command.
func (f *Formatter) SendCommandHelp(_ context.Context, c *core.Context, command *cmd.Node) error {
	p := f.newPaginator()
	if err := f.addCommandFormatting(p, c, command); err != nil {
		return err
	}
	return f.sendPages(c, p)
}

// CommandNotFound extends the stock message with a spelling hint.
func (f *Formatter) CommandNotFound(name string) string {
	return core.DefaultCommandNotFound(name) + "\n" + spellingHint
}

// SubcommandNotFound keeps the stock message.
func (f *Formatter) SubcommandNotFound(command *cmd.Node, name string) string {
	return core.DefaultSubcommandNotFound(command, name)
}

// SendErrorMessage sends message as one alert-tinted embed.
func (f *Formatter) SendErrorMessage(_ context.Context, c *core.Context, message string) error {
	return c.Send(&discordgo.MessageEmbed{Description: message, Color: AlertColor})
}

// CommandSignature returns the full invocation line, e.g. "!tag add <name>".
func (f *Formatter) CommandSignature(c *core.Context, n *cmd.Node) string {
	return strings.TrimSpace(c.Prefix + n.QualifiedName() + " " + n.Signature())
}

func (f *Formatter) newPaginator() *paginator.Paginator {
	return paginator.New(paginator.WithMaxSize(f.pageSize))
}

func (f *Formatter) openingNote(c *core.Context) string {
	return fmt.Sprintf("Use `%[1]s%[2]s [command]` for more info on a command.\n"+
		"You can also use `%[1]s%[2]s [category]` for more info on a category.", c.Prefix, f.helpName)
}

func (f *Formatter) addEndingNote(p *paginator.Paginator) error {
	if f.endingNote == "" {
		return nil
	}
	if err := p.AddLine("", false); err != nil {
		return err
	}
	return f.addParagraph(p, f.endingNote, false)
}

func (f *Formatter) addBotCommandsFormatting(p *paginator.Paginator, nodes []*cmd.Node, heading string) error {
	if len(nodes) == 0 {
		return nil
	}
	bullets := make([]string, 0, len(nodes))
	for _, n := range nodes {
		bullets = append(bullets, CommandBulletPoint(n))
	}
	if err := p.AddLine("### "+heading, false); err != nil {
		return err
	}
	return f.addParagraph(p, strings.Join(bullets, "\n"), false)
}

func (f *Formatter) addCommandFormatting(p *paginator.Paginator, c *core.Context, n *cmd.Node) error {
	if d := n.Description(); d != "" {
		if err := f.addParagraph(p, Quote(d), true); err != nil {
			return err
		}
	}
	if help := n.Help(); help != "" {
		if err := f.addParagraph(p, help, true); err != nil {
			return err
		}
	}

	if err := p.AddLine("### Usage", false); err != nil {
		return err
	}
	if err := f.addParagraph(p, "`"+f.CommandSignature(c, n)+"`", false); err != nil {
		return err
	}

	if aliases := n.Aliases(); len(aliases) > 0 {
		if err := f.addParagraph(p, "### Aliases\n"+bulletList(aliases), false); err != nil {
			return err
		}
	}

	var documented []cmd.Param
	for _, param := range n.Params() {
		if param.Doc != "" {
			documented = append(documented, param)
		}
	}
	if len(documented) > 0 {
		if err := p.AddLine("### Parameters", false); err != nil {
			return err
		}
		for _, param := range documented {
			if err := f.addParagraph(p, ParamBlock(param), false); err != nil {
				return err
			}
		}
	}
	return nil
}

// addParagraph adds text as one unit so it is not split across pages. Text
// that cannot fit on a page is added line by line instead, and lines that
// are still too long are split.
func (f *Formatter) addParagraph(p *paginator.Paginator, text string, empty bool) error {
	err := p.AddLine(text, empty)
	if err == nil || !errors.Is(err, paginator.ErrLineTooLong) {
		return err
	}

	f.log.Debug("Help text does not fit a page, adding it line by line", zap.Error(err))
	for _, line := range strings.Split(text, "\n") {
		for _, chunk := range paginator.Split(line, p.MaxLineSize()) {
			if err := p.AddLine(chunk, false); err != nil {
				return err
			}
		}
	}
	if empty {
		return p.AddLine("", false)
	}
	return nil
}

func (f *Formatter) sendPages(c *core.Context, p *paginator.Paginator) error {
	color := c.Color
	if color == 0 {
		color = DefaultColor
	}
	pages := p.Pages()
	for i, page := range pages {
		if err := c.Send(&discordgo.MessageEmbed{Description: page, Color: color}); err != nil {
			return fmt.Errorf("send help page %d/%d: %w", i+1, len(pages), err)
		}
	}
	c.Logger().Debug("Help sent", zap.Int("pages", len(pages)))
	return nil
}
