package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/keshon/better-help/pkg/cmd"
	"github.com/keshon/better-help/pkg/paginator"

	"github.com/bwmarrin/discordgo"
)

const defaultNoCategory = "No Category"

// DefaultCommandNotFound is the stock message for an unknown command.
func DefaultCommandNotFound(name string) string {
	return fmt.Sprintf("No command called %q found.", name)
}

// DefaultSubcommandNotFound is the stock message for an unknown subcommand.
func DefaultSubcommandNotFound(n *cmd.Node, name string) string {
	if n.IsGroup() {
		return fmt.Sprintf("Command %q has no subcommand named %s", n.QualifiedName(), name)
	}
	return fmt.Sprintf("Command %q has no subcommands.", n.QualifiedName())
}

// DefaultHelp is the help handler a bot starts with: plain code blocks, one
// line per command.
type DefaultHelp struct {
	// Width caps the length of a command line.
	Width int
	// PageSize caps the length of a page.
	PageSize int
}

// NewDefaultHelp returns the stock help handler.
func NewDefaultHelp() *DefaultHelp {
	return &DefaultHelp{Width: 80, PageSize: paginator.DefaultMaxSize}
}

func (h *DefaultHelp) newPaginator() *pageBuilder {
	return &pageBuilder{p: paginator.New(
		paginator.WithPrefix("```"),
		paginator.WithSuffix("```"),
		paginator.WithMaxSize(h.PageSize),
	)}
}

func (h *DefaultHelp) SendBotHelp(ctx context.Context, c *Context) error {
	p := h.newPaginator()
	if d := c.Bot.Description(); d != "" {
		p.lines(d)
		p.blank()
	}

	byCategory := map[string][]*cmd.Node{}
	var categories []string
	for _, n := range c.Bot.FilterCommands(ctx, c, c.Bot.Commands(), true) {
		cat := n.Category()
		if cat == "" {
			cat = defaultNoCategory
		}
		if _, ok := byCategory[cat]; !ok {
			categories = append(categories, cat)
		}
		byCategory[cat] = append(byCategory[cat], n)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[j] == defaultNoCategory {
			return categories[i] != defaultNoCategory
		}
		if categories[i] == defaultNoCategory {
			return false
		}
		return categories[i] < categories[j]
	})

	for _, cat := range categories {
		p.lines(cat+":")
		h.addIndented(p, byCategory[cat])
	}
	p.blank()
	p.lines(h.endingNote(c))
	return h.sendPages(c, p)
}

func (h *DefaultHelp) SendCogHelp(ctx context.Context, c *Context, cog Cog) error {
	p := h.newPaginator()
	if d := cog.Description(); d != "" {
		p.lines(d)
		p.blank()
	}
	nodes := c.Bot.FilterCommands(ctx, c, c.Bot.CogCommands(cog), true)
	if len(nodes) > 0 {
		p.lines("Commands:")
		h.addIndented(p, nodes)
	}
	p.blank()
	p.lines(h.endingNote(c))
	return h.sendPages(c, p)
}

func (h *DefaultHelp) SendGroupHelp(ctx context.Context, c *Context, group *cmd.Node) error {
	p := h.newPaginator()
	h.addCommand(p, c, group)
	nodes := c.Bot.FilterCommands(ctx, c, group.Commands(), true)
	if len(nodes) > 0 {
		p.blank()
		p.lines("Commands:")
		h.addIndented(p, nodes)
	}
	return h.sendPages(c, p)
}

func (h *DefaultHelp) SendCommandHelp(_ context.Context, c *Context, command *cmd.Node) error {
	p := h.newPaginator()
	h.addCommand(p, c, command)
	return h.sendPages(c, p)
}

func (h *DefaultHelp) CommandNotFound(name string) string { return DefaultCommandNotFound(name) }

func (h *DefaultHelp) SubcommandNotFound(n *cmd.Node, name string) string {
	return DefaultSubcommandNotFound(n, name)
}

func (h *DefaultHelp) SendErrorMessage(_ context.Context, c *Context, message string) error {
	return c.Send(&discordgo.MessageEmbed{Description: message, Color: AlertColor})
}

func (h *DefaultHelp) addCommand(p *pageBuilder, c *Context, n *cmd.Node) {
	p.lines(strings.TrimSpace(c.Prefix+n.QualifiedName()+" "+n.Signature()))
	if d := n.Description(); d != "" {
		p.blank()
		p.lines(d)
	}
	if help := n.Help(); help != "" {
		p.blank()
		p.lines(help)
	}
}

func (h *DefaultHelp) addIndented(p *pageBuilder, nodes []*cmd.Node) {
	width := 0
	for _, n := range nodes {
		if w := utf8.RuneCountInString(n.Name()); w > width {
			width = w
		}
	}
	for _, n := range nodes {
		line := fmt.Sprintf("  %-*s %s", width, n.Name(), n.ShortDoc())
		line = strings.TrimRight(line, " ")
		if h.Width > 3 && utf8.RuneCountInString(line) > h.Width {
			line = string([]rune(line)[:h.Width-3]) + "..."
		}
		p.lines(line)
	}
}

func (h *DefaultHelp) endingNote(c *Context) string {
	name := c.InvokedWith
	if name == "" {
		name = "help"
	}
	return fmt.Sprintf("Type %s%s command for more info on a command.\n"+
		"You can also type %s%s category for more info on a category.", c.Prefix, name, c.Prefix, name)
}

func (h *DefaultHelp) sendPages(c *Context, p *pageBuilder) error {
	if p.err != nil {
		return fmt.Errorf("build help pages: %w", p.err)
	}
	for _, page := range p.p.Pages() {
		if err := c.Send(&discordgo.MessageEmbed{Description: page, Color: EmbedColor}); err != nil {
			return err
		}
	}
	return nil
}

// pageBuilder adds text line by line, splitting lines that cannot fit a
// page. The first error sticks and later adds are no-ops.
type pageBuilder struct {
	p   *paginator.Paginator
	err error
}

func (b *pageBuilder) lines(text string) {
	for _, line := range strings.Split(text, "\n") {
		for _, chunk := range paginator.Split(line, b.p.MaxLineSize()) {
			if b.err != nil {
				return
			}
			b.err = b.p.AddLine(chunk, false)
		}
	}
}

func (b *pageBuilder) blank() { b.lines("") }
