// Package terminal prints embeds to a terminal: a coloured header per page
// and the description rendered as markdown.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1)

// Messenger is a core.Messenger writing to out.
type Messenger struct {
	mu    sync.Mutex
	out   io.Writer
	md    *glamour.TermRenderer
	pages int
}

// Option configures the markdown renderer.
type Option = glamour.TermRendererOption

// New returns a messenger. Without options glamour picks a style from the
// terminal and wraps at 80 columns.
func New(out io.Writer, opts ...Option) (*Messenger, error) {
	if len(opts) == 0 {
		opts = []Option{glamour.WithAutoStyle(), glamour.WithWordWrap(80)}
	}
	md, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Messenger{out: out, md: md}, nil
}

// SendEmbed prints one page.
func (m *Messenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	body, err := m.md.Render(embed.Description)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	m.pages++

	title := fmt.Sprintf("#%s page %d", channelID, m.pages)
	if embed.Title != "" {
		title += " · " + embed.Title
	}
	header := headerStyle.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(fmt.Sprintf("#%06x", embed.Color))).
		Render(title)

	_, err = fmt.Fprintf(m.out, "%s\n%s\n", header, body)
	return err
}

// Pages returns how many pages were printed.
func (m *Messenger) Pages() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pages
}
