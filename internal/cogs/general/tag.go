package general

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// tagStore keeps tags per guild in memory.
type tagStore struct {
	mu   sync.RWMutex
	tags map[string]map[string]string
}

func newTagStore() *tagStore {
	return &tagStore{tags: make(map[string]map[string]string)}
}

func (s *tagStore) get(guild, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.tags[guild][name]
	return v, ok
}

func (s *tagStore) set(guild, name, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tags[guild] == nil {
		s.tags[guild] = make(map[string]string)
	}
	s.tags[guild][name] = content
}

func (s *tagStore) remove(guild, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tags[guild][name]; !ok {
		return false
	}
	delete(s.tags[guild], name)
	return true
}

func (s *tagStore) names(guild string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tags[guild]))
	for name := range s.tags[guild] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Cog) tagCommand() cmd.Command {
	return cmd.Define(cmd.Definition{
		Name:        "tag",
		Aliases:     []string{"t"},
		Description: "Store and recall snippets of text",
		Checks:      []cmd.CheckFunc{core.GuildOnly()},
		Subcommands: []cmd.Command{
			cmd.Define(cmd.Definition{
				Name:        "show",
				Aliases:     []string{"get"},
				Description: "Show a tag",
				Params:      []cmd.Param{{Name: "name", Kind: cmd.Required, Doc: "Tag name"}},
				Run:         c.runTagShow,
			}),
			cmd.Define(cmd.Definition{
				Name:        "list",
				Description: "List the tags of this server",
				Run:         c.runTagList,
			}),
			cmd.Define(cmd.Definition{
				Name:        "add",
				Aliases:     []string{"set"},
				Description: "Create or replace a tag",
				Params: []cmd.Param{
					{Name: "name", Kind: cmd.Required, Doc: "Tag name"},
					{Name: "content", Kind: cmd.Remainder, Doc: "Text the tag expands to"},
				},
				Run: c.runTagAdd,
			}),
			cmd.Define(cmd.Definition{
				Name:        "remove",
				Aliases:     []string{"delete"},
				Description: "Delete a tag",
				Params:      []cmd.Param{{Name: "name", Kind: cmd.Required, Doc: "Tag name"}},
				Checks:      []cmd.CheckFunc{core.RequireAdmin()},
				Run:         c.runTagRemove,
			}),
		},
	})
}

func (c *Cog) runTagShow(_ context.Context, inv *cmd.Invocation) error {
	hc, err := invocationContext(inv)
	if err != nil {
		return err
	}
	if len(inv.Args) < 1 {
		return alert(hc, "Usage: `"+hc.Prefix+inv.Name+" <name>`")
	}
	content, ok := c.tags.get(hc.GuildID, inv.Args[0])
	if !ok {
		return alert(hc, fmt.Sprintf("No tag called `%s`.", inv.Args[0]))
	}
	return hc.Send(&discordgo.MessageEmbed{Title: inv.Args[0], Description: content, Color: core.EmbedColor})
}

func (c *Cog) runTagList(_ context.Context, inv *cmd.Invocation) error {
	hc, err := invocationContext(inv)
	if err != nil {
		return err
	}
	names := c.tags.names(hc.GuildID)
	description := "No tags yet."
	if len(names) > 0 {
		description = "`" + strings.Join(names, "`, `") + "`"
	}
	return hc.Send(&discordgo.MessageEmbed{Title: "Tags", Description: description, Color: core.EmbedColor})
}

func (c *Cog) runTagAdd(_ context.Context, inv *cmd.Invocation) error {
	hc, err := invocationContext(inv)
	if err != nil {
		return err
	}
	if len(inv.Args) < 2 {
		return alert(hc, "Usage: `"+hc.Prefix+inv.Name+" <name> <content...>`")
	}
	name, content := inv.Args[0], strings.Join(inv.Args[1:], " ")
	c.tags.set(hc.GuildID, name, content)
	return hc.Send(&discordgo.MessageEmbed{Description: fmt.Sprintf("Tag `%s` saved.", name), Color: core.EmbedColor})
}

func (c *Cog) runTagRemove(_ context.Context, inv *cmd.Invocation) error {
	hc, err := invocationContext(inv)
	if err != nil {
		return err
	}
	if len(inv.Args) < 1 {
		return alert(hc, "Usage: `"+hc.Prefix+inv.Name+" <name>`")
	}
	if !c.tags.remove(hc.GuildID, inv.Args[0]) {
		return alert(hc, fmt.Sprintf("No tag called `%s`.", inv.Args[0]))
	}
	return hc.Send(&discordgo.MessageEmbed{Description: fmt.Sprintf("Tag `%s` removed.", inv.Args[0]), Color: core.EmbedColor})
}

func alert(hc *core.Context, message string) error {
	return hc.Send(&discordgo.MessageEmbed{Description: message, Color: core.AlertColor})
}
