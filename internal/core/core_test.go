package core

import (
	"context"
	"testing"

	"github.com/keshon/better-help/internal/core/coretest"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHelp struct {
	mock.Mock
}

func (m *mockHelp) SendBotHelp(ctx context.Context, c *Context) error {
	return m.Called(c).Error(0)
}

func (m *mockHelp) SendCogHelp(ctx context.Context, c *Context, cog Cog) error {
	return m.Called(c, cog).Error(0)
}

func (m *mockHelp) SendGroupHelp(ctx context.Context, c *Context, group *cmd.Node) error {
	return m.Called(c, group).Error(0)
}

func (m *mockHelp) SendCommandHelp(ctx context.Context, c *Context, command *cmd.Node) error {
	return m.Called(c, command).Error(0)
}

func (m *mockHelp) CommandNotFound(name string) string {
	return m.Called(name).String(0)
}

func (m *mockHelp) SubcommandNotFound(command *cmd.Node, name string) string {
	return m.Called(command, name).String(0)
}

func (m *mockHelp) SendErrorMessage(ctx context.Context, c *Context, message string) error {
	return m.Called(c, message).Error(0)
}

type testCog struct {
	name     string
	desc     string
	commands []cmd.Command

	loadErr   error
	unloadErr error
	loads     int
	unloads   int
}

func (c *testCog) Name() string            { return c.name }
func (c *testCog) Description() string     { return c.desc }
func (c *testCog) Commands() []cmd.Command { return c.commands }

func (c *testCog) CogLoad(*Bot) error {
	c.loads++
	return c.loadErr
}

func (c *testCog) CogUnload(*Bot) error {
	c.unloads++
	return c.unloadErr
}

func newTestBot(t *testing.T, opts ...Option) *Bot {
	t.Helper()
	b := New(append([]Option{WithPrefix("!"), WithDeveloperID("dev")}, opts...)...)

	_, err := b.Register(cmd.Define(cmd.Definition{Name: "ping", Run: noop}))
	require.NoError(t, err)

	require.NoError(t, b.AddCog(&testCog{
		name: "Tags",
		desc: "Tag storage",
		commands: []cmd.Command{
			cmd.Define(cmd.Definition{
				Name:    "tag",
				Aliases: []string{"t"},
				Subcommands: []cmd.Command{
					cmd.Define(cmd.Definition{Name: "add", Run: noop}),
					cmd.Define(cmd.Definition{Name: "remove", Run: noop, Checks: []cmd.CheckFunc{RequireAdmin()}}),
				},
			}),
			cmd.Define(cmd.Definition{Name: "secret", Hidden: true, Run: noop}),
		},
	}))
	return b
}

func newTestContext(b *Bot, rec *coretest.Recorder) *Context {
	return &Context{
		Bot:       b,
		Messenger: rec,
		GuildID:   "guild",
		ChannelID: "channel",
		AuthorID:  "user",
	}
}

func noop(context.Context, *cmd.Invocation) error { return nil }
