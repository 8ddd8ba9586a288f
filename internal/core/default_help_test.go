package core

import (
	"context"
	"strings"
	"testing"

	"github.com/keshon/better-help/internal/core/coretest"
	"github.com/keshon/better-help/pkg/cmd"
	"github.com/keshon/better-help/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHelpBot(t *testing.T) {
	b := newTestBot(t, WithDescription("A tidy bot."))
	rec := &coretest.Recorder{}

	require.NoError(t, b.RunHelp(context.Background(), newTestContext(b, rec), nil))
	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, EmbedColor, sent[0].Embed.Color)

	page := sent[0].Embed.Description
	assert.True(t, strings.HasPrefix(page, "```\nA tidy bot."))
	assert.True(t, strings.HasSuffix(page, "```"))
	assert.Less(t, strings.Index(page, "Tags:"), strings.Index(page, "No Category:"))
	assert.Contains(t, page, "  tag\n")
	assert.Contains(t, page, "  help Shows this message")
	assert.NotContains(t, page, "secret")
	assert.Contains(t, page, "Type !help command for more info on a command.")
}

func TestDefaultHelpPaginates(t *testing.T) {
	b := New()
	b.SetHelpCommand(&DefaultHelp{Width: 80, PageSize: 200})
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		_, err := b.Register(cmd.Define(cmd.Definition{
			Name:        "cmd" + name,
			Description: strings.Repeat(name, 40),
			Run:         noop,
		}))
		require.NoError(t, err)
	}
	rec := &coretest.Recorder{}

	require.NoError(t, b.RunHelp(context.Background(), newTestContext(b, rec), nil))
	pages := rec.Descriptions()
	require.Greater(t, len(pages), 1)
	for _, page := range pages {
		assert.LessOrEqual(t, len([]rune(page)), 200)
		assert.True(t, strings.HasPrefix(page, "```"))
		assert.True(t, strings.HasSuffix(page, "```"))
	}
}

func TestDefaultNotFoundMessages(t *testing.T) {
	b := newTestBot(t)
	assert.Equal(t, `No command called "pnig" found.`, DefaultCommandNotFound("pnig"))
	assert.Equal(t, `Command "tag" has no subcommand named edit`, DefaultSubcommandNotFound(b.Registry().Get("tag"), "edit"))
	assert.Equal(t, `Command "ping" has no subcommands.`, DefaultSubcommandNotFound(b.Registry().Get("ping"), "x"))
}

func TestDefaultHelpReportsPagesTooSmall(t *testing.T) {
	b := newTestBot(t)
	b.SetHelpCommand(&DefaultHelp{Width: 80, PageSize: 5})
	rec := &coretest.Recorder{}

	err := b.RunHelp(context.Background(), newTestContext(b, rec), nil)
	assert.ErrorIs(t, err, paginator.ErrLineTooLong)
	assert.Empty(t, rec.Sent())

	err = b.RunHelp(context.Background(), newTestContext(b, rec), []string{"ping"})
	assert.ErrorIs(t, err, paginator.ErrLineTooLong)
	assert.Empty(t, rec.Sent())
}
