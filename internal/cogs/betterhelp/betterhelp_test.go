package betterhelp

import (
	"context"
	"testing"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/internal/core/coretest"
	"github.com/keshon/better-help/internal/help"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUnloadRestoresPrevious(t *testing.T) {
	b := core.New()
	previous := b.HelpCommand()

	cog := New()
	require.NoError(t, b.AddCog(cog))
	assert.Same(t, cog.Formatter(), b.HelpCommand())
	assert.IsType(t, &help.Formatter{}, b.HelpCommand())

	require.NoError(t, b.RemoveCog(cog.Name()))
	assert.Same(t, previous, b.HelpCommand())
}

func TestRestoresDisabledHelp(t *testing.T) {
	b := core.New()
	b.SetHelpCommand(nil)

	cog := New()
	require.NoError(t, b.AddCog(cog))
	require.NotNil(t, b.HelpCommand())

	require.NoError(t, b.RemoveCog(cog.Name()))
	assert.Nil(t, b.HelpCommand())
}

func TestUnloadWithoutLoad(t *testing.T) {
	b := core.New()
	previous := b.HelpCommand()

	require.NoError(t, New().CogUnload(b))
	assert.Same(t, previous, b.HelpCommand())
}

func TestReloadCycle(t *testing.T) {
	b := core.New()
	previous := b.HelpCommand()
	cog := New(help.WithPageSize(500))

	for i := 0; i < 3; i++ {
		require.NoError(t, b.AddCog(cog))
		require.NoError(t, b.RemoveCog(cog.Name()))
	}
	assert.Same(t, previous, b.HelpCommand())
}

func TestHelpUsesFormatterWhileLoaded(t *testing.T) {
	b := core.New()
	require.NoError(t, b.AddCog(New()))
	rec := &coretest.Recorder{}

	c := &core.Context{Bot: b, Messenger: rec, ChannelID: "c"}
	require.NoError(t, b.Handle(context.Background(), c, "!help"))
	require.Len(t, rec.Sent(), 1)
	assert.Equal(t, help.DefaultColor, rec.Sent()[0].Embed.Color)
	assert.Contains(t, rec.Sent()[0].Embed.Description, "### Core Commands\n- help")
}
