package core

import (
	"errors"
	"testing"

	"github.com/keshon/better-help/pkg/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCogRegistersUnderCategory(t *testing.T) {
	b := newTestBot(t)

	cog, ok := b.Cog("Tags")
	require.True(t, ok)
	assert.Equal(t, "Tag storage", cog.Description())

	nodes := b.CogCommands(cog)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.Equal(t, "Tags", n.Category())
	}
	assert.Equal(t, "Tags", b.Registry().Get("tag").Find("add").Category())
	assert.Equal(t, []Cog{cog}, b.Cogs())
}

func TestAddCogTwice(t *testing.T) {
	b := New()
	c := &testCog{name: "Fun"}
	require.NoError(t, b.AddCog(c))
	assert.ErrorIs(t, b.AddCog(&testCog{name: "Fun"}), ErrCogExists)
	assert.Equal(t, 1, c.loads)
}

func TestAddCogRollsBack(t *testing.T) {
	t.Run("duplicate command", func(t *testing.T) {
		b := New()
		_, err := b.Register(cmd.Define(cmd.Definition{Name: "roll", Run: noop}))
		require.NoError(t, err)

		err = b.AddCog(&testCog{
			name: "Fun",
			commands: []cmd.Command{
				cmd.Define(cmd.Definition{Name: "coin", Run: noop}),
				cmd.Define(cmd.Definition{Name: "roll", Run: noop}),
			},
		})
		assert.ErrorIs(t, err, cmd.ErrDuplicate)
		assert.Nil(t, b.Registry().Get("coin"))
		assert.NotNil(t, b.Registry().Get("roll"))
		_, ok := b.Cog("Fun")
		assert.False(t, ok)
	})

	t.Run("load hook fails", func(t *testing.T) {
		b := New()
		c := &testCog{
			name:     "Fun",
			commands: []cmd.Command{cmd.Define(cmd.Definition{Name: "coin", Run: noop})},
			loadErr:  errors.New("no dice"),
		}
		err := b.AddCog(c)
		assert.ErrorContains(t, err, "load cog Fun: no dice")
		assert.Nil(t, b.Registry().Get("coin"))
		assert.Empty(t, b.Cogs())
	})
}

func TestRemoveCog(t *testing.T) {
	b := New()
	c := &testCog{
		name:      "Fun",
		commands:  []cmd.Command{cmd.Define(cmd.Definition{Name: "coin", Run: noop})},
		unloadErr: errors.New("busy"),
	}
	require.NoError(t, b.AddCog(c))

	err := b.RemoveCog("Fun")
	assert.ErrorContains(t, err, "unload cog Fun: busy")
	assert.Equal(t, 1, c.unloads)
	assert.Nil(t, b.Registry().Get("coin"))
	assert.Empty(t, b.Cogs())

	assert.ErrorIs(t, b.RemoveCog("Fun"), ErrCogNotFound)
}
