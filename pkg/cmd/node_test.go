package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bareCommand struct{ name, desc string }

func (c bareCommand) Name() string                           { return c.name }
func (c bareCommand) Description() string                    { return c.desc }
func (c bareCommand) Run(context.Context, *Invocation) error { return nil }

func TestNodeShortDoc(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "brief wins",
			cmd:  Define(Definition{Name: "a", Brief: "brief", Help: "help line\nmore"}),
			want: "brief",
		},
		{
			name: "first help line",
			cmd:  Define(Definition{Name: "a", Help: "\n  help line  \nmore", Description: "desc"}),
			want: "help line",
		},
		{
			name: "description fallback",
			cmd:  bareCommand{name: "a", desc: "first\nsecond"},
			want: "first",
		},
		{
			name: "nothing",
			cmd:  Define(Definition{Name: "ping"}),
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := newNode(tt.cmd, "", nil)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, n.ShortDoc())
		})
	}
}

func TestNodeSignature(t *testing.T) {
	n, err := newNode(Define(Definition{
		Name: "roll",
		Params: []Param{
			{Name: "formula", Kind: Required},
			{Name: "times", Kind: Optional, Default: "1"},
			{Name: "label", Kind: Optional},
			{Name: "extra", Kind: Variadic},
			{Name: "note", Kind: Remainder},
		},
	}), "", nil)
	assert.NoError(t, err)
	assert.Equal(t, "<formula> [times=1] [label] [extra...] <note...>", n.Signature())

	n, err = newNode(Define(Definition{Name: "x", Usage: "<custom>", Params: []Param{{Name: "p"}}}), "", nil)
	assert.NoError(t, err)
	assert.Equal(t, "<custom>", n.Signature())
}

func TestNodeMetadataThroughMiddleware(t *testing.T) {
	inner := Define(Definition{Name: "ping", Aliases: []string{"p"}, Hidden: true, Help: "Pong."})
	var ran bool
	wrapped := Apply(inner, func(c Command) Command {
		return Wrap(c, func(ctx context.Context, inv *Invocation) error {
			ran = true
			return c.Run(ctx, inv)
		})
	})

	n, err := newNode(wrapped, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"p"}, n.Aliases())
	assert.True(t, n.Hidden())
	assert.Equal(t, "Pong.", n.Help())
	assert.Same(t, inner, Root(wrapped))

	assert.NoError(t, n.Command.Run(context.Background(), &Invocation{}))
	assert.True(t, ran)
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(c Command) Command {
			return Wrap(c, func(ctx context.Context, inv *Invocation) error {
				order = append(order, name)
				return c.Run(ctx, inv)
			})
		}
	}
	inner := Define(Definition{Name: "ping", Run: func(context.Context, *Invocation) error {
		order = append(order, "run")
		return nil
	}})

	c := Apply(inner, Chain(tag("a"), nil, tag("b")), Chain(tag("c")))
	assert.NoError(t, c.Run(context.Background(), &Invocation{}))
	assert.Equal(t, []string{"c", "b", "a", "run"}, order)
	assert.Same(t, inner, Root(c))
}

func TestParamKindString(t *testing.T) {
	assert.Equal(t, "required", Required.String())
	assert.Equal(t, "optional", Optional.String())
	assert.Equal(t, "variadic", Variadic.String())
	assert.Equal(t, "rest of message", Remainder.String())
	assert.Equal(t, "ParamKind(9)", ParamKind(9).String())
}

func TestDefinedGroupWithoutHandler(t *testing.T) {
	err := Define(Definition{Name: "tag"}).Run(context.Background(), &Invocation{})
	assert.ErrorIs(t, err, ErrNoHandler)
}
