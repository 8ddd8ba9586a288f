package help

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/keshon/better-help/pkg/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, d cmd.Definition, category string) *cmd.Node {
	t.Helper()
	r := cmd.NewRegistry()
	n, err := r.Register(cmd.Define(d), category)
	require.NoError(t, err)
	return n
}

func TestCommandBulletPoint(t *testing.T) {
	tests := []struct {
		name string
		def  cmd.Definition
		want string
	}{
		{name: "no doc", def: cmd.Definition{Name: "ping"}, want: "- ping"},
		{name: "description", def: cmd.Definition{Name: "roll", Description: "Rolls dice"}, want: "- roll\n  - Rolls dice"},
		{name: "brief wins", def: cmd.Definition{Name: "roll", Brief: "Dice", Help: "Rolls dice"}, want: "- roll\n  - Dice"},
		{name: "first help line", def: cmd.Definition{Name: "roll", Help: "Rolls dice\nin NdM format"}, want: "- roll\n  - Rolls dice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandBulletPoint(node(t, tt.def, "")))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", ShortDocLimit))
	assert.Equal(t, strings.Repeat("a", 140), Truncate(strings.Repeat("a", 140), ShortDocLimit))

	got := Truncate(strings.Repeat("é", 300), ShortDocLimit)
	assert.Equal(t, ShortDocLimit, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))

	got = Truncate(strings.Repeat("word ", 60), ShortDocLimit)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), ShortDocLimit)
	assert.True(t, strings.HasSuffix(got, "wo..."))

	n := node(t, cmd.Definition{Name: "long", Description: strings.Repeat("b", 500)}, "")
	assert.LessOrEqual(t, utf8.RuneCountInString(ShortDoc(n)), ShortDocLimit)
}

func TestGroupByCategory(t *testing.T) {
	r := cmd.NewRegistry()
	add := func(name, category string) {
		_, err := r.Register(cmd.Define(cmd.Definition{Name: name}), category)
		require.NoError(t, err)
	}
	add("zap", "")
	add("roll", "Fun")
	add("help", "")
	add("ban", "Moderation")
	add("coin", "Fun")

	sections := GroupByCategory(r.Commands(), NoCategory)

	var got []string
	seen := map[string]int{}
	for _, s := range sections {
		got = append(got, s.Name)
		for _, n := range s.Commands {
			seen[n.Name()]++
		}
	}
	assert.Equal(t, []string{"Fun", "Moderation", "Core Commands"}, got)
	assert.Equal(t, map[string]int{"zap": 1, "roll": 1, "help": 1, "ban": 1, "coin": 1}, seen)
	assert.Equal(t, "coin", sections[0].Commands[0].Name())
	assert.Equal(t, "help", sections[2].Commands[0].Name())
	assert.Empty(t, GroupByCategory(nil, NoCategory))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "> one\n>\n> two", Quote("one\n\ntwo\n"))
}

func TestParamBlock(t *testing.T) {
	assert.Equal(t, "- **sides** (optional), default `6`\n  - Faces per die",
		ParamBlock(cmd.Param{Name: "sides", Kind: cmd.Optional, Default: "6", Doc: "Faces per die"}))
	assert.Equal(t, "- **dice** (variadic)\n  - Dice to roll",
		ParamBlock(cmd.Param{Name: "dice", Kind: cmd.Variadic, Doc: "Dice to roll"}))
}
