package core

import (
	"context"
	"sort"

	"github.com/keshon/better-help/pkg/cmd"
)

// FilterCommands drops hidden commands and commands whose checks fail for
// the caller. With sorted set the result is ordered by name; otherwise the
// input order is kept.
func (b *Bot) FilterCommands(ctx context.Context, c *Context, nodes []*cmd.Node, sorted bool) []*cmd.Node {
	out := make([]*cmd.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Hidden() {
			continue
		}
		inv := &cmd.Invocation{Name: n.QualifiedName(), Data: c}
		if err := n.CanRun(ctx, inv); err != nil {
			continue
		}
		out = append(out, n)
	}
	if sorted {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name() < out[j].Name()
		})
	}
	return out
}
