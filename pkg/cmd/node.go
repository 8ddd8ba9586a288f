package cmd

import (
	"context"
	"fmt"
	"strings"
)

// Node is a command placed in the registry tree. It knows its parent, its
// category and its subcommands, and answers help metadata questions by asking
// the command's providers.
type Node struct {
	Command Command

	category string
	parent   *Node
	children []*Node
	index    map[string]*Node
}

func newNode(c Command, category string, parent *Node) (*Node, error) {
	n := &Node{
		Command:  c,
		category: category,
		parent:   parent,
		index:    make(map[string]*Node),
	}
	g, ok := As[Grouped](c)
	if !ok {
		return n, nil
	}
	for _, sub := range g.Commands() {
		child, err := newNode(sub, category, n)
		if err != nil {
			return nil, err
		}
		for _, key := range child.keys() {
			if _, taken := n.index[key]; taken {
				return nil, fmt.Errorf("%w: %q under %q", ErrDuplicate, key, n.QualifiedName())
			}
			n.index[key] = child
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

// Name returns the command name.
func (n *Node) Name() string { return n.Command.Name() }

// Category returns the category the command was registered under, or "".
func (n *Node) Category() string { return n.category }

// Parent returns the group owning this command, or nil for top-level commands.
func (n *Node) Parent() *Node { return n.parent }

// QualifiedName returns the full invocation path, e.g. "tag add".
func (n *Node) QualifiedName() string {
	if n.parent == nil {
		return n.Name()
	}
	return n.parent.QualifiedName() + " " + n.Name()
}

// Description returns the command description.
func (n *Node) Description() string { return n.Command.Description() }

// Help returns the long help text, if any.
func (n *Node) Help() string {
	if d, ok := As[Documented](n.Command); ok {
		return d.Help()
	}
	return ""
}

// Brief returns the one-line summary, if any.
func (n *Node) Brief() string {
	if b, ok := As[Briefed](n.Command); ok {
		return b.Brief()
	}
	return ""
}

// ShortDoc returns the brief, falling back to the first line of the help
// text and then of the description.
func (n *Node) ShortDoc() string {
	if b := n.Brief(); b != "" {
		return b
	}
	if h := firstLine(n.Help()); h != "" {
		return h
	}
	return firstLine(n.Description())
}

// Aliases returns the alternative names.
func (n *Node) Aliases() []string {
	if a, ok := As[Aliased](n.Command); ok {
		return a.Aliases()
	}
	return nil
}

// Params returns the declared parameters.
func (n *Node) Params() []Param {
	if p, ok := As[Parameterized](n.Command); ok {
		return p.Params()
	}
	return nil
}

// Signature returns the usage override or the rendered parameter list.
func (n *Node) Signature() string {
	if u, ok := As[Usager](n.Command); ok && u.Usage() != "" {
		return u.Usage()
	}
	return Signature(n.Params())
}

// Hidden reports whether the command should stay out of listings.
func (n *Node) Hidden() bool {
	h, ok := As[Hideable](n.Command)
	return ok && h.Hidden()
}

// IsGroup reports whether the command has subcommands.
func (n *Node) IsGroup() bool { return len(n.children) > 0 }

// Commands returns the subcommands in declaration order.
func (n *Node) Commands() []*Node {
	return append([]*Node(nil), n.children...)
}

// Find returns the subcommand called name (or aliased so), or nil.
func (n *Node) Find(name string) *Node { return n.index[name] }

// CanRun runs the checks of every ancestor and then of the command itself.
func (n *Node) CanRun(ctx context.Context, inv *Invocation) error {
	if n.parent != nil {
		if err := n.parent.CanRun(ctx, inv); err != nil {
			return err
		}
	}
	if c, ok := As[Checker](n.Command); ok {
		return c.Check(ctx, inv)
	}
	return nil
}

func (n *Node) keys() []string {
	return append([]string{n.Name()}, n.Aliases()...)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
