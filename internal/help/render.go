package help

import (
	"sort"
	"strings"
	"unicode"

	"github.com/keshon/better-help/pkg/cmd"
)

const ellipsis = "..."

// Section is one category of a bot-wide command list.
type Section struct {
	Name     string
	Commands []*cmd.Node
}

// GroupByCategory groups nodes by category. Categories are ordered by name
// with uncategorised commands, listed under noCategory, last; commands inside
// a category are ordered by name. Every node appears exactly once.
func GroupByCategory(nodes []*cmd.Node, noCategory string) []Section {
	ordered := append([]*cmd.Node(nil), nodes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Category(), ordered[j].Category()
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})

	var sections []Section
	for _, n := range ordered {
		name := n.Category()
		if name == "" {
			name = noCategory
		}
		if len(sections) == 0 || sections[len(sections)-1].Name != name {
			sections = append(sections, Section{Name: name})
		}
		last := &sections[len(sections)-1]
		last.Commands = append(last.Commands, n)
	}

	for _, s := range sections {
		sort.SliceStable(s.Commands, func(i, j int) bool {
			return s.Commands[i].Name() < s.Commands[j].Name()
		})
	}
	return sections
}

// CommandBulletPoint renders a command as a list item with its short doc as
// a nested item.
func CommandBulletPoint(n *cmd.Node) string {
	line := "- " + n.QualifiedName()
	if doc := ShortDoc(n); doc != "" {
		line += "\n  - " + doc
	}
	return line
}

// ShortDoc returns the command preview, truncated to ShortDocLimit.
func ShortDoc(n *cmd.Node) string {
	return Truncate(n.ShortDoc(), ShortDocLimit)
}

// Truncate shortens s to at most limit runes, marking the cut with "...".
func Truncate(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	keep := limit - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return strings.TrimRightFunc(string(rs[:keep]), unicode.IsSpace) + ellipsis
}

// Quote prefixes every line of s with a markdown quote marker.
func Quote(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("> "+line, " ")
	}
	return strings.Join(lines, "\n")
}

// ParamBlock documents one parameter.
func ParamBlock(p cmd.Param) string {
	block := "- **" + p.Name + "** (" + p.Kind.String() + ")"
	if p.Kind == cmd.Optional && p.Default != "" {
		block += ", default `" + p.Default + "`"
	}
	return block + "\n  - " + p.Doc
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
