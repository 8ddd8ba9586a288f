// Package docs renders the command reference section of the README from a
// bot's command tree.
package docs

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/internal/help"
	"github.com/keshon/better-help/pkg/cmd"
)

//go:embed readme.md.tmpl
var defaultTemplate string

// CommandSections lists every visible command of b as markdown, one section
// per category in help order. Subcommands are nested under their group.
// Permission checks are not applied: the reference documents everything.
func CommandSections(b *core.Bot) string {
	var nodes []*cmd.Node
	for _, n := range b.Commands() {
		if !n.Hidden() {
			nodes = append(nodes, n)
		}
	}

	var buf bytes.Buffer
	for i, section := range help.GroupByCategory(nodes, help.NoCategory) {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "### %s\n\n", section.Name)
		for _, n := range section.Commands {
			writeCommand(&buf, b.Prefix(), n, 0)
		}
	}
	return buf.String()
}

func writeCommand(buf *bytes.Buffer, prefix string, n *cmd.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	usage := strings.TrimSpace(prefix + n.QualifiedName() + " " + n.Signature())
	fmt.Fprintf(buf, "%s- **`%s`**", indent, usage)
	if doc := help.ShortDoc(n); doc != "" {
		fmt.Fprintf(buf, ": %s", doc)
	}
	buf.WriteString("\n")
	for _, sub := range n.Commands() {
		if !sub.Hidden() {
			writeCommand(buf, prefix, sub, depth+1)
		}
	}
}

// Readme holds the values the README template sees.
type Readme struct {
	Name            string
	Description     string
	Prefix          string
	CommandSections string
}

// Render executes tmpl, or the built-in template when tmpl is empty.
func Render(b *core.Bot, name, tmpl string) (string, error) {
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	t, err := template.New("readme").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse readme template: %w", err)
	}

	var out bytes.Buffer
	err = t.Execute(&out, Readme{
		Name:            name,
		Description:     b.Description(),
		Prefix:          b.Prefix(),
		CommandSections: CommandSections(b),
	})
	if err != nil {
		return "", fmt.Errorf("render readme: %w", err)
	}
	return out.String(), nil
}

// WriteFile renders the README into path. tmplPath may be empty.
func WriteFile(b *core.Bot, name, tmplPath, path string) error {
	var tmpl string
	if tmplPath != "" {
		data, err := os.ReadFile(tmplPath)
		if err != nil {
			return fmt.Errorf("read readme template: %w", err)
		}
		tmpl = string(data)
	}
	out, err := Render(b, name, tmpl)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}
