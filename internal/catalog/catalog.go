// Package catalog loads a bot's command tree from a YAML file so help output
// can be previewed without connecting to Discord.
package catalog

import (
	"errors"
	"fmt"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// File is the catalog document.
type File struct {
	Prefix      string    `yaml:"prefix"`
	Description string    `yaml:"description"`
	Commands    []Command `yaml:"commands"`
	Cogs        []Cog     `yaml:"cogs"`
}

// Cog is a named set of commands.
type Cog struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Commands    []Command `yaml:"commands"`
}

// Command describes one command and its subcommands.
type Command struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Brief       string    `yaml:"brief"`
	Help        string    `yaml:"help"`
	Usage       string    `yaml:"usage"`
	Aliases     []string  `yaml:"aliases"`
	Params      []Param   `yaml:"params"`
	Hidden      bool      `yaml:"hidden"`
	GuildOnly   bool      `yaml:"guild_only"`
	Admin       bool      `yaml:"admin"`
	Developer   bool      `yaml:"developer"`
	Subcommands []Command `yaml:"subcommands"`
}

// Param describes one argument. Kind is required, optional, variadic or rest.
type Param struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Default string `yaml:"default"`
	Doc     string `yaml:"doc"`
}

var paramKinds = map[string]cmd.ParamKind{
	"":         cmd.Required,
	"required": cmd.Required,
	"optional": cmd.Optional,
	"variadic": cmd.Variadic,
	"rest":     cmd.Remainder,
}

// Load reads and validates a catalog file.
func Load(path string) (*File, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog from %q: %w", path, err)
	}

	var f File
	if err := k.UnmarshalWithConf("", &f, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("failed to parse catalog from %q: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed for %q: %w", path, err)
	}
	return &f, nil
}

// Validate checks names and parameter kinds. Duplicate names are reported
// when the tree is registered.
func (f *File) Validate() error {
	var errs []error
	for _, c := range f.Commands {
		errs = append(errs, c.validate("")...)
	}
	seen := map[string]bool{}
	for i, cog := range f.Cogs {
		if cog.Name == "" {
			errs = append(errs, fmt.Errorf("cogs[%d]: name is required", i))
			continue
		}
		if seen[cog.Name] {
			errs = append(errs, fmt.Errorf("cog %q declared twice", cog.Name))
		}
		seen[cog.Name] = true
		for _, c := range cog.Commands {
			errs = append(errs, c.validate(cog.Name+": ")...)
		}
	}
	return errors.Join(errs...)
}

func (c Command) validate(path string) []error {
	if c.Name == "" {
		return []error{fmt.Errorf("%scommand name is required", path)}
	}
	path += c.Name
	var errs []error
	for _, p := range c.Params {
		if _, ok := paramKinds[p.Kind]; !ok {
			errs = append(errs, fmt.Errorf("%s: param %q has unknown kind %q", path, p.Name, p.Kind))
		}
	}
	for _, sub := range c.Subcommands {
		errs = append(errs, sub.validate(path+" ")...)
	}
	return errs
}

// Install registers the catalog on b: loose commands first, then one cog per
// entry.
func (f *File) Install(b *core.Bot) error {
	for _, c := range f.Commands {
		if _, err := b.Register(c.Command()); err != nil {
			return err
		}
	}
	for _, cog := range f.Cogs {
		if err := b.AddCog(cog.core()); err != nil {
			return err
		}
	}
	return nil
}

// Command converts the entry into a command without a handler; running it
// shows its help.
func (c Command) Command() cmd.Command {
	d := cmd.Definition{
		Name:        c.Name,
		Description: c.Description,
		Brief:       c.Brief,
		Help:        c.Help,
		Usage:       c.Usage,
		Aliases:     c.Aliases,
		Hidden:      c.Hidden,
	}
	for _, p := range c.Params {
		d.Params = append(d.Params, cmd.Param{
			Name:    p.Name,
			Kind:    paramKinds[p.Kind],
			Default: p.Default,
			Doc:     p.Doc,
		})
	}
	if c.GuildOnly {
		d.Checks = append(d.Checks, core.GuildOnly())
	}
	if c.Admin {
		d.Checks = append(d.Checks, core.RequireAdmin())
	}
	if c.Developer {
		d.Checks = append(d.Checks, core.RequireDeveloper())
	}
	for _, sub := range c.Subcommands {
		d.Subcommands = append(d.Subcommands, sub.Command())
	}
	return cmd.Define(d)
}

type cogAdapter struct {
	name, description string
	commands          []cmd.Command
}

func (c Cog) core() core.Cog {
	a := &cogAdapter{name: c.Name, description: c.Description}
	for _, command := range c.Commands {
		a.commands = append(a.commands, command.Command())
	}
	return a
}

func (a *cogAdapter) Name() string            { return a.name }
func (a *cogAdapter) Description() string     { return a.description }
func (a *cogAdapter) Commands() []cmd.Command { return a.commands }
