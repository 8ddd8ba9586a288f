package cmd

import "context"

// Definition describes a command declaratively. Define turns it into a
// Command that implements every provider interface.
type Definition struct {
	Name        string
	Description string
	Brief       string
	Help        string
	Usage       string
	Aliases     []string
	Params      []Param
	Hidden      bool
	Checks      []CheckFunc
	Subcommands []Command
	Run         func(ctx context.Context, inv *Invocation) error
}

// Define returns a Command backed by d.
func Define(d Definition) Command {
	return &defined{d: d}
}

type defined struct {
	d Definition
}

func (c *defined) Name() string        { return c.d.Name }
func (c *defined) Description() string { return c.d.Description }
func (c *defined) Brief() string       { return c.d.Brief }
func (c *defined) Help() string        { return c.d.Help }
func (c *defined) Usage() string       { return c.d.Usage }
func (c *defined) Aliases() []string   { return c.d.Aliases }
func (c *defined) Params() []Param     { return c.d.Params }
func (c *defined) Hidden() bool        { return c.d.Hidden }
func (c *defined) Commands() []Command { return c.d.Subcommands }

func (c *defined) Check(ctx context.Context, inv *Invocation) error {
	for _, check := range c.d.Checks {
		if err := check(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

func (c *defined) Run(ctx context.Context, inv *Invocation) error {
	if c.d.Run == nil {
		return ErrNoHandler
	}
	return c.d.Run(ctx, inv)
}
