// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). Help metadata (long help,
// aliases, parameters, subcommands, checks) is exposed through optional provider
// interfaces, and commands are arranged into a tree by Registry. How commands
// are dispatched (Discord messages, a terminal) is defined by adapters.
package cmd

import "context"

// Invocation carries the input any command runner can pass: the name the
// command was invoked with, the remaining arguments, and an opaque payload.
// Adapters set Data to their own context (e.g. *core.Context).
type Invocation struct {
	Name string
	Args []string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Everything else
// is optional and discovered through the provider interfaces in command.go.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}
