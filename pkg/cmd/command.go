package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoHandler is returned by commands that only group subcommands and have
// nothing to run themselves. Adapters usually answer with group help.
var ErrNoHandler = errors.New("command has no handler")

// Documented commands carry a long help text.
type Documented interface {
	Help() string
}

// Briefed commands carry a one-line summary used in command lists.
type Briefed interface {
	Brief() string
}

// Aliased commands can be invoked under other names.
type Aliased interface {
	Aliases() []string
}

// Parameterized commands declare their arguments.
type Parameterized interface {
	Params() []Param
}

// Usager commands override the signature computed from Params.
type Usager interface {
	Usage() string
}

// Grouped commands own subcommands.
type Grouped interface {
	Commands() []Command
}

// Hideable commands may be left out of help listings.
type Hideable interface {
	Hidden() bool
}

// Checker commands decide whether the caller may run them. A non-nil error
// means the command is not available for this invocation.
type Checker interface {
	Check(ctx context.Context, inv *Invocation) error
}

// CheckFunc is a single reusable check.
type CheckFunc func(ctx context.Context, inv *Invocation) error

// ParamKind tells how an argument is consumed.
type ParamKind int

const (
	// Required arguments must be given.
	Required ParamKind = iota
	// Optional arguments may be omitted; Param.Default applies.
	Optional
	// Variadic arguments take zero or more values.
	Variadic
	// Remainder arguments take the rest of the message as one value.
	Remainder
)

// String describes the kind for help output.
func (k ParamKind) String() string {
	switch k {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Variadic:
		return "variadic"
	case Remainder:
		return "rest of message"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Param documents one argument.
type Param struct {
	Name    string
	Kind    ParamKind
	Default string
	Doc     string
}

// String renders the parameter the way it appears in a usage signature.
func (p Param) String() string {
	switch p.Kind {
	case Optional:
		if p.Default != "" {
			return "[" + p.Name + "=" + p.Default + "]"
		}
		return "[" + p.Name + "]"
	case Variadic:
		return "[" + p.Name + "...]"
	case Remainder:
		return "<" + p.Name + "...>"
	default:
		return "<" + p.Name + ">"
	}
}

// Signature joins the rendered parameters with spaces.
func Signature(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}
