package cmd

// Middleware wraps a command (e.g. logging, guild-only guard). Middlewares
// should return Wrap(c, ...) so help metadata stays reachable through Root.
type Middleware func(Command) Command

// Apply applies middlewares in order; the last in the list is the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		if mw != nil {
			c = mw(c)
		}
	}
	return c
}

// Chain folds several middlewares into one.
func Chain(mws ...Middleware) Middleware {
	return func(c Command) Command { return Apply(c, mws...) }
}
