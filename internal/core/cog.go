package core

import (
	"errors"
	"fmt"

	"github.com/keshon/better-help/pkg/cmd"

	"go.uber.org/zap"
)

var (
	// ErrCogExists is returned when a cog with the same name is loaded.
	ErrCogExists = errors.New("cog already loaded")
	// ErrCogNotFound is returned when unloading an unknown cog.
	ErrCogNotFound = errors.New("cog not found")
)

// Cog is a named group of commands loaded and unloaded as one unit. Its name
// is the category its commands are listed under in help.
type Cog interface {
	Name() string
	Description() string
	Commands() []cmd.Command
}

// CogLoader is implemented by cogs that need to act when they are added.
// An error aborts the load and unregisters the cog's commands.
type CogLoader interface {
	CogLoad(b *Bot) error
}

// CogUnloader is implemented by cogs that need to act when they are removed.
type CogUnloader interface {
	CogUnload(b *Bot) error
}

type loadedCog struct {
	cog   Cog
	names []string
}

// AddCog registers the cog's commands under its name and runs its load hook.
func (b *Bot) AddCog(cog Cog, mws ...cmd.Middleware) error {
	name := cog.Name()

	b.mu.RLock()
	_, exists := b.cogs[name]
	b.mu.RUnlock()
	if exists {
		return fmt.Errorf("%w: %s", ErrCogExists, name)
	}

	lc := &loadedCog{cog: cog}
	for _, c := range cog.Commands() {
		n, err := b.register(c, name, mws...)
		if err != nil {
			b.unregister(lc)
			return fmt.Errorf("add cog %s: %w", name, err)
		}
		lc.names = append(lc.names, n.Name())
	}

	if l, ok := cog.(CogLoader); ok {
		if err := l.CogLoad(b); err != nil {
			b.unregister(lc)
			return fmt.Errorf("load cog %s: %w", name, err)
		}
	}

	b.mu.Lock()
	b.cogs[name] = lc
	b.cogOrder = append(b.cogOrder, name)
	b.mu.Unlock()

	b.log.Info("Cog loaded", zap.String("cog", name), zap.Int("commands", len(lc.names)))
	return nil
}

// RemoveCog runs the cog's unload hook and unregisters its commands. The
// commands are removed even when the hook fails; its error is returned.
func (b *Bot) RemoveCog(name string) error {
	b.mu.Lock()
	lc, ok := b.cogs[name]
	if ok {
		delete(b.cogs, name)
		for i, n := range b.cogOrder {
			if n == name {
				b.cogOrder = append(b.cogOrder[:i], b.cogOrder[i+1:]...)
				break
			}
		}
	}
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrCogNotFound, name)
	}

	var hookErr error
	if u, ok := lc.cog.(CogUnloader); ok {
		if err := u.CogUnload(b); err != nil {
			hookErr = fmt.Errorf("unload cog %s: %w", name, err)
		}
	}
	b.unregister(lc)

	b.log.Info("Cog unloaded", zap.String("cog", name))
	return hookErr
}

// Cog returns the loaded cog called name.
func (b *Bot) Cog(name string) (Cog, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	lc, ok := b.cogs[name]
	if !ok {
		return nil, false
	}
	return lc.cog, true
}

// Cogs returns the loaded cogs in load order.
func (b *Bot) Cogs() []Cog {
	b.mu.RLock()
	defer b.mu.RUnlock()
	list := make([]Cog, 0, len(b.cogOrder))
	for _, name := range b.cogOrder {
		list = append(list, b.cogs[name].cog)
	}
	return list
}

// CogCommands returns the top-level commands registered by the cog.
func (b *Bot) CogCommands(cog Cog) []*cmd.Node {
	return b.registry.Category(cog.Name())
}

func (b *Bot) unregister(lc *loadedCog) {
	for _, name := range lc.names {
		b.registry.Unregister(name)
	}
}
