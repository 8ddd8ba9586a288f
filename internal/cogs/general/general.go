// Package general holds the everyday commands: latency, dice, bot info and a
// per-guild tag store.
package general

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"
)

// Cog is the general purpose command set.
type Cog struct {
	latency func() time.Duration
	rng     *rand.Rand
	rngMu   sync.Mutex
	started time.Time

	tags *tagStore
}

// Option configures the cog.
type Option func(*Cog)

// WithLatency sets the source ping reports, usually the gateway heartbeat.
func WithLatency(f func() time.Duration) Option {
	return func(c *Cog) { c.latency = f }
}

// WithRand sets the random source used for dice.
func WithRand(r *rand.Rand) Option {
	return func(c *Cog) { c.rng = r }
}

// New returns the cog.
func New(opts ...Option) *Cog {
	c := &Cog{
		latency: func() time.Duration { return 0 },
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		started: time.Now(),
		tags:    newTagStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cog) Name() string        { return "General" }
func (c *Cog) Description() string { return "Everyday commands." }

func (c *Cog) Commands() []cmd.Command {
	return []cmd.Command{
		c.pingCommand(),
		c.rollCommand(),
		c.aboutCommand(),
		c.tagCommand(),
		c.cogsCommand(),
	}
}

func (c *Cog) intn(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Intn(n)
}

var errNoContext = errors.New("invocation without context")

func invocationContext(inv *cmd.Invocation) (*core.Context, error) {
	hc, ok := core.FromInvocation(inv)
	if !ok {
		return nil, errNoContext
	}
	return hc, nil
}
