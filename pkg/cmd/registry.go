package cmd

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicate is returned when a name or alias is already taken.
var ErrDuplicate = errors.New("command name already registered")

// Registry stores the command tree. It does not perform dispatch; adapters
// resolve commands and invoke them with their own context.
type Registry struct {
	mu    sync.RWMutex
	roots []*Node
	index map[string]*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Node)}
}

// Register adds a top-level command and its subcommands under category.
// Names and aliases must be unique among siblings.
func (r *Registry) Register(c Command, category string) (*Node, error) {
	n, err := newNode(c, category, nil)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range n.keys() {
		if _, taken := r.index[key]; taken {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, key)
		}
	}
	for _, key := range n.keys() {
		r.index[key] = n
	}
	r.roots = append(r.roots, n)
	return n, nil
}

// Unregister removes the top-level command called name together with its
// aliases and subcommands.
func (r *Registry) Unregister(name string) (*Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.index[name]
	if !ok || n.Name() != name {
		return nil, false
	}
	for _, key := range n.keys() {
		delete(r.index, key)
	}
	for i, root := range r.roots {
		if root == n {
			r.roots = append(r.roots[:i], r.roots[i+1:]...)
			break
		}
	}
	return n, true
}

// Get returns the top-level command called name (or aliased so), or nil.
func (r *Registry) Get(name string) *Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index[name]
}

// Resolve walks path through the tree as deep as it matches. It returns the
// deepest node found and how many path elements it consumed; (nil, 0) when
// the first element is unknown.
func (r *Registry) Resolve(path []string) (*Node, int) {
	if len(path) == 0 {
		return nil, 0
	}
	n := r.Get(path[0])
	if n == nil {
		return nil, 0
	}
	used := 1
	for used < len(path) {
		next := n.Find(path[used])
		if next == nil {
			break
		}
		n = next
		used++
	}
	return n, used
}

// Commands returns the top-level commands in registration order.
func (r *Registry) Commands() []*Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Node(nil), r.roots...)
}

// GetAll returns the top-level commands sorted by name.
func (r *Registry) GetAll() []*Node {
	list := r.Commands()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Category returns the top-level commands registered under category, in
// registration order.
func (r *Registry) Category(category string) []*Node {
	var list []*Node
	for _, n := range r.Commands() {
		if n.Category() == category {
			list = append(list, n)
		}
	}
	return list
}
