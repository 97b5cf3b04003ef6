package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a command. Every lookup calls it again, so flag values and
// test hooks set on one command never reach the next dispatch.
type Factory func() Command

// Registry maps command names and aliases to factories.
type Registry struct {
	mu      sync.RWMutex
	primary map[string]Factory
	aliases map[string]string // alias -> primary name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		primary: make(map[string]Factory),
		aliases: make(map[string]string),
	}
}

// Register adds the command built by f under its name and aliases.
// A name or alias may only be claimed once.
func (r *Registry) Register(f Factory) error {
	c := f()
	name := c.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return fmt.Errorf("command already registered: %s", name)
	}
	for _, alias := range c.Aliases() {
		if alias == name || r.taken(alias) {
			return fmt.Errorf("command alias already registered: %s", alias)
		}
	}

	r.primary[name] = f
	for _, alias := range c.Aliases() {
		r.aliases[alias] = name
	}
	return nil
}

func (r *Registry) taken(name string) bool {
	_, isName := r.primary[name]
	_, isAlias := r.aliases[name]
	return isName || isAlias
}

// Find builds a new command for name, which may be an alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if primary, ok := r.aliases[name]; ok {
		name = primary
	}
	f, ok := r.primary[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// All builds one command per registered name, sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.primary))
	for name := range r.primary {
		names = append(names, name)
	}
	sort.Strings(names)

	cmds := make([]Command, len(names))
	for i, name := range names {
		cmds[i] = r.primary[name]()
	}
	return cmds
}

// DefaultRegistry holds every command of the notes binary.
var DefaultRegistry = NewRegistry()

// Register adds a command factory to DefaultRegistry. It panics on a name
// clash, which can only happen at init time.
func Register(f Factory) {
	if err := DefaultRegistry.Register(f); err != nil {
		panic(err)
	}
}
