package command

import (
	"fmt"
	"sort"
)

// Func runs a command with its arguments and returns the text to show.
type Func func(args []string) (string, error)

type entry struct {
	usage string
	fn    Func
}

// Registry maps command names to their functions.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a named command. Overwrites if name already exists.
// Panics if name is empty or fn is nil (programmer error).
func (r *Registry) Register(name, usage string, fn Func) {
	if name == "" {
		panic("command: Register called with empty name")
	}
	if fn == nil {
		panic("command: Register called with nil func")
	}
	r.entries[name] = entry{usage: usage, fn: fn}
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	e, ok := r.entries[name]
	return e.fn, ok
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns "name args" lines for every command, sorted by name.
func (r *Registry) Usage() []string {
	names := r.Names()
	lines := make([]string, len(names))
	for i, name := range names {
		if u := r.entries[name].usage; u != "" {
			lines[i] = fmt.Sprintf("%s %s", name, u)
		} else {
			lines[i] = name
		}
	}
	return lines
}
