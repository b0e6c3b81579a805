// SPDX-License-Identifier: MPL-2.0

// Package registry holds the explicit set of top-level command names known
// to the CLI. The classifier consults it to give the alias-management
// command priority over alias expansion; it is constructed at startup and
// passed around as a value, never a hidden singleton.
package registry

// Registry is the set of valid top-level command names plus the designated
// alias-management command name.
type Registry struct {
	management string
	commands   map[string]struct{}
}

// New builds a registry. The management name is implicitly a command.
func New(management string, commands ...string) *Registry {
	r := &Registry{
		management: management,
		commands:   make(map[string]struct{}, len(commands)+1),
	}
	r.commands[management] = struct{}{}
	for _, name := range commands {
		r.commands[name] = struct{}{}
	}
	return r
}

// IsManagement reports whether tok names the alias-management command.
func (r *Registry) IsManagement(tok string) bool {
	return tok == r.management
}

// IsCommand reports whether tok names any registered top-level command.
func (r *Registry) IsCommand(tok string) bool {
	_, ok := r.commands[tok]
	return ok
}
