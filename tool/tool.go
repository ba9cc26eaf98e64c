// Package tool implements the named lookup operations the agent can
// run against the catalog and business information. A tool receives the
// raw user message plus the extracted info bag and returns a text block
// that is appended to the model request; it performs no generation of
// its own.
package tool

import (
	"github.com/dulceai/dulceai/planning"
)

// Tool is a named lookup operation selected at most once per message.
type Tool interface {
	// Name returns the unique tool identifier as used by the
	// selection policy (e.g. "BuscarProducto").
	Name() string

	// Run resolves the tool against its data source and returns the
	// text block to inject into the model request. A miss is not an
	// error; tools return user-facing not-found text instead.
	Run(message string, info planning.Info) (string, error)
}

// Registry resolves selected tool names to implementations.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry builds a registry from the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

// Get returns the named tool, or false when it is not registered.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in selection priority order,
// restricted to tools actually present in the registry.
func (r *Registry) Names() []string {
	var names []string
	for _, name := range planning.AvailableTools() {
		if _, ok := r.tools[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
