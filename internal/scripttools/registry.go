// Package scripttools applies named LLM tool calls to a script document.
//
// The tool surface is a trust boundary: arguments arrive as arbitrary
// JSON from an external generator, so every tool validates its own
// arguments and fails closed. An unknown tool name or an invalid
// argument shape returns the input *Script pointer unchanged; callers
// detect the no-op by reference equality. A successful call returns a
// new Script and never mutates the input (untouched shots are shared).
package scripttools

import (
	"fmt"
	"sync"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// ApplyFunc validates and applies one tool's arguments to a script.
// It returns its input unchanged when the arguments do not validate.
type ApplyFunc func(script *domain.Script, args map[string]any) *domain.Script

// Registry stores tool implementations keyed by tool name.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]ApplyFunc
}

// DefaultRegistry holds the builtin script tools.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]ApplyFunc)}
}

// Register adds a tool implementation under a name.
func (r *Registry) Register(name string, fn ApplyFunc) error {
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if fn == nil {
		return fmt.Errorf("apply func is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool already registered for %s", name)
	}
	r.tools[name] = fn
	return nil
}

// Apply dispatches one tool call. Unknown names are no-ops returning the
// input pointer, matching the failed-validation contract.
func (r *Registry) Apply(script *domain.Script, name string, args map[string]any) *domain.Script {
	if script == nil {
		return nil
	}
	r.mu.RLock()
	fn := r.tools[name]
	r.mu.RUnlock()
	if fn == nil {
		return script
	}
	return fn(script, args)
}

// Names lists the registered tool names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Register adds a tool to the default registry.
func Register(name string, fn ApplyFunc) error {
	return DefaultRegistry.Register(name, fn)
}

// MustRegister adds a tool to the default registry or panics.
func MustRegister(name string, fn ApplyFunc) {
	if err := Register(name, fn); err != nil {
		panic(err)
	}
}

// Apply dispatches against the default registry.
func Apply(script *domain.Script, name string, args map[string]any) *domain.Script {
	return DefaultRegistry.Apply(script, name, args)
}
