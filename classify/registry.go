package classify

import (
	"strings"
	"sync"
)

// Built-in registry names.
const (
	NameDefault = "default"
	NameFatal   = "fatal"
)

// Registry is a thread-safe name → Classifier map, for configurations
// that select a classifier per boundary by name.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Classifier
}

// NewRegistry returns a registry with the built-in classifiers
// pre-registered.
func NewRegistry() *Registry {
	r := &Registry{m: make(map[string]Classifier)}
	r.Register(NameDefault, Default())
	r.Register(NameFatal, Fatal{})
	return r
}

// Register associates name with c. Blank names and nil classifiers are
// ignored.
func (r *Registry) Register(name string, c Classifier) {
	name = strings.TrimSpace(name)
	if name == "" || c == nil {
		return
	}
	r.mu.Lock()
	r.m[name] = c
	r.mu.Unlock()
}

// Get looks up a classifier by name.
func (r *Registry) Get(name string) (Classifier, bool) {
	r.mu.RLock()
	c, ok := r.m[strings.TrimSpace(name)]
	r.mu.RUnlock()
	return c, ok && c != nil
}
