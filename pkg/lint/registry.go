package lint

import "sync"

// globalRegistry is the single global registry for all lint rules.
// Registration order is preserved: it defines the default rule order of
// rule sets assembled from the registry.
var globalRegistry = &Registry{
	defs: make(map[string]RuleDef),
}

// Registry stores registered rule definitions for discovery, keeping the
// order in which they were registered.
type Registry struct {
	mu    sync.RWMutex
	order []string
	defs  map[string]RuleDef
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages. Re-registering an ID
// replaces the definition but keeps its original position.
func Register(def RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if _, exists := globalRegistry.defs[def.ID]; !exists {
		globalRegistry.order = append(globalRegistry.order, def.ID)
	}
	globalRegistry.defs[def.ID] = def
}

// All returns all registered definitions in registration order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	defs := make([]RuleDef, 0, len(globalRegistry.order))
	for _, id := range globalRegistry.order {
		defs = append(defs, globalRegistry.defs[id])
	}
	return defs
}

// Get returns a definition by its ID.
func Get(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.defs[id]
	return def, ok
}

// ByGroup returns all definitions in a specific group, in registration order.
func ByGroup(group string) []RuleDef {
	var defs []RuleDef
	for _, def := range All() {
		if def.Group == group {
			defs = append(defs, def)
		}
	}
	return defs
}

// ByDialect returns definitions applicable to a specific dialect, in
// registration order. Definitions with no dialect restriction are included.
func ByDialect(dialectName string) []RuleDef {
	var defs []RuleDef
	for _, def := range All() {
		if def.AppliesTo(dialectName) {
			defs = append(defs, def)
		}
	}
	return defs
}

// Count returns the number of registered definitions.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.defs)
}

// Clear removes all registered definitions. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.order = nil
	globalRegistry.defs = make(map[string]RuleDef)
}
