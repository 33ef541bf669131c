package fsm

import (
	"context"
	"fmt"
	"sort"

	"github.com/goliatone/go-statewalk"
)

// ActionRegistry stores named side effects referenced by state definitions.
// Names a definition uses without registering resolve to no-ops.
type ActionRegistry struct {
	actions map[string]statewalk.ActionFunc
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make(map[string]statewalk.ActionFunc)}
}

// Register adds an action by name.
func (r *ActionRegistry) Register(name string, action func(ctx context.Context, event statewalk.Event) error) error {
	if name == "" || action == nil {
		return nil
	}
	if r.actions == nil {
		r.actions = make(map[string]statewalk.ActionFunc)
	}
	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("action %s already registered", name)
	}
	r.actions[name] = action
	return nil
}

// Lookup retrieves an action by name.
func (r *ActionRegistry) Lookup(name string) (statewalk.Action, bool) {
	if r == nil {
		return nil, false
	}
	action, ok := r.actions[name]
	if !ok {
		return nil, false
	}
	return action, true
}

// Names returns sorted registered action names.
func (r *ActionRegistry) Names() []string {
	if r == nil || len(r.actions) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
