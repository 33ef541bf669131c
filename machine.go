package statewalk

import "context"

// Machine is the collaborator contract consumed during generation and
// execution. Transition must be pure, deterministic and synchronous: the
// same state and event always produce the same resulting state.
type Machine interface {
	InitialState() State
	Transition(state State, event Event) (State, error)
}

// State is an immutable snapshot owned by the machine. The initial state is
// treated as produced by a synthetic init event whose type the machine
// chooses.
type State interface {
	// Event returns the event that produced this state.
	Event() Event
	// Done reports whether the machine considers this state final.
	Done() bool
	// NextEvents lists the event types enabled from this state, in the
	// machine's own order.
	NextEvents() []string
	// Actions lists pending side effects attached to this state, in the
	// machine's own order.
	Actions() []Action
	// Strings returns the dotted hierarchical path strings describing the
	// state value.
	Strings() []string
}

// Action is a side effect attached to a state, executed during path replay.
type Action interface {
	Exec(ctx context.Context, event Event) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ctx context.Context, event Event) error

// Exec calls the underlying function.
func (f ActionFunc) Exec(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// StateDescription renders the human-readable description of a state: the
// comma-joined leaf strings of state.Strings(). A string is a leaf when no
// other string in the set is a strict dotted extension of it.
func StateDescription(state State) string {
	return describeStrings(state.Strings())
}
