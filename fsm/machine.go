package fsm

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-statewalk"
)

// DefaultInitEventType is the synthetic event type recorded on the initial
// state.
const DefaultInitEventType = "machine.init"

// Machine is a compiled, immutable statechart. Transition is pure and
// deterministic; every returned state is a fresh snapshot.
type Machine struct {
	id          string
	initial     string
	states      map[string]StateDef
	transitions map[string]string
	enabled     map[string][]string
	actions     *ActionRegistry
	initEvent   string
}

// Option customizes machine construction.
type Option func(*Machine)

// WithActions wires a registry resolving state action names to callbacks.
func WithActions(registry *ActionRegistry) Option {
	return func(m *Machine) {
		m.actions = registry
	}
}

// WithInitEventType overrides the synthetic init event type.
func WithInitEventType(eventType string) Option {
	return func(m *Machine) {
		if eventType != "" {
			m.initEvent = eventType
		}
	}
}

// New validates and compiles a definition into a Machine.
func New(def Definition, opts ...Option) (*Machine, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		id:          strings.TrimSpace(def.ID),
		states:      make(map[string]StateDef, len(def.States)),
		transitions: make(map[string]string, len(def.Transitions)),
		enabled:     make(map[string][]string, len(def.States)),
		initEvent:   DefaultInitEventType,
	}
	for _, st := range def.States {
		name := strings.TrimSpace(st.Name)
		m.states[name] = st
		if st.Initial {
			m.initial = name
		}
	}
	if m.initial == "" {
		m.initial = strings.TrimSpace(def.States[0].Name)
	}
	for _, tr := range def.Transitions {
		from := strings.TrimSpace(tr.From)
		event := strings.TrimSpace(tr.Event)
		m.transitions[transitionKey(from, event)] = strings.TrimSpace(tr.To)
		m.enabled[from] = append(m.enabled[from], event)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// ID returns the machine identifier.
func (m *Machine) ID() string { return m.id }

// InitialState returns a snapshot of the initial state, recorded as
// produced by the synthetic init event.
func (m *Machine) InitialState() statewalk.State {
	return m.snapshot(m.initial, statewalk.Event{Type: m.initEvent})
}

// Transition applies an event to a state and returns the resulting
// snapshot. An event with no transition from the state is an error: callers
// are expected to send only enabled events, so a miss means the definition
// and the walk disagree.
func (m *Machine) Transition(state statewalk.State, event statewalk.Event) (statewalk.State, error) {
	value := stateValue(state)
	target, ok := m.transitions[transitionKey(value, event.Type)]
	if !ok {
		return nil, cloneError(
			ErrInvalidTransition,
			fmt.Sprintf("no transition for state=%s event=%s", value, event.Type),
			nil,
			map[string]any{"machine_id": m.id, "state": value, "event": event.Type},
		)
	}
	return m.snapshot(target, event), nil
}

func (m *Machine) snapshot(value string, event statewalk.Event) *stateSnapshot {
	def := m.states[value]
	return &stateSnapshot{
		value:   value,
		event:   event,
		done:    def.Final,
		next:    m.enabled[value],
		actions: m.resolveActions(def.Actions),
		strings: hierarchyStrings(value),
	}
}

func (m *Machine) resolveActions(names []string) []statewalk.Action {
	if len(names) == 0 {
		return nil
	}
	actions := make([]statewalk.Action, 0, len(names))
	for _, name := range names {
		if action, ok := m.actions.Lookup(name); ok {
			actions = append(actions, action)
		}
	}
	return actions
}

func stateValue(state statewalk.State) string {
	if snap, ok := state.(*stateSnapshot); ok {
		return snap.value
	}
	// foreign State implementation: the deepest hierarchy string is the value
	values := state.Strings()
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func hierarchyStrings(value string) []string {
	parts := strings.Split(value, ".")
	out := make([]string, len(parts))
	for i := range parts {
		out[i] = strings.Join(parts[:i+1], ".")
	}
	return out
}

type stateSnapshot struct {
	value   string
	event   statewalk.Event
	done    bool
	next    []string
	actions []statewalk.Action
	strings []string
}

func (s *stateSnapshot) Event() statewalk.Event { return s.event }
func (s *stateSnapshot) Done() bool             { return s.done }

func (s *stateSnapshot) NextEvents() []string {
	out := make([]string, len(s.next))
	copy(out, s.next)
	return out
}

func (s *stateSnapshot) Actions() []statewalk.Action {
	out := make([]statewalk.Action, len(s.actions))
	copy(out, s.actions)
	return out
}

func (s *stateSnapshot) Strings() []string {
	out := make([]string, len(s.strings))
	copy(out, s.strings)
	return out
}
