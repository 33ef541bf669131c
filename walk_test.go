package statewalk

import (
	"fmt"
	"strings"
)

// testState and testMachine implement the collaborator contract for tests.
// Dotted values report hierarchical strings the same way a statechart
// would.

type testState struct {
	value   string
	event   Event
	done    bool
	next    []string
	actions []Action
}

func (s *testState) Event() Event         { return s.event }
func (s *testState) Done() bool           { return s.done }
func (s *testState) NextEvents() []string { return s.next }
func (s *testState) Actions() []Action    { return s.actions }

func (s *testState) Strings() []string {
	parts := strings.Split(s.value, ".")
	out := make([]string, len(parts))
	for i := range parts {
		out[i] = strings.Join(parts[:i+1], ".")
	}
	return out
}

type testTransition struct {
	from  string
	event string
	to    string
}

type testMachine struct {
	initial     string
	final       map[string]bool
	transitions []testTransition
	actions     map[string][]Action
}

func (m *testMachine) state(value string, event Event) *testState {
	var next []string
	for _, tr := range m.transitions {
		if tr.from == value {
			next = append(next, tr.event)
		}
	}
	return &testState{
		value:   value,
		event:   event,
		done:    m.final[value],
		next:    next,
		actions: m.actions[value],
	}
}

func (m *testMachine) InitialState() State {
	return m.state(m.initial, Event{Type: "machine.init"})
}

func (m *testMachine) Transition(state State, event Event) (State, error) {
	value := state.(*testState).value
	for _, tr := range m.transitions {
		if tr.from == value && tr.event == event.Type {
			return m.state(tr.to, event), nil
		}
	}
	return nil, fmt.Errorf("no transition for state=%s event=%s", value, event.Type)
}

// start --NEXT--> middle --NEXT--> end(final)
func newLinearMachine() *testMachine {
	return &testMachine{
		initial: "start",
		final:   map[string]bool{"end": true},
		transitions: []testTransition{
			{"start", "NEXT", "middle"},
			{"middle", "NEXT", "end"},
		},
	}
}

// on --TOGGLE--> on, never final
func newSelfLoopMachine() *testMachine {
	return &testMachine{
		initial: "on",
		final:   map[string]bool{},
		transitions: []testTransition{
			{"on", "TOGGLE", "on"},
		},
	}
}

// a --X--> b(final); a --Y--> c --Z--> d(final)
func newBranchMachine() *testMachine {
	return &testMachine{
		initial: "a",
		final:   map[string]bool{"b": true, "d": true},
		transitions: []testTransition{
			{"a", "X", "b"},
			{"a", "Y", "c"},
			{"c", "Z", "d"},
		},
	}
}

func acceptAllPaths(*Path) bool { return true }

func descriptions(paths []*Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.Description()
	}
	return out
}
