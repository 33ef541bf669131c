// Package fsm provides a small statechart machine implementing the
// statewalk collaborator contract. Dotted state names express hierarchy:
// state "form.valid" occupies both "form" and "form.valid".
package fsm

import (
	stderrors "errors"
	"fmt"
	"strings"

	apperrors "github.com/goliatone/go-errors"
)

const (
	ErrCodeInvalidDefinition = "FSM_INVALID_DEFINITION"
	ErrCodeInvalidTransition = "FSM_INVALID_TRANSITION"
)

var (
	// ErrInvalidDefinition signals a structurally broken machine definition.
	ErrInvalidDefinition = apperrors.New("invalid machine definition", apperrors.CategoryBadInput).
				WithTextCode(ErrCodeInvalidDefinition)
	// ErrInvalidTransition signals an event with no transition from the
	// current state.
	ErrInvalidTransition = apperrors.New("invalid transition", apperrors.CategoryBadInput).
				WithTextCode(ErrCodeInvalidTransition)
)

func cloneError(base *apperrors.Error, message string, source error, metadata map[string]any) *apperrors.Error {
	err := base.Clone()
	if text := strings.TrimSpace(message); text != "" {
		err.Message = text
	}
	if source != nil {
		err.Source = source
	}
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return err
}

// IsInvalidTransition reports whether err carries the invalid transition code.
func IsInvalidTransition(err error) bool {
	var ge *apperrors.Error
	if stderrors.As(err, &ge) {
		return ge.TextCode == ErrCodeInvalidTransition
	}
	return false
}

// Definition is the declarative machine description consumed by New.
type Definition struct {
	ID          string          `json:"id" yaml:"id"`
	States      []StateDef      `json:"states" yaml:"states"`
	Transitions []TransitionDef `json:"transitions" yaml:"transitions"`
}

// StateDef declares one state. Actions name registry entries executed when
// a transition lands on the state.
type StateDef struct {
	Name    string   `json:"name" yaml:"name"`
	Initial bool     `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final   bool     `json:"final,omitempty" yaml:"final,omitempty"`
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// TransitionDef declares one transition. Declaration order fixes the order
// in which a state reports its enabled events.
type TransitionDef struct {
	Event string `json:"event" yaml:"event"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
}

// Validate performs structural validation of the definition.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return cloneError(ErrInvalidDefinition, "machine id is required", nil, nil)
	}
	if len(d.States) == 0 {
		return cloneError(ErrInvalidDefinition, "at least one state is required", nil, map[string]any{"machine_id": d.ID})
	}

	names := make(map[string]bool, len(d.States))
	initials := 0
	for idx, st := range d.States {
		name := strings.TrimSpace(st.Name)
		if name == "" {
			return cloneError(ErrInvalidDefinition, fmt.Sprintf("state[%d] name is required", idx), nil, map[string]any{"machine_id": d.ID})
		}
		if names[name] {
			return cloneError(ErrInvalidDefinition, fmt.Sprintf("duplicate state %q", name), nil, map[string]any{"machine_id": d.ID})
		}
		names[name] = true
		if st.Initial {
			initials++
		}
	}
	if initials > 1 {
		return cloneError(ErrInvalidDefinition, "multiple states marked initial", nil, map[string]any{"machine_id": d.ID})
	}

	seen := make(map[string]bool, len(d.Transitions))
	for idx, tr := range d.Transitions {
		if strings.TrimSpace(tr.Event) == "" {
			return cloneError(ErrInvalidDefinition, fmt.Sprintf("transition[%d] event is required", idx), nil, map[string]any{"machine_id": d.ID})
		}
		if !names[strings.TrimSpace(tr.From)] {
			return cloneError(ErrInvalidDefinition, fmt.Sprintf("transition[%d] references unknown state %q", idx, tr.From), nil, map[string]any{"machine_id": d.ID})
		}
		if !names[strings.TrimSpace(tr.To)] {
			return cloneError(ErrInvalidDefinition, fmt.Sprintf("transition[%d] targets unknown state %q", idx, tr.To), nil, map[string]any{"machine_id": d.ID})
		}
		key := transitionKey(strings.TrimSpace(tr.From), strings.TrimSpace(tr.Event))
		if seen[key] {
			return cloneError(ErrInvalidDefinition, fmt.Sprintf("duplicate transition %q from %q", tr.Event, tr.From), nil, map[string]any{"machine_id": d.ID})
		}
		seen[key] = true
	}
	return nil
}

func transitionKey(state, event string) string {
	return state + "::" + event
}
