package statewalk

import (
	"context"
	"iter"
)

// Segment is the atomic unit of a walk: one event together with the state
// reached by applying it. Segments are immutable and only ever constructed
// from a machine transition result (or the machine's initial state for the
// synthetic init segment).
type Segment struct {
	event  Event
	target State

	// description is computed once on first read and reused; it is the
	// sole identity used for matching and containment.
	description string
}

func newSegment(event Event, target State) *Segment {
	return &Segment{event: event, target: target}
}

func newInitialSegment(state State) *Segment {
	return &Segment{event: state.Event(), target: state}
}

// Event returns the event this segment applies.
func (s *Segment) Event() Event { return s.event }

// Target returns the state this segment reaches.
func (s *Segment) Target() State { return s.target }

// EventDescription renders the canonical event description, payload
// included.
func (s *Segment) EventDescription() string {
	return s.event.Description()
}

// StateDescription renders the target state's leaf-string description.
func (s *Segment) StateDescription() string {
	return StateDescription(s.target)
}

// Description renders the full segment description: event description and
// target state description.
func (s *Segment) Description() string {
	if s.description == "" {
		s.description = s.EventDescription() + " -> " + s.StateDescription()
	}
	return s.description
}

// Matches reports whether both segments have textually identical full
// descriptions. Payload-sensitive.
func (s *Segment) Matches(other *Segment) bool {
	return other != nil && s.Description() == other.Description()
}

// IsSimilar reports whether both segments apply the same event type and
// reach the same state. Payload-insensitive.
func (s *Segment) IsSimilar(other *Segment) bool {
	return other != nil && s.HasSimilarEvent(other) && s.HasSameTarget(other)
}

// HasSameTarget reports whether both segments reach the same state value.
func (s *Segment) HasSameTarget(other *Segment) bool {
	return other != nil && s.StateDescription() == other.StateDescription()
}

// HasSimilarEvent reports whether both segments apply the same event type,
// ignoring payloads.
func (s *Segment) HasSimilarEvent(other *Segment) bool {
	return other != nil && s.event.Type == other.event.Type
}

// ReachesState reports whether the segment's target matches the given
// state value.
func (s *Segment) ReachesState(state State) bool {
	return state != nil && s.StateDescription() == StateDescription(state)
}

// IsFinal reports whether the target state is done or has no enabled next
// events.
func (s *Segment) IsFinal() bool {
	return s.target.Done() || len(s.target.NextEvents()) == 0
}

// NextSegments lazily enumerates the segments reachable from this
// segment's target: one per candidate event from the source, in source
// order, each wrapping the machine's transition result. Final targets
// produce an empty sequence. The sequence is restartable; transitions are
// recomputed on every enumeration.
func (s *Segment) NextSegments(machine Machine, source *EventSource) iter.Seq2[*Segment, error] {
	return func(yield func(*Segment, error) bool) {
		if s.IsFinal() {
			return
		}
		for ev := range source.NextEvents(s.target) {
			next, err := machine.Transition(s.target, ev)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(newSegment(ev, next), nil) {
				return
			}
		}
	}
}

// Run replays the segment's event against a caller-supplied live state,
// asserts the result matches the state recorded at generation time, then
// executes the resulting state's actions sequentially in machine order.
// Returns the live resulting state.
func (s *Segment) Run(ctx context.Context, machine Machine, from State) (State, error) {
	next, err := machine.Transition(from, s.event)
	if err != nil {
		return nil, err
	}
	if got := StateDescription(next); got != s.StateDescription() {
		return nil, cloneRuntimeError(ErrReplayMismatch, "", nil, map[string]any{
			"event":    s.EventDescription(),
			"expected": s.StateDescription(),
			"actual":   got,
		})
	}
	for _, action := range next.Actions() {
		if action == nil {
			continue
		}
		if err := action.Exec(ctx, s.event); err != nil {
			return nil, err
		}
	}
	return next, nil
}
