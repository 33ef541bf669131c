package statewalk

import (
	"fmt"
	"iter"
)

// EventStream is a lazy, finite, restartable sequence of candidate events.
// Ranging over a stream twice must reproduce the same events in the same
// order: the same state is revisited from many parent paths during
// exploration and each visit re-enumerates its candidates.
type EventStream = iter.Seq[Event]

// EventSource maps event types to streams of concrete candidate events.
// Fixed lists, list factories and stream factories are all normalized into
// the one EventStream representation at registration time; lookups never
// see the distinction.
//
// The zero source is usable: every type resolves to a single payload-less
// event of that type.
type EventSource struct {
	streams map[string]EventStream
}

// NewEventSource creates an empty source.
func NewEventSource() *EventSource {
	return &EventSource{streams: make(map[string]EventStream)}
}

// RegisterList registers a fixed candidate list for an event type.
func (s *EventSource) RegisterList(eventType string, events ...Event) error {
	list := make([]Event, len(events))
	copy(list, events)
	return s.register(eventType, func(yield func(Event) bool) {
		for _, ev := range list {
			if !yield(ev) {
				return
			}
		}
	})
}

// RegisterFactory registers a zero-argument factory producing the candidate
// list. The factory runs on every enumeration, so it must be deterministic.
func (s *EventSource) RegisterFactory(eventType string, factory func() []Event) error {
	if factory == nil {
		return cloneRuntimeError(ErrBadEventSource, "nil event factory", nil, map[string]any{"event_type": eventType})
	}
	return s.register(eventType, func(yield func(Event) bool) {
		for _, ev := range factory() {
			if !yield(ev) {
				return
			}
		}
	})
}

// RegisterStream registers a lazy stream for an event type. The stream must
// be finite and restartable.
func (s *EventSource) RegisterStream(eventType string, stream EventStream) error {
	if stream == nil {
		return cloneRuntimeError(ErrBadEventSource, "nil event stream", nil, map[string]any{"event_type": eventType})
	}
	return s.register(eventType, stream)
}

func (s *EventSource) register(eventType string, stream EventStream) error {
	if eventType == "" {
		return cloneRuntimeError(ErrBadEventSource, "event type is required", nil, nil)
	}
	if s.streams == nil {
		s.streams = make(map[string]EventStream)
	}
	if _, exists := s.streams[eventType]; exists {
		return cloneRuntimeError(
			ErrBadEventSource,
			fmt.Sprintf("event source for %q already registered", eventType),
			nil,
			map[string]any{"event_type": eventType},
		)
	}
	s.streams[eventType] = stream
	return nil
}

// EventSourceFromMap builds a source from a loosely-typed configuration
// map. Accepted entry shapes: []Event, func() []Event and stream producers
// (EventStream or func(yield func(Event) bool)). Any other shape is a
// configuration error and fails fast.
func EventSourceFromMap(entries map[string]any) (*EventSource, error) {
	source := NewEventSource()
	for eventType, entry := range entries {
		var err error
		switch v := entry.(type) {
		case []Event:
			err = source.RegisterList(eventType, v...)
		case func() []Event:
			err = source.RegisterFactory(eventType, v)
		case EventStream:
			err = source.RegisterStream(eventType, v)
		case func(yield func(Event) bool):
			err = source.RegisterStream(eventType, v)
		default:
			err = cloneRuntimeError(
				ErrBadEventSource,
				fmt.Sprintf("event source for %q has unsupported shape %T", eventType, entry),
				nil,
				map[string]any{"event_type": eventType},
			)
		}
		if err != nil {
			return nil, err
		}
	}
	return source, nil
}

// Events returns the candidate stream for an event type. Unregistered types
// yield exactly one payload-less event of that type.
func (s *EventSource) Events(eventType string) EventStream {
	if s != nil {
		if stream, ok := s.streams[eventType]; ok {
			return stream
		}
	}
	return func(yield func(Event) bool) {
		yield(Event{Type: eventType})
	}
}

// NextEvents concatenates the candidate streams of every event type enabled
// on the state, in the state's reported order.
func (s *EventSource) NextEvents(state State) EventStream {
	eventTypes := state.NextEvents()
	return func(yield func(Event) bool) {
		for _, eventType := range eventTypes {
			for ev := range s.Events(eventType) {
				if !yield(ev) {
					return
				}
			}
		}
	}
}
