package statewalk

import "testing"

func TestEventDescription(t *testing.T) {
	cases := []struct {
		name  string
		event Event
		want  string
	}{
		{"bare", Event{Type: "NEXT"}, "NEXT"},
		{"empty payload", Event{Type: "NEXT", Payload: map[string]any{}}, "NEXT"},
		{"sorted keys", Event{Type: "INPUT", Payload: map[string]any{"b": "x", "a": 1}}, `INPUT {"a":1,"b":"x"}`},
		{"nested", Event{Type: "SET", Payload: map[string]any{"user": map[string]any{"id": 7}}}, `SET {"user":{"id":7}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.event.Description(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStateDescriptionLeafStrings(t *testing.T) {
	cases := []struct {
		name  string
		state *testState
		want  string
	}{
		{"flat", &testState{value: "start"}, "start"},
		{"nested", &testState{value: "form.valid"}, "form.valid"},
		{"deep", &testState{value: "a.b.c"}, "a.b.c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StateDescription(tc.state); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDescribeStringsParallelRegions(t *testing.T) {
	// two parallel regions: only the leaves survive, "mode" itself is
	// subsumed by both children
	got := describeStrings([]string{"mode", "mode.bold", "mode.italic"})
	if got != "mode.bold, mode.italic" {
		t.Fatalf("expected parallel leaves, got %q", got)
	}

	// "ab" is not a dotted extension of "a"
	if got := describeStrings([]string{"a", "ab"}); got != "a, ab" {
		t.Fatalf("expected both strings kept, got %q", got)
	}
}
