package statewalk

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Event is one machine input: a type name plus an arbitrary payload.
type Event struct {
	Type    string
	Payload map[string]any
}

// Description renders the canonical textual form of the event: the type
// alone for payload-less events, otherwise the type followed by the
// canonical JSON serialization of the payload. Map marshaling sorts keys,
// so equal payloads always serialize identically.
func (e Event) Description() string {
	if len(e.Payload) == 0 {
		return e.Type
	}
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		// non-serializable payload values, fall back to a deterministic
		// fmt rendering keyed in sorted order
		return e.Type + " " + fallbackPayload(e.Payload)
	}
	return e.Type + " " + string(raw)
}

func fallbackPayload(payload map[string]any) string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%q:%v", k, payload[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// describeStrings reduces a set of dotted hierarchical strings to its
// leaves and joins them. "a" is subsumed by "a.b" but not by "ab".
func describeStrings(values []string) string {
	leaves := make([]string, 0, len(values))
	for i, candidate := range values {
		leaf := true
		for j, other := range values {
			if i == j {
				continue
			}
			if strings.HasPrefix(other, candidate+".") {
				leaf = false
				break
			}
		}
		if leaf {
			leaves = append(leaves, candidate)
		}
	}
	return strings.Join(leaves, ", ")
}
