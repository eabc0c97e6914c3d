package model

import "strconv"

// Event kind names as reported by the external parser.
// The parser names each decoded event after its concrete type; these two
// kinds have special meaning for coverage classification.
const (
	// KindUnknownData is the sentinel kind for events the parser could not
	// decode into a known event type. Such events carry only a raw payload
	// and a numeric ID.
	KindUnknownData = "UnknownDataEvent"

	// KindVSTPlugin is the plugin container event kind. It is the only kind
	// whose embedded sub-events are inspected for coverage.
	KindVSTPlugin = "VSTPluginEvent"
)

// Event is one top-level structural event of an FLP file as decoded by the
// external parser. flpscan performs no decoding of its own; every field here
// is produced by the parser and consumed read-only.
//
// Design decision: The optional symbolic name is an explicit empty-string
// state rather than a pointer or a lookup at aggregation time. Absence of a
// name is a normal, first-class condition (the parser knows the event's
// structure but has no enum entry for its ID), not an error path.
type Event struct {
	// ID is the numeric event identifier from the file.
	ID int `json:"id"`

	// Name is the symbolic name of the event ID, or empty if the parser
	// did not recognize the ID.
	Name string `json:"name"`

	// Kind is the concrete decoded event type name, or KindUnknownData
	// if the parser left the event opaque.
	Kind string `json:"kind"`

	// Size is the payload length in bytes.
	Size int `json:"size"`

	// SubEvents holds the embedded sub-events of a plugin container event.
	// It is empty for all other kinds.
	SubEvents []SubEvent `json:"subEvents,omitempty"`
}

// Recognized reports whether the parser decoded this event into a known
// event type.
func (e *Event) Recognized() bool {
	return e.Kind != KindUnknownData
}

// DisplayName returns the symbolic name of the event ID, falling back to
// the decimal ID when the parser had no name for it.
func (e *Event) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return strconv.Itoa(e.ID)
}

// Key returns the grouping key for the per-ID frequency table.
func (e *Event) Key() EventKey {
	return EventKey{ID: e.ID, Name: e.DisplayName(), Kind: e.Kind}
}

// SubEvent is a sub-structure embedded in a VST plugin event, typically a
// plugin parameter block.
type SubEvent struct {
	// ID is the numeric sub-event identifier.
	ID int `json:"id"`

	// Name is the symbolic name of the sub-event ID, or empty if the ID
	// only resolved to a raw number.
	Name string `json:"name"`

	// Size is the sub-event payload length in bytes.
	Size int `json:"size"`
}

// Recognized reports whether the sub-event ID resolved to a symbolic name.
func (s *SubEvent) Recognized() bool {
	return s.Name != ""
}

// EventKey identifies one row of the per-ID frequency table.
//
// Design decision: Aggregation always keys on the full (ID, Name, Kind)
// triple rather than the display label alone. Two different IDs that happen
// to render the same label must never be merged into one row.
type EventKey struct {
	// ID is the numeric event identifier.
	ID int

	// Name is the display name (symbolic name or decimal ID).
	Name string

	// Kind is the decoded event type name.
	Kind string
}
