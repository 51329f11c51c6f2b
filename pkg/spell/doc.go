// Package spell defines the read-only view-model driving spell sheet
// rendering plus the host-supplied lookup tables that resolve enum keys to
// display labels. The view-model is a projection of persisted item data: the
// host builds a fresh instance per render and renderers never mutate it.
// Edits flow back to the host as discrete field-path events (see pkg/edits),
// never as in-place writes to these structs.
package spell
