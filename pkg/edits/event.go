// Package edits defines the outbound edit contract: user changes leave the
// sheet as discrete {path, value} events the host applies to persisted item
// data. The view never writes to the view-model itself.
package edits

import "strings"

// Event reports a single user-initiated change. Path is a dotted field path
// ("mana.cost", "components.verbal"); Value carries the typed result of
// decoding the raw control value. A nil Value means "unset", which is
// distinct from a zero value.
type Event struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// JoinPath joins dotted path segments, skipping empties.
func JoinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
