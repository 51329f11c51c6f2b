package spell

import (
	"slices"
	"strconv"
)

// Lookups bundles the host-supplied enum tables. Values are already-localized
// display strings keyed by stable identifiers. Hosts construct these from
// their own configuration; nothing here is ambient or global.
type Lookups struct {
	Levels           map[int]string
	TimePeriods      map[string]string
	Schools          map[string]string
	Elements         map[string]string
	Tags             map[string]string
	Classes          map[string]string
	PreparationModes map[string]string
	ScalingModes     map[string]string
}

// LevelLabel resolves a level key. Unknown levels render unlabeled, so this
// returns "" rather than an error or a synthesized name.
func (l Lookups) LevelLabel(level int) string {
	if l.Levels == nil {
		return ""
	}
	return l.Levels[level]
}

// Label resolves a key against one of the string-keyed tables. Unknown keys
// and nil tables yield "".
func Label(table map[string]string, key string) string {
	if table == nil {
		return ""
	}
	return table[key]
}

// Option is a key/label pair in deterministic table order, ready for select
// controls.
type Option struct {
	Key   string
	Label string
}

// Options flattens a string-keyed table into sorted options. Sorting is by
// key so rendered markup is stable for a given table.
func Options(table map[string]string) []Option {
	if len(table) == 0 {
		return nil
	}
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make([]Option, 0, len(keys))
	for _, key := range keys {
		out = append(out, Option{Key: key, Label: table[key]})
	}
	return out
}

// LevelOptions flattens the level table into numerically sorted options. Keys
// are stringified for form controls; labels come straight from the table.
func (l Lookups) LevelOptions() []Option {
	if len(l.Levels) == 0 {
		return nil
	}
	levels := make([]int, 0, len(l.Levels))
	for level := range l.Levels {
		levels = append(levels, level)
	}
	slices.Sort(levels)

	out := make([]Option, 0, len(levels))
	for _, level := range levels {
		out = append(out, Option{Key: strconv.Itoa(level), Label: l.Levels[level]})
	}
	return out
}
